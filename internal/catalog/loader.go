package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/sourcegraph/conc/iter"

	"github.com/ziadkadry99/ffsite/internal/content"
	"github.com/ziadkadry99/ffsite/internal/progress"
)

type indexDoc struct {
	Graphs []string `json:"graphs"`
}

type manifestDoc struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image"`
	Graphs      []struct {
		Version string `json:"version"`
	} `json:"graphs"`
}

// Loader fetches the catalog from a content source.
type Loader struct {
	src            content.Source
	layout         Layout
	strict         bool
	maxConcurrency int
	logger         *slog.Logger
	progress       progress.Reporter
}

// Option configures a Loader.
type Option func(*Loader)

// WithLayout overrides DefaultLayout.
func WithLayout(l Layout) Option {
	return func(ld *Loader) { ld.layout = l }
}

// WithStrict makes any group failure abort the whole load.
func WithStrict(strict bool) Option {
	return func(ld *Loader) { ld.strict = strict }
}

// WithMaxConcurrency bounds in-flight fetches per fan-out level. Zero or
// less fetches every document of a level at once.
func WithMaxConcurrency(n int) Option {
	return func(ld *Loader) { ld.maxConcurrency = n }
}

// WithLogger sets the logger used for dropped groups.
func WithLogger(l *slog.Logger) Option {
	return func(ld *Loader) { ld.logger = l }
}

// WithProgress reports one step per finished group.
func WithProgress(r progress.Reporter) Option {
	return func(ld *Loader) { ld.progress = r }
}

// NewLoader creates a Loader reading from src.
func NewLoader(src content.Source, opts ...Option) *Loader {
	ld := &Loader{
		src:    src,
		layout: DefaultLayout,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(ld)
	}
	ld.progress = progress.Synchronized(ld.progress)
	return ld
}

type groupResult struct {
	group TemplateGroup
	err   *FetchError
}

// Load fetches the index, then every group manifest concurrently, then
// every payload of each group concurrently. The returned groups are in
// index order and each group's versions are in manifest order regardless
// of completion order.
//
// An index failure is always returned as an error. A group failure drops
// that group and is recorded in Catalog.Failures, unless the loader is
// strict, in which case the first failure in index order is returned and
// outstanding fetches are cancelled.
func (l *Loader) Load(parent context.Context) (*Catalog, error) {
	var idx indexDoc
	if err := l.fetchJSON(parent, l.layout.IndexPath, &idx); err != nil {
		return nil, &FetchError{Kind: KindIndex, Path: l.layout.IndexPath, Err: err}
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		done     atomic.Int64
		firstErr *FetchError
		once     sync.Once
	)
	l.progress.Start(len(idx.Graphs))

	mapper := iter.Mapper[string, groupResult]{MaxGoroutines: l.limit(len(idx.Graphs))}
	results := mapper.Map(idx.Graphs, func(id *string) groupResult {
		g, err := l.loadGroup(ctx, *id)
		n := done.Add(1)
		if err != nil {
			if l.strict {
				once.Do(func() {
					firstErr = err
					cancel()
				})
			}
			l.progress.Update(int(n), "failed "+*id)
			return groupResult{err: err}
		}
		l.progress.Update(int(n), "loaded "+*id)
		return groupResult{group: g}
	})
	l.progress.Finish()

	// A cancelled caller gets no partial catalog.
	if err := parent.Err(); err != nil {
		return nil, err
	}
	if l.strict && firstErr != nil {
		return nil, strictError(results, firstErr)
	}

	cat := &Catalog{Groups: make([]TemplateGroup, 0, len(results))}
	for _, r := range results {
		if r.err != nil {
			l.logger.Warn("dropping template group", "group", r.err.Group, "kind", r.err.Kind.String(), "error", r.err.Err)
			cat.Failures = append(cat.Failures, r.err)
			continue
		}
		cat.Groups = append(cat.Groups, r.group)
	}
	return cat, nil
}

// strictError prefers the first non-cancellation failure in index order so
// the reported cause does not depend on scheduling.
func strictError(results []groupResult, trigger *FetchError) error {
	for _, r := range results {
		if r.err != nil && !errors.Is(r.err, context.Canceled) {
			return r.err
		}
	}
	return trigger
}

func (l *Loader) limit(n int) int {
	if l.maxConcurrency > 0 {
		return l.maxConcurrency
	}
	if n == 0 {
		return 1
	}
	return n
}

func (l *Loader) loadGroup(ctx context.Context, id string) (TemplateGroup, *FetchError) {
	manifestPath := l.layout.ManifestPath(id)
	var m manifestDoc
	if err := l.fetchJSON(ctx, manifestPath, &m); err != nil {
		return TemplateGroup{}, &FetchError{Kind: KindManifest, Group: id, Path: manifestPath, Err: err}
	}
	if len(m.Graphs) == 0 {
		return TemplateGroup{}, &FetchError{Kind: KindManifest, Group: id, Path: manifestPath, Err: ErrNoVersions}
	}

	loaded := make([]Version, len(m.Graphs))
	errs := make([]*FetchError, len(m.Graphs))
	it := iter.Iterator[string]{MaxGoroutines: l.limit(len(m.Graphs))}
	names := make([]string, len(m.Graphs))
	for i, g := range m.Graphs {
		names[i] = g.Version
	}
	it.ForEachIdx(names, func(i int, v *string) {
		payloadPath := l.layout.PayloadPath(id, *v)
		data, err := l.src.Fetch(ctx, payloadPath)
		if err != nil {
			errs[i] = &FetchError{Kind: KindPayload, Group: id, Version: *v, Path: payloadPath, Err: err}
			return
		}
		loaded[i] = Version{Version: *v, GraphData: string(data)}
	})
	for _, err := range errs {
		if err != nil {
			return TemplateGroup{}, err
		}
	}

	return TemplateGroup{
		ID:          id,
		Title:       m.Title,
		Description: m.Description,
		Tags:        m.Tags,
		Image:       m.Image,
		Versions:    loaded,
	}, nil
}

func (l *Loader) fetchJSON(ctx context.Context, name string, v any) error {
	data, err := l.src.Fetch(ctx, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}
	return nil
}
