package site

import (
	"context"
	"log/slog"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/ziadkadry99/ffsite/internal/catalog"
	"github.com/ziadkadry99/ffsite/internal/content"
)

// Snapshot is everything a render needs. It is immutable once loaded and
// may be shared between goroutines.
type Snapshot struct {
	Catalog *catalog.Catalog
	Site    *content.Site
	// Err is the fatal catalog error, if any. The gallery renders it in
	// place of the template grid; the rest of the site still renders.
	Err      error
	LoadedAt time.Time
}

// Groups returns the loaded template groups, or nil after a fatal error.
func (s *Snapshot) Groups() []catalog.TemplateGroup {
	if s == nil || s.Catalog == nil {
		return nil
	}
	return s.Catalog.Groups
}

// Tutorials returns the tutorial list, or nil when tutorials.json was
// unavailable.
func (s *Snapshot) Tutorials() []content.Tutorial {
	if s == nil || s.Site == nil || s.Site.Tutorials == nil {
		return nil
	}
	return s.Site.Tutorials.Tutorials
}

// Load fetches the catalog and the site documents concurrently.
func Load(ctx context.Context, src content.Source, logger *slog.Logger, opts ...catalog.Option) *Snapshot {
	if logger == nil {
		logger = slog.Default()
	}
	snap := &Snapshot{}

	var wg conc.WaitGroup
	wg.Go(func() {
		ld := catalog.NewLoader(src, append([]catalog.Option{catalog.WithLogger(logger)}, opts...)...)
		snap.Catalog, snap.Err = ld.Load(ctx)
	})
	wg.Go(func() {
		snap.Site = content.LoadSite(ctx, src, logger)
	})
	wg.Wait()

	snap.LoadedAt = time.Now()
	if snap.Err != nil {
		logger.Error("template catalog unavailable", "source", src.Location(), "error", snap.Err)
	} else {
		logger.Info("content loaded",
			"source", src.Location(),
			"templates", len(snap.Catalog.Groups),
			"dropped", len(snap.Catalog.Failures),
			"tutorials", len(snap.Tutorials()))
	}
	return snap
}
