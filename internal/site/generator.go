package site

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/natefinch/atomic"

	"github.com/ziadkadry99/ffsite/internal/pagination"
)

// ErrOutputLocked is returned when another build holds the output directory.
var ErrOutputLocked = errors.New("output directory is locked by another build")

const lockFile = ".ffsite.lock"

// SiteGenerator exports a Snapshot as a static site.
type SiteGenerator struct {
	OutputDir string
	// StaticDir is copied into the output as-is (images, icons). Optional.
	StaticDir string
	// AssetPattern selects the static files to copy.
	AssetPattern string
	ToolName     string
	PageSize     int
	Logger       *slog.Logger
}

// BuildInfo is written to build.json.
type BuildInfo struct {
	ID        string    `json:"id"`
	BuiltAt   time.Time `json:"built_at"`
	Templates int       `json:"templates"`
	Dropped   []string  `json:"dropped,omitempty"`
	Tutorials int       `json:"tutorials"`
	Pages     int       `json:"pages"`
	Error     string    `json:"error,omitempty"`
}

// NewSiteGenerator creates a SiteGenerator writing to outputDir.
func NewSiteGenerator(outputDir, staticDir, toolName string, pageSize int, logger *slog.Logger) *SiteGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	if pageSize <= 0 {
		pageSize = pagination.DefaultPageSize
	}
	return &SiteGenerator{
		OutputDir:    outputDir,
		StaticDir:    staticDir,
		AssetPattern: "**/*",
		ToolName:     toolName,
		PageSize:     pageSize,
		Logger:       logger,
	}
}

// Generate writes the full site and returns what was built.
func (g *SiteGenerator) Generate(snap *Snapshot) (*BuildInfo, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	lock := flock.New(filepath.Join(g.OutputDir, lockFile))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("locking output dir: %w", err)
	}
	if !locked {
		return nil, ErrOutputLocked
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	urls := StaticURLs{DefaultSize: g.PageSize}
	r, err := NewRenderer(Options{ToolName: g.ToolName, PageSize: g.PageSize, URLs: urls})
	if err != nil {
		return nil, err
	}

	info := &BuildInfo{ID: uuid.NewString(), BuiltAt: time.Now().UTC(), Tutorials: len(snap.Tutorials())}
	if snap.Err != nil {
		info.Error = snap.Err.Error()
	} else {
		info.Templates = len(snap.Groups())
		for _, f := range snap.Catalog.Failures {
			info.Dropped = append(info.Dropped, f.Group)
		}
	}

	// Static assets.
	if err := g.write("style.css", []byte(cssContent)); err != nil {
		return nil, err
	}
	if err := g.write("script.js", []byte(jsContent)); err != nil {
		return nil, err
	}
	if err := g.writeJSON("catalog.json", CatalogIndex(snap.Groups())); err != nil {
		return nil, fmt.Errorf("writing catalog index: %w", err)
	}

	// Home page.
	var buf bytes.Buffer
	if err := r.RenderIndex(&buf, snap, IndexOptions{}); err != nil {
		return nil, fmt.Errorf("rendering index: %w", err)
	}
	if err := g.write(urls.Home(), buf.Bytes()); err != nil {
		return nil, err
	}
	info.Pages++

	// Gallery pages at the default size.
	pages := pagination.Paginate(snap.Groups(), 1, g.PageSize).TotalPages
	for n := 1; n <= max(pages, 1); n++ {
		buf.Reset()
		if err := r.RenderGallery(&buf, snap, GalleryOptions{Page: n, Size: g.PageSize}); err != nil {
			return nil, fmt.Errorf("rendering gallery page %d: %w", n, err)
		}
		if err := g.write(urls.GalleryFile(n), buf.Bytes()); err != nil {
			return nil, err
		}
		info.Pages++
	}

	// Tutorials.
	for _, t := range snap.Tutorials() {
		buf.Reset()
		if err := r.RenderTutorial(&buf, snap, t.ID); err != nil {
			return nil, fmt.Errorf("rendering tutorial %s: %w", t.ID, err)
		}
		if err := g.write(urls.Tutorial(t.ID), buf.Bytes()); err != nil {
			return nil, err
		}
		info.Pages++
	}

	if g.StaticDir != "" {
		n, err := g.copyStatic()
		if err != nil {
			return nil, fmt.Errorf("copying static assets: %w", err)
		}
		g.Logger.Debug("static assets copied", "count", n, "from", g.StaticDir)
	}

	if err := g.writeJSON("build.json", info); err != nil {
		return nil, err
	}
	return info, nil
}

// copyStatic copies every file under StaticDir matching AssetPattern.
func (g *SiteGenerator) copyStatic() (int, error) {
	fsys := os.DirFS(g.StaticDir)
	matches, err := doublestar.Glob(fsys, g.AssetPattern, doublestar.WithFilesOnly())
	if err != nil {
		return 0, err
	}
	for _, m := range matches {
		data, err := fs.ReadFile(fsys, m)
		if err != nil {
			return 0, err
		}
		if err := g.write(m, data); err != nil {
			return 0, err
		}
	}
	return len(matches), nil
}

func (g *SiteGenerator) write(rel string, data []byte) error {
	out := filepath.Join(g.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	if err := atomic.WriteFile(out, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}

func (g *SiteGenerator) writeJSON(rel string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return g.write(rel, data)
}
