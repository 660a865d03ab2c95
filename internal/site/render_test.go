package site

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func newTestRenderer(t *testing.T, urls URLs) *Renderer {
	t.Helper()
	r, err := NewRenderer(Options{ToolName: "FFmpeg", PageSize: 12, URLs: urls})
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func TestRenderIndex(t *testing.T) {
	snap := loadTestSnapshot(t, 3)
	r := newTestRenderer(t, StaticURLs{DefaultSize: 12})

	var buf bytes.Buffer
	if err := r.RenderIndex(&buf, snap, IndexOptions{}); err != nil {
		t.Fatalf("RenderIndex: %v", err)
	}
	page := buf.String()

	checks := []string{
		`href="https://example.com/dl"`,  // hero button via links.navigation
		"Docs (Coming Soon)",              // "#" renders disabled
		`href="index.html#features"`,      // in-page anchor
		`href="https://example.com/privacy"`,
		"<b>FF</b>",
		"3 ready-made filter graphs",
		`href="tutorial-first.html"`,
	}
	for _, want := range checks {
		if !strings.Contains(page, want) {
			t.Errorf("index missing %q", want)
		}
	}
	if strings.Contains(page, "<script>alert") {
		t.Error("copyright must be sanitized")
	}
	if strings.Contains(page, `id="download"`) {
		t.Error("downloads section should be skipped without downloads.json")
	}
	if !strings.Contains(page, `<span class="btn btn-patreon btn-disabled">`) {
		t.Error("support button should render disabled without links.external.patreon")
	}
}

func TestRenderIndexSupportButton(t *testing.T) {
	snap := loadTestSnapshot(t, 1)
	snap.Site.Links.External["patreon"] = "https://patreon.example.com/ffsite"
	r := newTestRenderer(t, StaticURLs{DefaultSize: 12})

	var buf bytes.Buffer
	if err := r.RenderIndex(&buf, snap, IndexOptions{}); err != nil {
		t.Fatalf("RenderIndex: %v", err)
	}
	page := buf.String()
	if !strings.Contains(page, `<a class="btn btn-patreon" href="https://patreon.example.com/ffsite">`) {
		t.Error("support button should link to links.external.patreon")
	}
	if strings.Contains(page, "btn-disabled") {
		t.Error("support button should be enabled")
	}
}

func TestRenderIndexTutorialFilter(t *testing.T) {
	snap := loadTestSnapshot(t, 1)
	r := newTestRenderer(t, ServerURLs{})

	var buf bytes.Buffer
	if err := r.RenderIndex(&buf, snap, IndexOptions{Category: "Basics"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `/tutorial/first`) || strings.Contains(buf.String(), `/tutorial/second`) {
		t.Error("category filter should keep only Basics tutorials")
	}
}

func TestRenderGalleryQuery(t *testing.T) {
	snap := loadTestSnapshot(t, 30)
	r := newTestRenderer(t, ServerURLs{})

	var buf bytes.Buffer
	err := r.RenderGallery(&buf, snap, GalleryOptions{
		Query:    "TAG7",
		Page:     4,
		Size:     6,
		Versions: map[string]string{"t07": "6.1"},
	})
	if err != nil {
		t.Fatalf("RenderGallery: %v", err)
	}
	page := buf.String()
	if !strings.Contains(page, "Showing 1-1 of 1 template") {
		t.Error("query should match exactly one template and clamp to page 1")
	}
	if !strings.Contains(page, "FFmpeg 6.1") {
		t.Error("version label missing")
	}
	if !strings.Contains(page, `{&#34;id&#34;:7,&#34;v&#34;:&#34;6.1&#34;}`) {
		t.Error("selected version payload should be shown")
	}
}

func TestRenderGalleryPagination(t *testing.T) {
	snap := loadTestSnapshot(t, 30)
	r := newTestRenderer(t, ServerURLs{})

	view := r.GalleryView(snap, GalleryOptions{Page: 2, Size: 6})
	if view.Page.TotalPages != 5 || view.Page.Number != 2 {
		t.Fatalf("page %d of %d, want 2 of 5", view.Page.Number, view.Page.TotalPages)
	}

	// unsupported sizes fall back to the configured default
	view = r.GalleryView(snap, GalleryOptions{Size: 7})
	if view.PageSize != 12 {
		t.Errorf("page size = %d, want 12", view.PageSize)
	}
}

func TestRenderTutorial(t *testing.T) {
	snap := loadTestSnapshot(t, 1)
	r := newTestRenderer(t, ServerURLs{})

	var buf bytes.Buffer
	if err := r.RenderTutorial(&buf, snap, "first"); err != nil {
		t.Fatalf("RenderTutorial: %v", err)
	}
	page := buf.String()
	for _, want := range []string{`href="#section-0"`, "https://www.youtube.com/embed/xyz", "hello<br", `href="/tutorial/second"`} {
		if !strings.Contains(page, want) {
			t.Errorf("tutorial page missing %q", want)
		}
	}

	err := r.RenderTutorial(&buf, snap, "missing")
	if !errors.Is(err, ErrTutorialNotFound) {
		t.Errorf("expected ErrTutorialNotFound, got %v", err)
	}
}

func TestURLs(t *testing.T) {
	s := StaticURLs{DefaultSize: 12}
	tests := []struct{ got, want string }{
		{s.Gallery("", 1, 12), "graph-library.html"},
		{s.Gallery("", 3, 12), "graph-library-3.html"},
		{s.Gallery("", 2, 24), "graph-library.html?page=2&size=24"},
		{s.Gallery("x y", 1, 12), "graph-library.html?q=x+y&size=12"},
		{s.Tutorial("a b"), "tutorial-a%20b.html"},
		{ServerURLs{}.Gallery("", 1, 0), "/graph-library"},
		{ServerURLs{}.Gallery("q", 2, 6), "/graph-library?page=2&q=q&size=6"},
		{ServerURLs{}.Tutorial("x"), "/tutorial/x"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
