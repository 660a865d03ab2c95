package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/ffsite/internal/catalog"
	"github.com/ziadkadry99/ffsite/internal/site"
	"github.com/ziadkadry99/ffsite/internal/tutorial"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// render buffers a page so template errors can still produce a 500.
func (s *Server) render(w http.ResponseWriter, status int, fn func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		s.logger.Error("render failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	snap := s.Snapshot()
	q := r.URL.Query()
	s.render(w, http.StatusOK, func(buf *bytes.Buffer) error {
		return s.renderer.RenderIndex(buf, snap, site.IndexOptions{Category: q.Get("category"), Query: q.Get("tq")})
	})
}

func intParam(r *http.Request, name string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(name))
	return n
}

// versionParams parses repeated v=<id>:<version> selections.
func versionParams(r *http.Request) map[string]string {
	out := map[string]string{}
	for _, v := range r.URL.Query()["v"] {
		id, version, ok := strings.Cut(v, ":")
		if ok && id != "" {
			out[id] = version
		}
	}
	return out
}

func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	snap := s.Snapshot()
	opts := site.GalleryOptions{
		Query:    r.URL.Query().Get("q"),
		Page:     intParam(r, "page"),
		Size:     intParam(r, "size"),
		Versions: versionParams(r),
	}
	status := http.StatusOK
	if snap.Err != nil {
		status = http.StatusServiceUnavailable
	}
	s.render(w, status, func(buf *bytes.Buffer) error {
		return s.renderer.RenderGallery(buf, snap, opts)
	})
}

func (s *Server) handleTutorial(w http.ResponseWriter, r *http.Request) {
	snap := s.Snapshot()
	id := chi.URLParam(r, "id")
	var buf bytes.Buffer
	err := s.renderer.RenderTutorial(&buf, snap, id)
	if errors.Is(err, site.ErrTutorialNotFound) {
		s.render(w, http.StatusNotFound, func(b *bytes.Buffer) error {
			return s.renderer.RenderError(b, snap, "Tutorial not found: "+id)
		})
		return
	}
	s.render(w, http.StatusOK, func(b *bytes.Buffer) error {
		if err != nil {
			return err
		}
		_, werr := b.Write(buf.Bytes())
		return werr
	})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	snap := s.Snapshot()
	if snap.Err != nil {
		writeError(w, http.StatusServiceUnavailable, snap.Err.Error())
		return
	}
	writeJSON(w, http.StatusOK, site.CatalogIndex(snap.Groups()))
}

func (s *Server) handleAsset(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, ct, ok := site.StaticAsset(name)
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", ct)
		_, _ = w.Write(data)
	}
}

// templateSummary is a catalog entry without payloads.
type templateSummary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image,omitempty"`
	Versions    []string `json:"versions"`
}

type listResponse struct {
	Query      string            `json:"query"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
	Total      int               `json:"total"`
	Summary    string            `json:"summary"`
	Items      []templateSummary `json:"items"`
}

func summarize(g catalog.TemplateGroup) templateSummary {
	ts := templateSummary{ID: g.ID, Title: g.Title, Description: g.Description, Tags: g.Tags, Image: g.Image}
	if ts.Tags == nil {
		ts.Tags = []string{}
	}
	for _, v := range g.Versions {
		ts.Versions = append(ts.Versions, v.Version)
	}
	return ts
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	snap := s.Snapshot()
	if snap.Err != nil {
		writeError(w, http.StatusServiceUnavailable, snap.Err.Error())
		return
	}
	view := s.renderer.GalleryView(snap, site.GalleryOptions{
		Query: r.URL.Query().Get("q"),
		Page:  intParam(r, "page"),
		Size:  intParam(r, "size"),
	})
	resp := listResponse{
		Query:      view.Query,
		Page:       view.Page.Number,
		PageSize:   view.PageSize,
		TotalPages: view.Page.TotalPages,
		Total:      view.Page.Total,
		Summary:    view.Summary,
		Items:      []templateSummary{},
	}
	for _, c := range view.Cards {
		resp.Items = append(resp.Items, summarize(c.Group))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) findTemplate(w http.ResponseWriter, r *http.Request) (catalog.TemplateGroup, bool) {
	snap := s.Snapshot()
	if snap.Err != nil {
		writeError(w, http.StatusServiceUnavailable, snap.Err.Error())
		return catalog.TemplateGroup{}, false
	}
	id := chi.URLParam(r, "id")
	g, ok := snap.Catalog.Find(id)
	if !ok {
		writeError(w, http.StatusNotFound, "template not found: "+id)
		return catalog.TemplateGroup{}, false
	}
	return g, true
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	g, ok := s.findTemplate(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// handleGetPayload returns the raw payload bytes exactly as fetched.
func (s *Server) handleGetPayload(w http.ResponseWriter, r *http.Request) {
	g, ok := s.findTemplate(w, r)
	if !ok {
		return
	}
	version := chi.URLParam(r, "version")
	v, ok := g.Version(version)
	if !ok {
		writeError(w, http.StatusNotFound, "version not found: "+version)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(v.GraphData))
}

type tutorialSummary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	URL         string   `json:"url"`
}

func (s *Server) handleListTutorials(w http.ResponseWriter, r *http.Request) {
	list := s.Snapshot().Tutorials()
	list = tutorial.FilterByCategory(list, r.URL.Query().Get("category"))
	list = tutorial.Search(list, r.URL.Query().Get("q"))
	out := make([]tutorialSummary, 0, len(list))
	for _, t := range list {
		out = append(out, tutorialSummary{
			ID: t.ID, Title: t.Title, Description: t.Description,
			Category: t.Category, Tags: t.Tags, URL: site.ServerURLs{}.Tutorial(t.ID),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	snap := s.Reload(r.Context())
	if snap.Err != nil {
		writeError(w, http.StatusServiceUnavailable, snap.Err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "reloaded",
		"templates": len(snap.Groups()),
		"loaded_at": snap.LoadedAt,
	})
}
