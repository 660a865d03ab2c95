package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/ffsite/internal/site"
)

// Config holds server configuration.
type Config struct {
	Port      int
	StaticDir string // served for paths no route matches, optional
	ToolName  string
	PageSize  int
	AllowAll  bool // allow all CORS origins (dev mode)
	// LiveReload serves /ws/reload and injects the reload client.
	LiveReload bool
}

// LoadFunc produces a fresh content snapshot.
type LoadFunc func(ctx context.Context) *site.Snapshot

// Server is the preview server: rendered pages, a JSON API over the
// catalog and a live reload channel.
type Server struct {
	cfg        Config
	load       LoadFunc
	reloadMu   sync.Mutex // one load at a time, so stores land in call order
	logger     *slog.Logger
	renderer   *site.Renderer
	snap       atomic.Pointer[site.Snapshot]
	hub        *Hub
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. Call Reload before serving.
func New(cfg Config, load LoadFunc, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r, err := site.NewRenderer(site.Options{
		ToolName:   cfg.ToolName,
		PageSize:   cfg.PageSize,
		URLs:       site.ServerURLs{},
		LiveReload: cfg.LiveReload,
	})
	if err != nil {
		return nil, err
	}
	s := &Server{
		cfg:      cfg,
		load:     load,
		logger:   logger,
		renderer: r,
		hub:      NewHub(logger),
	}
	s.router = s.buildRouter()
	return s, nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// The reload socket outlives any request timeout.
	if s.cfg.LiveReload {
		r.Get("/ws/reload", s.hub.ServeHTTP)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		r.Use(middleware.Compress(5))

		r.Get("/", s.handleIndex)
		r.Get("/graph-library", s.handleGallery)
		r.Get("/tutorial/{id}", s.handleTutorial)
		r.Get("/catalog.json", s.handleCatalog)
		r.Get("/style.css", s.handleAsset("style.css"))
		r.Get("/script.js", s.handleAsset("script.js"))

		r.Route("/api", func(r chi.Router) {
			r.Get("/templates", s.handleListTemplates)
			r.Get("/templates/{id}", s.handleGetTemplate)
			r.Get("/templates/{id}/versions/{version}", s.handleGetPayload)
			r.Get("/tutorials", s.handleListTutorials)
			r.Post("/reload", s.handleReload)
		})

		if s.cfg.StaticDir != "" {
			r.NotFound(http.FileServer(http.Dir(s.cfg.StaticDir)).ServeHTTP)
		}
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Snapshot returns the content currently served.
func (s *Server) Snapshot() *site.Snapshot { return s.snap.Load() }

// Reload loads fresh content, swaps it in and tells connected browsers.
func (s *Server) Reload(ctx context.Context) *site.Snapshot {
	s.reloadMu.Lock()
	snap := s.load(ctx)
	s.snap.Store(snap)
	s.reloadMu.Unlock()

	if n := s.hub.Broadcast("reload"); n > 0 {
		s.logger.Info("reload broadcast", "clients", n)
	}
	return snap
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("ffsite preview server listening", "addr", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
