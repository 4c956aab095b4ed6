// Package server exposes the content API and the HTML pages over HTTP.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/Bitlatte/showcase/internal/content"
	"github.com/Bitlatte/showcase/internal/listing"
	"github.com/Bitlatte/showcase/internal/metrics"
	"github.com/Bitlatte/showcase/internal/model"
	"github.com/Bitlatte/showcase/internal/site"
)

// Server wires the content store, the listing pipeline and the page
// renderer to HTTP routes.
type Server struct {
	store          *content.Store
	runner         *listing.Runner
	pages          *site.Pages
	logger         *zap.Logger
	metrics        *metrics.Collector
	allowedOrigins []string
}

type Option func(*Server)

// WithAllowedOrigins sets the origins allowed to call the JSON API from a
// browser. The default allows any origin.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		if len(origins) > 0 {
			s.allowedOrigins = origins
		}
	}
}

// WithMetrics records request metrics and exposes them on /metrics.
func WithMetrics(m *metrics.Collector) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

func New(store *content.Store, runner *listing.Runner, pages *site.Pages, logger *zap.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		store:          store,
		runner:         runner,
		pages:          pages,
		logger:         logger,
		allowedOrigins: []string{"*"},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the configured router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(s.logger))
	r.Use(noCache)
	if s.metrics != nil {
		r.Use(s.metrics.Middleware)
		r.Handle("/metrics", s.metrics.Handler())
	}

	r.Get("/health", s.health)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(site.Static()))))

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.allowedOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
		r.Get("/content", s.listContent)
		r.Get("/content/{kind}/{slug}", s.getContent)
		r.Get("/listing", s.listing)
	})

	r.Get("/", s.home)
	r.Get("/blogs", redirect("/?type=blog"))
	r.Get("/projects", redirect("/?type=project"))
	r.Get("/posts/{slug}", s.detail(model.KindBlog))
	r.Get("/projects/{slug}", s.detail(model.KindProject))
	r.NotFound(s.notFound)

	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// listContent handles GET /api/content
func (s *Server) listContent(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.store.All())
}

// getContent handles GET /api/content/{kind}/{slug}
func (s *Server) getContent(w http.ResponseWriter, r *http.Request) {
	kind, ok := model.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		s.respondError(w, http.StatusNotFound, "Not found")
		return
	}
	item, err := s.store.Get(kind, chi.URLParam(r, "slug"))
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, item)
}

func (s *Server) run(r *http.Request) (content.Snapshot, listing.Result) {
	snap := s.store.Snapshot()
	state := listing.FromParams(r.URL.Query().Get)
	return snap, s.runner.Run(snap.Generation, snap.Items, state)
}

// listing handles GET /api/listing
func (s *Server) listing(w http.ResponseWriter, r *http.Request) {
	_, res := s.run(r)
	s.respondJSON(w, http.StatusOK, res)
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	snap, res := s.run(r)
	var buf bytes.Buffer
	if err := s.pages.Home(&buf, snap.Content, res); err != nil {
		s.handleError(w, err)
		return
	}
	s.writeHTML(w, http.StatusOK, buf.Bytes())
}

func (s *Server) detail(kind model.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := s.store.Get(kind, chi.URLParam(r, "slug"))
		if errors.Is(err, content.ErrNotFound) {
			s.notFound(w, r)
			return
		}
		if err != nil {
			s.handleError(w, err)
			return
		}
		var buf bytes.Buffer
		if err := s.pages.Detail(&buf, item); err != nil {
			s.handleError(w, err)
			return
		}
		s.writeHTML(w, http.StatusOK, buf.Bytes())
	}
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.pages.NotFound(&buf, "The page you are looking for does not exist."); err != nil {
		s.logger.Error("failed to render not found page", zap.Error(err))
		http.NotFound(w, r)
		return
	}
	s.writeHTML(w, http.StatusNotFound, buf.Bytes())
}

func redirect(to string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, to, http.StatusFound)
	}
}

func (s *Server) writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		s.logger.Warn("failed to write response", zap.Error(err))
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

// handleError maps content.ErrNotFound to 404 and everything else to 500.
func (s *Server) handleError(w http.ResponseWriter, err error) {
	if errors.Is(err, content.ErrNotFound) {
		s.respondError(w, http.StatusNotFound, "Not found")
		return
	}
	s.logger.Error("request failed", zap.Error(err))
	s.respondError(w, http.StatusInternalServerError, "Internal server error")
}
