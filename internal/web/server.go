package web

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"railsearch/internal/config"
	"railsearch/internal/schedule"
	"railsearch/internal/web/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Searcher dispatches one schedule query. Satisfied by *upstream.Client;
// handlers stay testable without a network.
type Searcher interface {
	Search(ctx context.Context, sourceCode, destinationCode string) ([]schedule.TripResult, error)
}

type Server struct {
	cfg      config.ServerConfig
	searcher Searcher
	renderer *Renderer
	logger   *log.Logger

	srv *http.Server
}

func NewServer(cfg config.ServerConfig, searcher Searcher, logger *log.Logger) (*Server, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:      cfg,
		searcher: searcher,
		renderer: renderer,
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Security)
	s.registerRoutes(r)

	s.srv = &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s, nil
}

func (s *Server) Start() error {
	s.logger.Printf("web: starting server on %s", s.srv.Addr)
	err := s.srv.ListenAndServe()
	if err == http.ErrServerClosed {
		s.logger.Printf("web: server stopped")
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Print("web: shutting down server")
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Printf("web: error during server shutdown: %v", err)
		return err
	}
	return nil
}

// Handler exposes the routed handler so tests can drive it through httptest.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) registerRoutes(r chi.Router) {
	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.healthHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/", s.indexHandler)
	r.Get("/search", s.searchHandler)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// helper for consistent JSON responses.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	// best-effort encode; in the event of error there's not much we can do
	_ = json.NewEncoder(w).Encode(v)
}
