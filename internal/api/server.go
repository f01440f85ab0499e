package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/keyfold/internal/config"
	"github.com/dgallion1/keyfold/internal/session"
)

// Server is the HTTP API server for keyfold.
type Server struct {
	router   chi.Router
	loader   *session.Loader
	sessions *session.Store
	stats    *session.RefoldStats
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(loader *session.Loader, sessions *session.Store, stats *session.RefoldStats, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		loader:   loader,
		sessions: sessions,
		stats:    stats,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/documents", s.handleUpload)
		r.Post("/api/documents/batch", s.handleBatchUpload)
		r.Get("/api/documents", s.handleListSessions)
		r.Get("/api/documents/{sessionID}", s.handleSessionStatus)
		r.Delete("/api/documents/{sessionID}", s.handleDeleteSession)

		r.Get("/api/documents/{sessionID}/keywords", s.handleKeywords)
		r.Post("/api/documents/{sessionID}/refold", s.handleRefold)
		r.Post("/api/documents/{sessionID}/refresh", s.handleRefresh)

		r.Get("/api/stats/refold", s.handleRefoldStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
