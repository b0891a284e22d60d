package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/claude/liftvault/internal/ingest/vault"
	"github.com/claude/liftvault/internal/models"
	"github.com/claude/liftvault/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// SessionStore is the session repository surface the handlers need.
// Satisfied by *storage.DB; faked in tests.
type SessionStore interface {
	ListSessions(ctx context.Context, userID int) ([]models.SessionSummary, error)
	GetSession(ctx context.Context, id uuid.UUID, userID int) (*models.Session, error)
	SetCoachFeedback(ctx context.Context, id uuid.UUID, userID int, text string) error
}

var _ SessionStore = (*storage.DB)(nil)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store  SessionStore
	vault  *vault.Provider
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(store SessionStore, vaultProvider *vault.Provider, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		store:  store,
		vault:  vaultProvider,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Ingest endpoint (API key required)
	s.router.Route("/api/v1/ingest", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/vault", s.handleVaultIngest)
	})

	// Session and feedback API (no auth — tsnet handles access)
	s.router.Get("/api/v1/sessions", s.handleListSessions)
	s.router.Get("/api/v1/sessions/{id}", s.handleGetSession)
	s.router.Put("/api/v1/sessions/{id}/feedback", s.handlePutFeedback)
	s.router.Get("/api/v1/sessions/{id}/exercises/{name}/feedback", s.handleExerciseFeedback)
	s.router.Post("/api/v1/feedback/preview", s.handlePreviewFeedback)
}
