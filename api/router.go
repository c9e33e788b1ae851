// Package api exposes the portfolio service over HTTP as JSON.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tfkr-ae/folio"
	"github.com/tfkr-ae/folio/domain"
	"github.com/tfkr-ae/folio/validation"
)

// Service is the set of portfolio operations the HTTP surface calls.
type Service interface {
	ListProjects(ctx context.Context) ([]*domain.Project, error)
	CreateProject(ctx context.Context, in validation.ProjectInput) (*domain.Project, error)
	SyncGitHub(ctx context.Context, username string) ([]string, error)
	SubmitContact(ctx context.Context, in validation.ContactInput) (*domain.ContactSubmission, error)
	SubmitHireRequest(ctx context.Context, in validation.HireInput) (*domain.HireRequest, error)
	ListQuickLinks(ctx context.Context) ([]*domain.QuickLink, error)
	ProfilePictureURL() string
	ProfileCVURL() string
	Stats(ctx context.Context) (*domain.Stats, error)
}

var _ Service = (*folio.Service)(nil)

// NewRouter mounts every route under basePath. Trailing slashes are optional.
func NewRouter(svc Service, basePath string, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()

	r.Use(middleware.StripSlashes)
	r.Use(requestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	h := NewHandler(svc, logger)

	r.Route(basePath, func(r chi.Router) {
		r.Get("/projects", h.ListProjects)
		r.Post("/projects", h.CreateProject)
		r.Post("/projects/sync-github", h.SyncGitHub)

		r.Post("/contact", h.SubmitContact)
		r.Post("/hire", h.SubmitHireRequest)

		r.Get("/quicklinks", h.ListQuickLinks)

		r.Get("/profile/picture", h.ProfilePicture)
		r.Get("/profile/cv", h.ProfileCV)

		r.Get("/health", h.Health)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Default().Error("encoding response", slog.Any("error", err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
