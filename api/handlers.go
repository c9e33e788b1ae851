package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/tfkr-ae/folio"
	"github.com/tfkr-ae/folio/validation"
)

const (
	msgInvalidPayload   = "invalid request payload"
	msgPayloadTooLarge  = "request payload too large"
	msgInternal         = "internal server error"
	msgSyncFailed       = "Failed to fetch GitHub repos"
	msgHireRequestSent  = "Hire request sent successfully"
	maxRequestBodyBytes = 1 << 20
)

// Handler serves the portfolio endpoints.
type Handler struct {
	svc    Service
	logger *slog.Logger
}

// NewHandler creates a new Handler
func NewHandler(svc Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// decode reads a JSON body into dst. An empty body leaves dst untouched. A value of the wrong
// type for a field is answered like any other validation failure.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respondError(w, http.StatusRequestEntityTooLarge, msgPayloadTooLarge)
		return false
	}
	if fieldErrs, ok := validation.TypeErrors(err); ok {
		respondJSON(w, http.StatusBadRequest, fieldErrs)
		return false
	}
	respondError(w, http.StatusBadRequest, msgInvalidPayload)
	return false
}

// internalError logs err against the request and answers with a generic 500.
func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	attrs := []any{slog.Any("error", err)}
	if id, ok := folio.RequestIDFromContext(r.Context()); ok {
		attrs = append(attrs, slog.String("request_id", id.String()))
	}
	h.logger.Error(msg, attrs...)
	respondError(w, http.StatusInternalServerError, msgInternal)
}

// respondValidation answers 400 with the field map when err is a validation failure.
func respondValidation(w http.ResponseWriter, err error) bool {
	var fieldErrs *validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		respondJSON(w, http.StatusBadRequest, fieldErrs)
		return true
	}
	return false
}

// ListProjects handles GET /projects
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.ListProjects(r.Context())
	if err != nil {
		h.internalError(w, r, "listing projects", err)
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

// CreateProject handles POST /projects
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var in validation.ProjectInput
	if !decode(w, r, &in) {
		return
	}

	project, err := h.svc.CreateProject(r.Context(), in)
	if err != nil {
		if !respondValidation(w, err) {
			h.internalError(w, r, "creating project", err)
		}
		return
	}
	respondJSON(w, http.StatusCreated, project)
}

type syncRequest struct {
	Username string `json:"username"`
}

// SyncGitHub handles POST /projects/sync-github
func (h *Handler) SyncGitHub(w http.ResponseWriter, r *http.Request) {
	var in syncRequest
	if !decode(w, r, &in) {
		return
	}

	names, err := h.svc.SyncGitHub(r.Context(), in.Username)
	if err != nil {
		var upstreamErr *folio.UpstreamError
		switch {
		case errors.Is(err, folio.ErrMissingUsername):
			respondError(w, http.StatusBadRequest, folio.ErrMissingUsername.Error())
		case errors.As(err, &upstreamErr):
			respondError(w, upstreamErr.StatusCode, msgSyncFailed)
		default:
			h.internalError(w, r, "syncing github repositories", err)
		}
		return
	}
	respondJSON(w, http.StatusOK, map[string][]string{"projects": names})
}

// SubmitContact handles POST /contact
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var in validation.ContactInput
	if !decode(w, r, &in) {
		return
	}

	submission, err := h.svc.SubmitContact(r.Context(), in)
	if err != nil {
		if !respondValidation(w, err) {
			h.internalError(w, r, "submitting contact form", err)
		}
		return
	}
	respondJSON(w, http.StatusCreated, submission)
}

// SubmitHireRequest handles POST /hire
func (h *Handler) SubmitHireRequest(w http.ResponseWriter, r *http.Request) {
	var in validation.HireInput
	if !decode(w, r, &in) {
		return
	}

	_, err := h.svc.SubmitHireRequest(r.Context(), in)
	if err != nil {
		if respondValidation(w, err) {
			return
		}
		var notifyErr *folio.NotificationError
		if errors.As(err, &notifyErr) {
			respondJSON(w, http.StatusBadRequest, map[string]string{"message": "Error: " + notifyErr.Err.Error()})
			return
		}
		h.internalError(w, r, "submitting hire request", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": msgHireRequestSent})
}

// ListQuickLinks handles GET /quicklinks
func (h *Handler) ListQuickLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.svc.ListQuickLinks(r.Context())
	if err != nil {
		h.internalError(w, r, "listing quick links", err)
		return
	}
	respondJSON(w, http.StatusOK, links)
}

// ProfilePicture handles GET /profile/picture
func (h *Handler) ProfilePicture(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"imageUrl": h.svc.ProfilePictureURL()})
}

// ProfileCV handles GET /profile/cv
func (h *Handler) ProfileCV(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"cvUrl": h.svc.ProfileCVURL()})
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		h.logger.Error("health check", slog.Any("error", err))
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"status": "ok", "counts": stats})
}
