package folio

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const (
	// RequestIDKey is the context key for the ID (uuid.UUID) assigned to an inbound request.
	RequestIDKey contextKey = "RequestID"
)

// ContextWithRequestID returns a new request with a request ID in the context
func ContextWithRequestID(req *http.Request, requestID uuid.UUID) *http.Request {
	ctx := context.WithValue(req.Context(), RequestIDKey, requestID)
	return req.WithContext(ctx)
}

// RequestIDFromContext returns the request ID from the context if it exists
func RequestIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(RequestIDKey).(uuid.UUID)
	return id, ok
}

// loggerFromContext returns logger annotated with the request ID carried by ctx, if any.
func loggerFromContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if id, ok := RequestIDFromContext(ctx); ok {
		return logger.With(slog.String("request_id", id.String()))
	}
	return logger
}
