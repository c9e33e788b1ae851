package folio

import (
	"bytes"
	"context"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestRequestIDContext(t *testing.T) {
	t.Run("should round trip the request ID", func(t *testing.T) {
		id := uuid.Must(uuid.NewV7())
		req := ContextWithRequestID(httptest.NewRequest("GET", "/", nil), id)

		got, ok := RequestIDFromContext(req.Context())
		if !ok || got != id {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v %v", id, got, ok)
		}
	})

	t.Run("should report a missing request ID", func(t *testing.T) {
		if _, ok := RequestIDFromContext(context.Background()); ok {
			t.Fatalf("\nwanted:\nfalse\ngot:\ntrue")
		}
	})

	t.Run("should annotate the logger with the request ID", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		id := uuid.Must(uuid.NewV7())
		req := ContextWithRequestID(httptest.NewRequest("GET", "/", nil), id)

		loggerFromContext(req.Context(), logger).Info("hello")
		if !strings.Contains(buf.String(), "request_id="+id.String()) {
			t.Fatalf("\nwanted:\nrequest_id=%s\ngot:\n%s", id, buf.String())
		}
	})
}
