package folio

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestWithLogger(t *testing.T) {
	t.Run("sets custom logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		s, _, _, teardown := setupTestService(t, WithLogger(logger))
		defer teardown()

		if s.Logger != logger {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", logger, s.Logger)
		}

		s.Logger.Info("test log message")
		if !strings.Contains(buf.String(), "test log message") {
			t.Fatalf("\nwanted:\nlog output containing 'test log message'\ngot:\n%q", buf.String())
		}
	})

	t.Run("handles nil logger safely", func(t *testing.T) {
		s, _, _, teardown := setupTestService(t, WithLogger(nil))
		defer teardown()

		if s.Logger == nil {
			t.Fatalf("\nwanted:\nnon-nil logger\ngot:\nnil")
		}

		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("\nwanted:\nno panic\ngot:\n%v", r)
			}
		}()

		s.Logger.Info("safe check")
	})
}

func TestWithConfig(t *testing.T) {
	t.Run("rejects a nil config", func(t *testing.T) {
		if _, err := New(WithConfig(nil)); err == nil {
			t.Fatalf("\nwanted:\nerror\ngot:\nnil")
		}
	})
}

func TestWithRepo(t *testing.T) {
	t.Run("rejects a second repository", func(t *testing.T) {
		_, repo, _, teardown := setupTestService(t)
		defer teardown()

		if _, err := New(WithRepo(repo), WithRepo(repo)); err == nil {
			t.Fatalf("\nwanted:\nerror\ngot:\nnil")
		}
	})
}
