package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/tfkr-ae/folio/db"
)

func TestParseFlags(t *testing.T) {
	t.Run("should read every flag", func(t *testing.T) {
		opts, err := parseFlags([]string{"--config-dir", "/tmp/folio", "--seed-quicklinks", "links.yaml", "--debug"})
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		want := options{configDir: "/tmp/folio", envFile: ".env", seedQuickLinks: "links.yaml", inboxLimit: 20, debug: true}
		if opts != want {
			t.Fatalf("\nwanted:\n%+v\ngot:\n%+v", want, opts)
		}
	})

	t.Run("should reject unknown flags", func(t *testing.T) {
		if _, err := parseFlags([]string{"--nope"}); err == nil {
			t.Fatalf("\nwanted:\nerror\ngot:\nnil")
		}
	})
}

func TestSeed(t *testing.T) {
	t.Run("should upsert quick links from a file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "links.yaml")
		content := "- title: GitHub\n  url: https://github.com/grace\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("writing seed file: %v", err)
		}

		dbConn, err := db.New(filepath.Join(dir, "folio.db"))
		if err != nil {
			t.Fatalf("db.New() failed: %v", err)
		}
		repo := db.NewRepository(dbConn)
		defer repo.Close()

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		if err := seed(context.Background(), repo, path, logger); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		count, err := repo.CountQuickLinks(context.Background())
		if err != nil || count != 1 {
			t.Fatalf("\nwanted:\n1\ngot:\n%d %v", count, err)
		}
	})

	t.Run("should fail for a missing file", func(t *testing.T) {
		dbConn, err := db.New(filepath.Join(t.TempDir(), "folio.db"))
		if err != nil {
			t.Fatalf("db.New() failed: %v", err)
		}
		repo := db.NewRepository(dbConn)
		defer repo.Close()

		if err := seed(context.Background(), repo, "does-not-exist.yaml", slog.New(slog.DiscardHandler)); err == nil {
			t.Fatalf("\nwanted:\nerror\ngot:\nnil")
		}
	})
}
