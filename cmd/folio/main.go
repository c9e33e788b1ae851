// Command folio runs the portfolio backend HTTP server.
//
// Usage:
//
//	folio [--config-dir DIR] [--env-file FILE] [--debug]
//	folio --seed-quicklinks links.yaml
//	folio --inbox [--inbox-limit N]
//
// Settings are read from DIR/config.yaml, which is created with defaults on first run,
// and may be overridden by FOLIO_ prefixed environment variables, e.g. FOLIO_MAIL_FROM.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/tfkr-ae/folio"
	"github.com/tfkr-ae/folio/api"
	"github.com/tfkr-ae/folio/cache"
	"github.com/tfkr-ae/folio/db"
	"github.com/tfkr-ae/folio/notify"
)

var _ folio.RepoCache = (*cache.RedisRepoCache)(nil)

type options struct {
	configDir      string
	envFile        string
	seedQuickLinks string
	inbox          bool
	inboxLimit     int
	debug          bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "folio: %v\n", err)
		os.Exit(1)
	}
}

func defaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "folio")
}

func parseFlags(args []string) (options, error) {
	var opts options
	flags := pflag.NewFlagSet("folio", pflag.ContinueOnError)
	flags.StringVar(&opts.configDir, "config-dir", defaultConfigDir(), "directory holding config.yaml")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before the environment is read")
	flags.StringVar(&opts.seedQuickLinks, "seed-quicklinks", "", "upsert quick links from a YAML file and exit")
	flags.BoolVar(&opts.inbox, "inbox", false, "print stored submissions with their delivery attempts and exit")
	flags.IntVar(&opts.inboxLimit, "inbox-limit", 20, "submissions of each kind printed by --inbox, 0 for all")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	if err := flags.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if err := godotenv.Load(opts.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading env file %s: %w", opts.envFile, err)
	}

	cfg, err := folio.LoadConfig(opts.configDir)
	if err != nil {
		return err
	}

	dbConn, err := db.New(cfg.Database.Path)
	if err != nil {
		return err
	}
	repo := db.NewRepository(dbConn)
	defer repo.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.seedQuickLinks != "" {
		return seed(ctx, repo, opts.seedQuickLinks, logger)
	}
	if opts.inbox {
		return writeInbox(ctx, repo, opts.inboxLimit, os.Stdout)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	svc, cleanup, err := newService(ctx, cfg, repo, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.NewRouter(svc, cfg.Server.BasePath, logger),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server is listening", slog.String("addr", server.Addr), slog.String("base_path", cfg.Server.BasePath))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("listening on %s: %w", server.Addr, err)
		}
	case <-ctx.Done():
	}

	logger.Info("server is shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// newService assembles the service. cleanup releases the connections it opened and must be called
// once the server has stopped.
func newService(ctx context.Context, cfg *folio.Config, repo *db.Repository, logger *slog.Logger) (svc *folio.Service, cleanup func(), err error) {
	mailer, err := notify.NewSMTPMailer(notify.SMTPConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
		TLS:      cfg.Mail.TLS,
		Timeout:  cfg.Mail.Timeout,
	})
	if err != nil {
		return nil, nil, err
	}

	dispatcher, err := notify.NewDispatcher(mailer, notify.WithLogger(logger), notify.WithRepo(repo))
	if err != nil {
		return nil, nil, err
	}

	github, err := folio.NewGitHubClient(
		folio.WithGitHubTimeout(cfg.GitHub.Timeout),
		folio.WithGitHubToken(cfg.GitHub.Token),
	)
	if err != nil {
		return nil, nil, err
	}

	options := []func(*folio.Service) error{
		folio.WithConfig(cfg),
		folio.WithRepo(repo),
		folio.WithNotifier(dispatcher),
		folio.WithGitHub(github),
		folio.WithLogger(logger),
	}

	cleanup = func() {}
	if cfg.Cache.RedisAddr != "" {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		client, err := cache.Connect(pingCtx, cfg.Cache.RedisAddr)
		cancel()
		if err != nil {
			logger.Warn("repository cache disabled", slog.Any("error", err))
		} else {
			repoCache := cache.NewRedisRepoCache(client, cfg.Cache.TTL)
			options = append(options, folio.WithRepoCache(repoCache))
			cleanup = func() {
				if err := repoCache.Close(); err != nil {
					logger.Warn("closing repository cache", slog.Any("error", err))
				}
			}
		}
	}

	svc, err = folio.New(options...)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}

func seed(ctx context.Context, repo *db.Repository, path string, logger *slog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening quick link file: %w", err)
	}
	defer f.Close()

	svc, err := folio.New(folio.WithRepo(repo), folio.WithNotifier(noopNotifier{}), folio.WithLogger(logger))
	if err != nil {
		return err
	}

	n, err := svc.SeedQuickLinks(ctx, f)
	if err != nil {
		return err
	}
	logger.Info("quick links seeded", slog.Int("count", n), slog.String("file", path))
	return nil
}

// noopNotifier satisfies the service while seeding, which never sends mail.
type noopNotifier struct{}

func (noopNotifier) Send(ctx context.Context, policy notify.Policy, msg notify.Message) notify.Result {
	return notify.Result{Recipient: msg.To, Policy: policy}
}
