// Package folio is the portfolio backend. Service ties together validation, the record store,
// notification delivery and the GitHub repository sync.
package folio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/tfkr-ae/folio/domain"
	"github.com/tfkr-ae/folio/notify"
	"github.com/tfkr-ae/folio/validation"
	"gopkg.in/yaml.v3"
)

// Repository is the complete record store the service needs.
type Repository interface {
	domain.ProjectRepository
	domain.ContactRepository
	domain.HireRequestRepository
	domain.QuickLinkRepository
	domain.StatsRepository
}

// Notifier delivers a composed message under a failure policy.
type Notifier interface {
	Send(ctx context.Context, policy notify.Policy, msg notify.Message) notify.Result
}

// RepoCache stores repository listings by GitHub username.
type RepoCache interface {
	// GetRepositoryNames returns the cached names and whether there was an entry.
	GetRepositoryNames(ctx context.Context, username string) ([]string, bool, error)
	// SetRepositoryNames caches names for username.
	SetRepositoryNames(ctx context.Context, username string, names []string) error
}

var _ Notifier = (*notify.Dispatcher)(nil)

// Service implements every portfolio operation. It holds no mutable state of its own
// and is safe for concurrent use when its collaborators are.
type Service struct {
	Config   *Config          // Process configuration, read only
	Repo     Repository       // Record store
	Notifier Notifier         // Submission alert delivery
	GitHub   RepositoryLister // Repository sync upstream
	Cache    RepoCache        // Optional repository listing cache
	Logger   *slog.Logger
	now      func() time.Time
}

// New creates a Service and applies options. A repository and a notifier are required.
//
// Parameters:
//   - options: Variadic list of option functions to configure the service
//
// Returns:
//   - *Service: Configured service
//   - error: Configuration error if any option fails or a required collaborator is missing
func New(options ...func(*Service) error) (*Service, error) {
	s := &Service{
		Config: &Config{},
		Logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	if err := s.WithOptions(options...); err != nil {
		return nil, err
	}

	if s.Repo == nil {
		return nil, errors.New("service has no repository")
	}
	if s.Notifier == nil {
		return nil, errors.New("service has no notifier")
	}
	if s.GitHub == nil {
		client, err := NewGitHubClient(
			WithGitHubTimeout(s.Config.GitHub.Timeout),
			WithGitHubToken(s.Config.GitHub.Token),
		)
		if err != nil {
			return nil, fmt.Errorf("creating github client : %w", err)
		}
		s.GitHub = client
	}
	return s, nil
}

// ListProjects returns projects newest first, capped by store.list_limit.
func (s *Service) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	projects, err := s.Repo.GetProjects(ctx, s.Config.Store.ListLimit)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

// ListQuickLinks returns quick links in ascending display order.
func (s *Service) ListQuickLinks(ctx context.Context) ([]*domain.QuickLink, error) {
	links, err := s.Repo.GetQuickLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing quick links: %w", err)
	}
	return links, nil
}

// ProfilePictureURL returns the configured profile picture.
func (s *Service) ProfilePictureURL() string {
	return s.Config.Profile.PictureURL
}

// ProfileCVURL returns the configured resume.
func (s *Service) ProfileCVURL() string {
	return s.Config.Profile.ResumeURL
}

// Stats returns the number of stored records of each kind.
func (s *Service) Stats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats
	counters := []struct {
		name  string
		count func(context.Context) (int, error)
		dst   *int
	}{
		{"projects", s.Repo.CountProjects, &stats.Projects},
		{"contact submissions", s.Repo.CountContactSubmissions, &stats.ContactSubmissions},
		{"hire requests", s.Repo.CountHireRequests, &stats.HireRequests},
		{"quick links", s.Repo.CountQuickLinks, &stats.QuickLinks},
	}
	for _, c := range counters {
		n, err := c.count(ctx)
		if err != nil {
			return nil, fmt.Errorf("counting %s: %w", c.name, err)
		}
		*c.dst = n
	}
	return &stats, nil
}

// SyncGitHub lists the repository names of username. Successful listings are cached when a
// cache is configured; a cache failure is logged and never fails the sync.
func (s *Service) SyncGitHub(ctx context.Context, username string) ([]string, error) {
	logger := loggerFromContext(ctx, s.Logger)
	username = strings.TrimSpace(username)

	if s.Cache != nil && username != "" {
		names, ok, err := s.Cache.GetRepositoryNames(ctx, username)
		switch {
		case err != nil:
			logger.Warn("reading repository cache", slog.String("username", username), slog.Any("error", err))
		case ok:
			logger.Debug("repository cache hit", slog.String("username", username))
			return names, nil
		}
	}

	names, err := s.GitHub.ListRepositoryNames(ctx, username)
	if err != nil {
		if !errors.Is(err, ErrMissingUsername) {
			logger.Error("syncing github repositories", slog.String("username", username), slog.Any("error", err))
		}
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.SetRepositoryNames(ctx, username, names); err != nil {
			logger.Warn("writing repository cache", slog.String("username", username), slog.Any("error", err))
		}
	}
	return names, nil
}

// SeedQuickLinks reads a YAML list of quick links from r and upserts each one by title.
// Every entry is validated before any is written.
func (s *Service) SeedQuickLinks(ctx context.Context, r io.Reader) (int, error) {
	var inputs []validation.QuickLinkInput
	if err := yaml.NewDecoder(r).Decode(&inputs); err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("decoding quick links : %w", err)
	}

	links := make([]*domain.QuickLink, 0, len(inputs))
	for i, in := range inputs {
		res := validation.ValidateQuickLink(in)
		if err := res.Err(); err != nil {
			return 0, fmt.Errorf("quick link %d (%s): %w", i, in.Title, err)
		}
		links = append(links, res.Value)
	}

	for _, link := range links {
		if err := s.Repo.UpsertQuickLink(ctx, link); err != nil {
			return 0, fmt.Errorf("upserting quick link %s: %w", link.Title, err)
		}
	}
	return len(links), nil
}
