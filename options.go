package folio

import (
	"errors"
	"fmt"
	"log/slog"
)

// WithOptions applies a series of configuration functions to the service.
// Each option function can modify the service and return an error if it fails.
//
// Parameters:
//   - options: Variadic list of configuration functions
//
// Returns:
//   - error: First error encountered from any option function
func (s *Service) WithOptions(options ...func(*Service) error) error {
	for _, option := range options {
		if err := option(s); err != nil {
			return fmt.Errorf("applying option on folio : %w", err)
		}
	}
	return nil
}

// WithLogger sets the service logger. A nil logger keeps the discarding default.
func WithLogger(logger *slog.Logger) func(*Service) error {
	return func(s *Service) error {
		if logger != nil {
			s.Logger = logger
		}
		return nil
	}
}

// WithConfig sets the process configuration the service reads owner and limit settings from.
func WithConfig(cfg *Config) func(*Service) error {
	return func(s *Service) error {
		if cfg == nil {
			return errors.New("config is nil")
		}
		s.Config = cfg
		return nil
	}
}

// WithRepo sets the record store. A service can only be given one.
func WithRepo(repo Repository) func(*Service) error {
	return func(s *Service) error {
		if s.Repo != nil {
			return errors.New("service already has a repository defined")
		}
		s.Repo = repo
		return nil
	}
}

// WithNotifier sets the dispatcher that delivers submission alerts.
func WithNotifier(notifier Notifier) func(*Service) error {
	return func(s *Service) error {
		s.Notifier = notifier
		return nil
	}
}

// WithGitHub sets the client used by SyncGitHub. Without it a default GitHubClient is created.
func WithGitHub(lister RepositoryLister) func(*Service) error {
	return func(s *Service) error {
		s.GitHub = lister
		return nil
	}
}

// WithRepoCache enables caching of repository listings.
func WithRepoCache(cache RepoCache) func(*Service) error {
	return func(s *Service) error {
		s.Cache = cache
		return nil
	}
}
