package folio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// GitHubAPIURL is the production GitHub REST API endpoint.
const GitHubAPIURL = "https://api.github.com"

// RepositoryLister lists the repository names of a GitHub user.
type RepositoryLister interface {
	ListRepositoryNames(ctx context.Context, username string) ([]string, error)
}

var _ RepositoryLister = (*GitHubClient)(nil)

// GitHubRepository is the part of a GitHub repository object the sync keeps.
type GitHubRepository struct {
	Name string `json:"name"`
}

// GitHubClient calls the GitHub "list repositories for a user" endpoint.
// Each call is a single attempt with a bounded timeout.
type GitHubClient struct {
	baseURL string
	token   string
	timeout time.Duration
	base    http.RoundTripper
	client  *http.Client
}

// NewGitHubClient creates a client for GitHubAPIURL with a 10 second timeout and applies options.
func NewGitHubClient(options ...func(*GitHubClient) error) (*GitHubClient, error) {
	g := &GitHubClient{
		baseURL: GitHubAPIURL,
		timeout: 10 * time.Second,
		base:    http.DefaultTransport,
	}
	for _, option := range options {
		if err := option(g); err != nil {
			return nil, fmt.Errorf("applying option on github client : %w", err)
		}
	}
	g.client = &http.Client{
		Timeout:   g.timeout,
		Transport: newGitHubTransport(g.token, g.base),
	}
	return g, nil
}

// WithGitHubBaseURL points the client at another API root. Only tests need this.
func WithGitHubBaseURL(baseURL string) func(*GitHubClient) error {
	return func(g *GitHubClient) error {
		parsed, err := url.Parse(baseURL)
		if err != nil {
			return fmt.Errorf("parsing base url %s : %w", baseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("base url %s must be absolute", baseURL)
		}
		g.baseURL = strings.TrimRight(baseURL, "/")
		return nil
	}
}

// WithGitHubTimeout bounds each call. Zero or less keeps the default.
func WithGitHubTimeout(timeout time.Duration) func(*GitHubClient) error {
	return func(g *GitHubClient) error {
		if timeout > 0 {
			g.timeout = timeout
		}
		return nil
	}
}

// WithGitHubToken sends token as a bearer credential on every call.
func WithGitHubToken(token string) func(*GitHubClient) error {
	return func(g *GitHubClient) error {
		g.token = token
		return nil
	}
}

// WithGitHubTransport replaces the base transport the client's headers are layered over.
func WithGitHubTransport(base http.RoundTripper) func(*GitHubClient) error {
	return func(g *GitHubClient) error {
		if base == nil {
			return fmt.Errorf("github transport is nil")
		}
		g.base = base
		return nil
	}
}

// ListRepositoryNames returns the name of every repository GitHub lists for username, in the order
// GitHub returns them. A blank username fails with ErrMissingUsername before any request is made.
// Upstream failures are returned as *UpstreamError.
func (g *GitHubClient) ListRepositoryNames(ctx context.Context, username string) ([]string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrMissingUsername
	}

	endpoint := fmt.Sprintf("%s/users/%s/repos", g.baseURL, url.PathEscape(username))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request : %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &UpstreamError{
			StatusCode: http.StatusBadGateway,
			Err:        fmt.Errorf("getting repositories for %s : %w", username, err),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("github api failed with status %s", resp.Status),
		}
	}

	var repos []GitHubRepository
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, &UpstreamError{
			StatusCode: http.StatusBadGateway,
			Err:        fmt.Errorf("decoding repositories : %w", err),
		}
	}

	names := make([]string, 0, len(repos))
	for _, repo := range repos {
		names = append(names, repo.Name)
	}
	return names, nil
}
