package folio

import "net/http"

const (
	githubAccept     = "application/vnd.github.v3+json"
	githubAPIVersion = "2022-11-28"
	githubUserAgent  = "folio"
)

// githubRoundTripper adds the headers GitHub expects to every request and, when a token
// is configured, the bearer credential. Everything else is left to the base RoundTripper.
type githubRoundTripper struct {
	token string
	base  http.RoundTripper
}

func newGitHubTransport(token string, base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &githubRoundTripper{
		token: token,
		base:  base,
	}
}

// RoundTrip satisfies http.RoundTripper. The caller's request is cloned, never modified.
func (g *githubRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.Header.Set("Accept", githubAccept)
	out.Header.Set("X-GitHub-Api-Version", githubAPIVersion)
	if out.Header.Get("User-Agent") == "" {
		out.Header.Set("User-Agent", githubUserAgent)
	}
	if g.token != "" {
		out.Header.Set("Authorization", "Bearer "+g.token)
	}
	return g.base.RoundTrip(out)
}
