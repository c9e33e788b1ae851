package folio

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

type testBaseRoundTripper struct {
	wasCalled bool
	response  *http.Response
	err       error
	request   *http.Request
}

func (tR *testBaseRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	tR.wasCalled = true
	tR.request = req
	if tR.err != nil {
		return nil, tR.err
	}
	if tR.response == nil {
		tR.response = &http.Response{
			StatusCode: http.StatusNoContent,
			Body:       io.NopCloser(bytes.NewBufferString("")),
			Header:     make(http.Header),
		}
	}
	return tR.response, nil
}

func TestGitHubRoundTripper(t *testing.T) {
	t.Run("should set the GitHub headers on a copy of the request", func(t *testing.T) {
		base := &testBaseRoundTripper{}
		roundTripper := newGitHubTransport("", base)

		req := httptest.NewRequest("GET", "https://api.github.com/users/octocat/repos", nil)
		req.Header.Del("User-Agent")

		if _, err := roundTripper.RoundTrip(req); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if !base.wasCalled {
			t.Fatal("expected base RoundTrip to be called")
		}
		if base.request == req {
			t.Fatal("expected base RoundTrip to receive a copy of the request")
		}
		if got := req.Header.Get("Accept"); got != "" {
			t.Fatalf("\nwanted:\noriginal request untouched\ngot:\nAccept %q", got)
		}

		sent := base.request.Header
		if got := sent.Get("Accept"); got != githubAccept {
			t.Fatalf("\nwanted:\n%s\ngot:\n%s", githubAccept, got)
		}
		if got := sent.Get("User-Agent"); got != githubUserAgent {
			t.Fatalf("\nwanted:\n%s\ngot:\n%s", githubUserAgent, got)
		}
		if got := sent.Get("Authorization"); got != "" {
			t.Fatalf("\nwanted:\nno authorization\ngot:\n%s", got)
		}
	})

	t.Run("should send the token as a bearer credential", func(t *testing.T) {
		base := &testBaseRoundTripper{}
		roundTripper := newGitHubTransport("s3cret", base)

		req := httptest.NewRequest("GET", "https://api.github.com/users/octocat/repos", nil)
		if _, err := roundTripper.RoundTrip(req); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if got := base.request.Header.Get("Authorization"); got != "Bearer s3cret" {
			t.Fatalf("\nwanted:\nBearer s3cret\ngot:\n%s", got)
		}
	})

	t.Run("should keep a caller supplied User-Agent", func(t *testing.T) {
		base := &testBaseRoundTripper{}
		roundTripper := newGitHubTransport("", base)

		req := httptest.NewRequest("GET", "https://api.github.com", nil)
		req.Header.Set("User-Agent", "custom")
		if _, err := roundTripper.RoundTrip(req); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if got := base.request.Header.Get("User-Agent"); got != "custom" {
			t.Fatalf("\nwanted:\ncustom\ngot:\n%s", got)
		}
	})

	t.Run("should return the base response untouched", func(t *testing.T) {
		want := &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString("[]")),
			Header:     make(http.Header),
		}
		base := &testBaseRoundTripper{response: want}

		resp, err := newGitHubTransport("", base).RoundTrip(httptest.NewRequest("GET", "https://api.github.com", nil))
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if resp != want {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", want, resp)
		}
	})
}
