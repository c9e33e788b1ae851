package folio

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"
	"time"
)

type githubStub struct {
	mu     sync.Mutex
	calls  int
	path   string
	accept string
}

func (s *githubStub) snapshot() (calls int, path, accept string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls, s.path, s.accept
}

// setupGitHubStub starts an upstream that answers every request with status and body
// and records the calls it receives.
func setupGitHubStub(t *testing.T, status int, body string) (*GitHubClient, *githubStub, func()) {
	t.Helper()

	stub := &githubStub{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.mu.Lock()
		stub.calls++
		stub.path = r.URL.Path
		stub.accept = r.Header.Get("Accept")
		stub.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))

	client, err := NewGitHubClient(WithGitHubBaseURL(server.URL), WithGitHubTimeout(2*time.Second))
	if err != nil {
		server.Close()
		t.Fatalf("creating github client: %v", err)
	}
	return client, stub, server.Close
}

func TestGitHubClient_ListRepositoryNames(t *testing.T) {
	t.Run("should return repository names in upstream order", func(t *testing.T) {
		body := `[{"name":"Hello-World","id":1296269,"private":false},{"name":"Spoon-Knife","id":1300192}]`
		client, stub, teardown := setupGitHubStub(t, http.StatusOK, body)
		defer teardown()

		got, err := client.ListRepositoryNames(context.Background(), "octocat")
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		want := []string{"Hello-World", "Spoon-Knife"}
		if !reflect.DeepEqual(want, got) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", want, got)
		}

		calls, path, accept := stub.snapshot()
		if calls != 1 {
			t.Fatalf("\nwanted:\n1 call\ngot:\n%d", calls)
		}
		if path != "/users/octocat/repos" {
			t.Fatalf("\nwanted:\n/users/octocat/repos\ngot:\n%s", path)
		}
		if accept != githubAccept {
			t.Fatalf("\nwanted:\n%s\ngot:\n%s", githubAccept, accept)
		}
	})

	t.Run("should return an empty list for a user without repositories", func(t *testing.T) {
		client, _, teardown := setupGitHubStub(t, http.StatusOK, `[]`)
		defer teardown()

		got, err := client.ListRepositoryNames(context.Background(), "octocat")
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("\nwanted:\n[]\ngot:\n%v", got)
		}
	})

	t.Run("should fail without calling upstream when the username is blank", func(t *testing.T) {
		client, stub, teardown := setupGitHubStub(t, http.StatusOK, `[]`)
		defer teardown()

		for _, username := range []string{"", "   "} {
			_, err := client.ListRepositoryNames(context.Background(), username)
			if !errors.Is(err, ErrMissingUsername) {
				t.Fatalf("\nwanted:\n%v\ngot:\n%v", ErrMissingUsername, err)
			}
		}
		if calls, _, _ := stub.snapshot(); calls != 0 {
			t.Fatalf("\nwanted:\n0 calls\ngot:\n%d", calls)
		}
	})

	t.Run("should relay the upstream status on failure", func(t *testing.T) {
		for _, status := range []int{http.StatusNotFound, http.StatusForbidden, http.StatusInternalServerError} {
			client, stub, teardown := setupGitHubStub(t, status, `{"message":"Not Found"}`)

			_, err := client.ListRepositoryNames(context.Background(), "ghost")
			teardown()

			var upstreamErr *UpstreamError
			if !errors.As(err, &upstreamErr) {
				t.Fatalf("\nwanted:\n*UpstreamError\ngot:\n%T %v", err, err)
			}
			if upstreamErr.StatusCode != status {
				t.Fatalf("\nwanted:\n%d\ngot:\n%d", status, upstreamErr.StatusCode)
			}
			if calls, _, _ := stub.snapshot(); calls != 1 {
				t.Fatalf("\nwanted:\na single attempt\ngot:\n%d", calls)
			}
		}
	})

	t.Run("should report an unreachable upstream as a bad gateway", func(t *testing.T) {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("listening: %v", err)
		}
		addr := listener.Addr().String()
		listener.Close()

		client, err := NewGitHubClient(WithGitHubBaseURL("http://"+addr), WithGitHubTimeout(2*time.Second))
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		_, err = client.ListRepositoryNames(context.Background(), "octocat")
		var upstreamErr *UpstreamError
		if !errors.As(err, &upstreamErr) || upstreamErr.StatusCode != http.StatusBadGateway {
			t.Fatalf("\nwanted:\n502 UpstreamError\ngot:\n%v", err)
		}
	})

	t.Run("should report a malformed body as a bad gateway", func(t *testing.T) {
		client, _, teardown := setupGitHubStub(t, http.StatusOK, `{"not":"a list"}`)
		defer teardown()

		_, err := client.ListRepositoryNames(context.Background(), "octocat")
		var upstreamErr *UpstreamError
		if !errors.As(err, &upstreamErr) || upstreamErr.StatusCode != http.StatusBadGateway {
			t.Fatalf("\nwanted:\n502 UpstreamError\ngot:\n%v", err)
		}
	})

	t.Run("should time out a slow upstream", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer server.Close()
		defer close(release)

		client, err := NewGitHubClient(WithGitHubBaseURL(server.URL), WithGitHubTimeout(50*time.Millisecond))
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		_, err = client.ListRepositoryNames(context.Background(), "octocat")
		var upstreamErr *UpstreamError
		if !errors.As(err, &upstreamErr) || upstreamErr.StatusCode != http.StatusBadGateway {
			t.Fatalf("\nwanted:\n502 UpstreamError\ngot:\n%v", err)
		}
	})
}

func TestNewGitHubClient(t *testing.T) {
	t.Run("should default to the public API", func(t *testing.T) {
		client, err := NewGitHubClient()
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if client.baseURL != GitHubAPIURL {
			t.Fatalf("\nwanted:\n%s\ngot:\n%s", GitHubAPIURL, client.baseURL)
		}
		if client.client.Timeout != 10*time.Second {
			t.Fatalf("\nwanted:\n10s\ngot:\n%v", client.client.Timeout)
		}
	})

	t.Run("should reject a relative base url", func(t *testing.T) {
		if _, err := NewGitHubClient(WithGitHubBaseURL("/api")); err == nil {
			t.Fatalf("\nwanted:\nerror\ngot:\nnil")
		}
	})
}
