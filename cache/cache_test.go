package cache

import (
	"context"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
)

// setupTestCache connects to REDIS_ADDR and skips the test when no server is reachable.
func setupTestCache(t *testing.T) (*RedisRepoCache, func()) {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := Connect(ctx, addr)
	if err != nil {
		t.Skipf("redis unavailable: %v", err)
	}

	teardown := func() {
		client.Del(context.Background(), key("octocat"), key("ghost"))
		client.Close()
	}
	return NewRedisRepoCache(client, time.Minute), teardown
}

func TestKey(t *testing.T) {
	t.Run("should prefix the username", func(t *testing.T) {
		if got := key("octocat"); got != "github:repos:octocat" {
			t.Fatalf("\nwanted:\ngithub:repos:octocat\ngot:\n%s", got)
		}
	})

	t.Run("should share one entry across username spellings", func(t *testing.T) {
		if key("Octocat") != key("octocat") || key("OCTOCAT") != key("octocat") {
			t.Fatalf("\nwanted:\n%s\ngot:\n%s %s", key("octocat"), key("Octocat"), key("OCTOCAT"))
		}
	})
}

func TestRedisRepoCache_Close(t *testing.T) {
	t.Run("should close the client once", func(t *testing.T) {
		c := NewRedisRepoCache(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), time.Minute)
		if err := c.Close(); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if err := c.Close(); err == nil {
			t.Fatalf("\nwanted:\nerror closing twice\ngot:\nnil")
		}
	})
}

func TestRedisRepoCache(t *testing.T) {
	t.Run("should report a miss for an unknown username", func(t *testing.T) {
		c, teardown := setupTestCache(t)
		defer teardown()

		names, ok, err := c.GetRepositoryNames(context.Background(), "ghost")
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if ok || names != nil {
			t.Fatalf("\nwanted:\nmiss\ngot:\n%v %v", ok, names)
		}
	})

	t.Run("should return cached names in order", func(t *testing.T) {
		c, teardown := setupTestCache(t)
		defer teardown()

		want := []string{"Hello-World", "Spoon-Knife"}
		if err := c.SetRepositoryNames(context.Background(), "octocat", want); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		got, ok, err := c.GetRepositoryNames(context.Background(), "octocat")
		if err != nil || !ok {
			t.Fatalf("\nwanted:\nhit\ngot:\n%v %v", ok, err)
		}
		if !reflect.DeepEqual(want, got) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", want, got)
		}
	})

	t.Run("should hit for a differently cased username", func(t *testing.T) {
		c, teardown := setupTestCache(t)
		defer teardown()

		want := []string{"Hello-World"}
		if err := c.SetRepositoryNames(context.Background(), "Octocat", want); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		got, ok, err := c.GetRepositoryNames(context.Background(), "octocat")
		if err != nil || !ok || !reflect.DeepEqual(want, got) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v %v %v", want, got, ok, err)
		}
	})

	t.Run("should set the configured expiry", func(t *testing.T) {
		c, teardown := setupTestCache(t)
		defer teardown()

		if err := c.SetRepositoryNames(context.Background(), "octocat", nil); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		ttl, err := c.client.TTL(context.Background(), key("octocat")).Result()
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if ttl <= 0 || ttl > time.Minute {
			t.Fatalf("\nwanted:\n0 < ttl <= 1m\ngot:\n%v", ttl)
		}
	})
}

func TestConnect(t *testing.T) {
	t.Run("should fail for an unreachable server", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		client, err := Connect(ctx, "127.0.0.1:1")
		if err == nil {
			client.Close()
			t.Fatalf("\nwanted:\nerror\ngot:\nnil")
		}
	})
}
