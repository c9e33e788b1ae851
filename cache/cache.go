// Package cache keeps GitHub repository listings in Redis so repeated syncs for the same
// username skip the upstream call until the entry expires.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "github:repos:"

// RedisRepoCache stores repository names as a JSON array under github:repos:<username>.
type RedisRepoCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRepoCache creates a cache whose entries expire after ttl.
func NewRedisRepoCache(client *redis.Client, ttl time.Duration) *RedisRepoCache {
	return &RedisRepoCache{client: client, ttl: ttl}
}

// Connect opens a client for addr and checks it answers.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis (%s): %w", addr, err)
	}
	return client, nil
}

// GitHub logins are case-insensitive, so every spelling of a username shares one entry.
func key(username string) string {
	return keyPrefix + strings.ToLower(username)
}

// Close releases the underlying client.
func (c *RedisRepoCache) Close() error {
	return c.client.Close()
}

// GetRepositoryNames returns the cached names for username. A missing entry is not an error.
func (c *RedisRepoCache) GetRepositoryNames(ctx context.Context, username string) ([]string, bool, error) {
	data, err := c.client.Get(ctx, key(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("getting cached repositories for %s: %w", username, err)
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, false, fmt.Errorf("decoding cached repositories for %s: %w", username, err)
	}
	return names, true, nil
}

// SetRepositoryNames caches names for username.
func (c *RedisRepoCache) SetRepositoryNames(ctx context.Context, username string, names []string) error {
	if names == nil {
		names = []string{}
	}
	data, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("encoding repositories for %s: %w", username, err)
	}
	if err := c.client.Set(ctx, key(username), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("caching repositories for %s: %w", username, err)
	}
	return nil
}
