package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

const defaultShareTTL = 10 * time.Minute

// ShareCache keeps hash → owner id lookups for public share links.
type ShareCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewShareCache(client *redisv9.Client, ttl time.Duration) *ShareCache {
	if ttl <= 0 {
		ttl = defaultShareTTL
	}
	return &ShareCache{client: client, ttl: ttl}
}

// GetOwner returns the cached owner of hash; ok is false on a miss.
func (c *ShareCache) GetOwner(ctx context.Context, hash string) (int, bool, error) {
	raw, err := c.client.Get(ctx, shareKey(hash)).Result()
	if errors.Is(err, redisv9.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("redis get share owner failed: %w", err)
	}
	userID, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("parse cached share owner %q: %w", raw, err)
	}
	return userID, true, nil
}

func (c *ShareCache) SetOwner(ctx context.Context, hash string, userID int) error {
	if err := c.client.Set(ctx, shareKey(hash), strconv.Itoa(userID), c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set share owner failed: %w", err)
	}
	return nil
}

func (c *ShareCache) Delete(ctx context.Context, hash string) error {
	if err := c.client.Del(ctx, shareKey(hash)).Err(); err != nil {
		return fmt.Errorf("redis delete share owner failed: %w", err)
	}
	return nil
}

func (c *ShareCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func shareKey(hash string) string {
	return "brain:share:" + hash
}
