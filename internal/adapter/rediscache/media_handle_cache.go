package rediscache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"adforge/internal/core/domain"
)

// Connect opens a redis client from either a redis:// URL or a plain
// host:port address.
func Connect(addr string) (*redis.Client, error) {
	if strings.HasPrefix(addr, "redis://") {
		opt, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: addr}), nil
}

// MediaHandleCache implements port.MediaHandleCache on redis. Keys are
// scoped per upload and platform; values are the opaque handle the platform
// returned from the first successful upload.
type MediaHandleCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMediaHandleCache returns a cache with the given handle TTL. A zero ttl
// stores handles without expiry.
func NewMediaHandleCache(client *redis.Client, ttl time.Duration) *MediaHandleCache {
	return &MediaHandleCache{client: client, ttl: ttl}
}

func handleKey(uploadID int64, platform domain.Platform) string {
	return fmt.Sprintf("media:handle:%d:%s", uploadID, platform)
}

// GetHandle returns the cached handle or "" on a miss.
func (c *MediaHandleCache) GetHandle(ctx context.Context, uploadID int64, platform domain.Platform) (string, error) {
	val, err := c.client.Get(ctx, handleKey(uploadID, platform)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// PutHandle stores a freshly resolved handle for reuse by later runs.
func (c *MediaHandleCache) PutHandle(ctx context.Context, uploadID int64, platform domain.Platform, handle string) error {
	return c.client.Set(ctx, handleKey(uploadID, platform), handle, c.ttl).Err()
}
