package cache

import (
	"context"
	"time"
)

// NoopCache is used when Redis is not configured; every read is a miss.
type NoopCache struct{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (NoopCache) GetJSON(ctx context.Context, key string, dst any) (bool, error) { return false, nil }

func (NoopCache) SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error {
	return nil
}

func (NoopCache) Del(ctx context.Context, keys ...string) error { return nil }
