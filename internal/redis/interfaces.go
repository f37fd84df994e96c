package redis

import "context"

// ResponseCache defines the storage used for idempotent request replay.
type ResponseCache interface {
	Get(ctx context.Context, key string) (*CachedResponse, error)
	Set(ctx context.Context, key string, resp *CachedResponse) error
}

// Ensure concrete types implement interfaces.
var (
	_ ResponseCache = (*IdempotencyStore)(nil)
)
