package storage

import (
	"context"
	"time"
)

// CacheEntry stores one cached payload and its freshness window.
type CacheEntry struct {
	CacheKey     string
	Scope        string
	UserID       int
	PayloadBytes []byte
	RefreshedAt  time.Time
	ExpiresAt    time.Time
}

// Fresh reports whether the entry may still be served at now.
func (e CacheEntry) Fresh(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.Before(e.ExpiresAt)
}

// Store is the contract for web cache persistence.
type Store interface {
	Close() error
	GetCacheEntry(ctx context.Context, cacheKey string) (CacheEntry, bool, error)
	PutCacheEntry(ctx context.Context, entry CacheEntry) error
	DeleteCacheEntry(ctx context.Context, cacheKey string) error
	PruneExpired(ctx context.Context, now time.Time) (int64, error)
}
