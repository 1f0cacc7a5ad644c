package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for TTL-bounded in-memory storage.
// The session store is built on top of it.
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CatalogSource defines the interface for fetching the raw catalog feed.
// Returns the raw records, the feed's generated-at stamp (empty when the
// feed is a bare array), and an error on fetch failure.
type CatalogSource interface {
	FetchCatalog(ctx context.Context) ([]RawRecord, string, error)
}
