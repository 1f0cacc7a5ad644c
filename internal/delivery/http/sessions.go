package http

import (
	"context"
	"fmt"
	"time"

	"github.com/ministore/backend/internal/domain"
	"github.com/ministore/backend/internal/usecase"
)

// SessionStore keeps live UI sessions in a TTL cache. Accessing a session
// re-sets it, so the TTL behaves as an idle timeout.
type SessionStore struct {
	cache          domain.CacheRepository
	catalog        *usecase.CatalogService
	ttl            time.Duration
	searchDebounce time.Duration
}

// NewSessionStore creates a session store. searchDebounce is the trailing
// quiet window applied to search events of sessions it creates.
func NewSessionStore(
	cache domain.CacheRepository,
	catalog *usecase.CatalogService,
	ttl time.Duration,
	searchDebounce time.Duration,
) *SessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &SessionStore{
		cache:          cache,
		catalog:        catalog,
		ttl:            ttl,
		searchDebounce: searchDebounce,
	}
}

// Create opens a new session and registers it under its id.
func (s *SessionStore) Create(ctx context.Context) *usecase.Session {
	session := usecase.NewSession(s.catalog, s.searchDebounce)
	// MemoryCache Set cannot fail; the interface keeps the error for parity
	// with other backends.
	_ = s.cache.Set(ctx, session.ID, session, s.ttl)
	return session
}

// Get resolves a session id, extending its idle TTL on success.
func (s *SessionStore) Get(ctx context.Context, id string) (*usecase.Session, error) {
	if id == "" {
		return nil, domain.ErrSessionNotFound
	}

	value, err := s.cache.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}

	session, ok := value.(*usecase.Session)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	_ = s.cache.Set(ctx, id, session, s.ttl)
	return session, nil
}

// Delete drops a session.
func (s *SessionStore) Delete(ctx context.Context, id string) {
	_ = s.cache.Delete(ctx, id)
}
