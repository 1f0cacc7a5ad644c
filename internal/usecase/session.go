package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ministore/backend/internal/domain"
)

// Session holds one client's filter state and page position. Event methods
// are mutex-guarded and run to completion, so state mutation is always fully
// applied before the next event is processed. Each View derivation re-reads
// the current catalog snapshot, so a catalog replacement is picked up lazily
// without touching session state.
type Session struct {
	ID string

	svc      *CatalogService
	debounce *Debouncer

	mu    sync.Mutex
	state domain.FilterState
	page  int
}

// NewSession creates a session against the catalog service. searchDebounce
// is the trailing quiet window for the search path; zero applies search
// input synchronously.
func NewSession(svc *CatalogService, searchDebounce time.Duration) *Session {
	return &Session{
		ID:       uuid.NewString(),
		svc:      svc,
		debounce: NewDebouncer(searchDebounce),
		page:     1,
	}
}

// Search coalesces keystrokes: only the last text within the debounce
// window is committed. Committing resets pagination to the first page.
func (s *Session) Search(text string) {
	s.debounce.Schedule(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.state.Query = text
		s.page = 1
	})
}

// ToggleFacet selects the facet value, or clears the selection when the
// active value is re-selected. Single-valued: picking a new value replaces
// the old one. Resets pagination.
func (s *Session) ToggleFacet(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Facet == value {
		s.state.Facet = ""
	} else {
		s.state.Facet = value
	}
	s.page = 1
}

// SetStockOnly sets the in-stock-only toggle and resets pagination.
func (s *Session) SetStockOnly(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.InStockOnly = on
	s.page = 1
}

// LoadMore reveals the next page. It is the only event that keeps the
// current filter state and does not reset pagination.
func (s *Session) LoadMore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page++
}

// ClearFilters resets the whole filter state and pagination, and cancels
// any pending debounced search so a stale query cannot land afterwards.
func (s *Session) ClearFilters() {
	s.debounce.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domain.FilterState{}
	s.page = 1
}

// View derives the current render payload.
func (s *Session) View() View {
	s.mu.Lock()
	state, page := s.state, s.page
	s.mu.Unlock()

	return s.svc.Derive(state, page)
}

// State returns a copy of the current filter state and page.
func (s *Session) State() (domain.FilterState, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.page
}

// Close cancels any pending debounced work.
func (s *Session) Close() {
	s.debounce.Stop()
}
