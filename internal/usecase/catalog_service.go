package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ministore/backend/internal/domain"
)

// Snapshot is an immutable view of one successful catalog load. Filtering
// always derives new slices from it; the product list itself is never
// mutated after a load.
type Snapshot struct {
	Products []domain.Product
	Facets   []domain.FacetEntry
	Stats    domain.CatalogStats

	byID map[string]int
}

// View is the pre-computed render payload handed to the UI collaborator: the
// visible page of products, the facet chips with the active one flagged,
// summary counts, and the pagination display state.
type View struct {
	Products  []domain.Product    `json:"products"`
	Facets    []domain.FacetEntry `json:"facets"`
	Stats     domain.CatalogStats `json:"stats"`
	Filter    domain.FilterState  `json:"filter"`
	Page      int                 `json:"page"`
	PageState domain.PageState    `json:"pageState"`
	Shown     int                 `json:"shown"`
	Matched   int                 `json:"matched"`
	Remaining int                 `json:"remaining"`
}

// CatalogServiceConfig holds configuration for the catalog service.
type CatalogServiceConfig struct {
	FacetField         domain.FacetField
	PageSize           int
	RetryDelay         time.Duration
	EnableDebugLogging bool
}

// CatalogService owns the loaded catalog snapshot and derives filtered,
// paged views from it. The snapshot is replaced atomically on a successful
// refresh; a failed refresh leaves the prior snapshot untouched.
type CatalogService struct {
	source     domain.CatalogSource
	facetField domain.FacetField
	pageSize   int
	retryDelay time.Duration
	debug      bool

	mu   sync.RWMutex
	snap *Snapshot

	refreshMu  sync.Mutex
	inFlight   bool
	retryArmed bool
}

// NewCatalogService creates a catalog service with dependencies.
func NewCatalogService(source domain.CatalogSource, config CatalogServiceConfig) *CatalogService {
	facetField := config.FacetField
	if facetField != domain.FacetFieldBrand && facetField != domain.FacetFieldCategory {
		facetField = domain.FacetFieldBrand
	}

	pageSize := config.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	retryDelay := config.RetryDelay
	if retryDelay <= 0 {
		retryDelay = 2 * time.Second
	}

	return &CatalogService{
		source:     source,
		facetField: facetField,
		pageSize:   pageSize,
		retryDelay: retryDelay,
		debug:      config.EnableDebugLogging,
	}
}

// FacetField returns the configured facet dimension.
func (s *CatalogService) FacetField() domain.FacetField {
	return s.facetField
}

// PageSize returns the configured page size.
func (s *CatalogService) PageSize() int {
	return s.pageSize
}

// Refresh fetches the feed and replaces the in-memory catalog. At most one
// refresh runs at a time; a concurrent caller gets ErrRefreshInFlight
// instead of racing the snapshot swap. When the very first load fails, a
// one-shot automatic retry is scheduled after the configured delay.
func (s *CatalogService) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	if s.inFlight {
		s.refreshMu.Unlock()
		return domain.ErrRefreshInFlight
	}
	s.inFlight = true
	s.refreshMu.Unlock()

	defer func() {
		s.refreshMu.Lock()
		s.inFlight = false
		s.refreshMu.Unlock()
	}()

	records, generatedAt, err := s.source.FetchCatalog(ctx)
	if err != nil {
		s.scheduleRetryOnce()
		return fmt.Errorf("%w: %v", domain.ErrFeedUnavailable, err)
	}

	products := Normalize(records)
	snap := &Snapshot{
		Products: products,
		Facets:   BuildFacets(products, s.facetField),
		Stats:    BuildStats(products, generatedAt),
		byID:     indexByID(products),
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	log.Printf("[CATALOG] Loaded %d products (%d in stock, %d %s facets)",
		snap.Stats.Total, snap.Stats.InStock, len(snap.Facets), s.facetField)
	return nil
}

// scheduleRetryOnce arms a single automatic retry if no catalog was ever
// successfully loaded. Later failures (with a usable prior catalog) do not
// retry on their own.
func (s *CatalogService) scheduleRetryOnce() {
	s.mu.RLock()
	loaded := s.snap != nil
	s.mu.RUnlock()
	if loaded {
		return
	}

	s.refreshMu.Lock()
	armed := s.retryArmed
	s.retryArmed = true
	s.refreshMu.Unlock()
	if armed {
		return
	}

	log.Printf("[CATALOG] Initial load failed, retrying in %s", s.retryDelay)
	time.AfterFunc(s.retryDelay, func() {
		if err := s.Refresh(context.Background()); err != nil {
			log.Printf("[CATALOG] Retry failed: %v", err)
		}
	})
}

// Snapshot returns the current catalog snapshot. ok is false before the
// first successful load.
func (s *CatalogService) Snapshot() (*Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap, s.snap != nil
}

// ProductByID looks up a product in the current snapshot.
func (s *CatalogService) ProductByID(id string) (domain.Product, error) {
	snap, ok := s.Snapshot()
	if !ok {
		return domain.Product{}, domain.ErrCatalogNotLoaded
	}
	idx, ok := snap.byID[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return snap.Products[idx], nil
}

// Derive runs the filter-page pipeline for the given state and page number
// against the current snapshot and assembles the render payload. Before the
// first successful load it produces a valid empty view.
func (s *CatalogService) Derive(state domain.FilterState, page int) View {
	if page < 1 {
		page = 1
	}

	snap, ok := s.Snapshot()
	if !ok {
		return View{
			Products:  []domain.Product{},
			Facets:    []domain.FacetEntry{},
			Filter:    state,
			Page:      page,
			PageState: domain.PageStateEmpty,
		}
	}

	filtered := Filter(snap.Products, state, s.facetField)
	pageEnd := PageEnd(len(filtered), page, s.pageSize)

	if s.debug {
		log.Printf("[CATALOG] Derive query=%q facet=%q inStock=%v page=%d -> %d/%d shown",
			state.Query, state.Facet, state.InStockOnly, page, pageEnd, len(filtered))
	}

	return View{
		Products:  filtered[:pageEnd],
		Facets:    markActive(snap.Facets, state.Facet),
		Stats:     snap.Stats,
		Filter:    state,
		Page:      page,
		PageState: PageStateOf(len(filtered), pageEnd),
		Shown:     pageEnd,
		Matched:   len(filtered),
		Remaining: Remaining(len(filtered), pageEnd),
	}
}

// markActive copies the facet index with the selected chip flagged. The
// index itself is built once per load and must not be mutated here.
func markActive(facets []domain.FacetEntry, active string) []domain.FacetEntry {
	out := make([]domain.FacetEntry, len(facets))
	for i, f := range facets {
		f.Active = active != "" && f.Value == active
		out[i] = f
	}
	return out
}

func indexByID(products []domain.Product) map[string]int {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return byID
}
