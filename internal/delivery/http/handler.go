package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ministore/backend/internal/domain"
	"github.com/ministore/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog  *usecase.CatalogService
	sessions *SessionStore
}

// NewHandler creates a new HTTP handler
func NewHandler(catalog *usecase.CatalogService, sessions *SessionStore) *Handler {
	return &Handler{
		catalog:  catalog,
		sessions: sessions,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "ministore-backend",
		"version": "1.0.0",
	})
}

// GetCatalog returns the summary counts and the facet index for the current
// catalog. Before the first successful load it reports loaded=false with
// zeroed stats rather than an error.
func (h *Handler) GetCatalog(c *gin.Context) {
	snap, ok := h.catalog.Snapshot()
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"loaded": false,
			"stats":  domain.CatalogStats{},
			"facets": []domain.FacetEntry{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"loaded": true,
		"stats":  snap.Stats,
		"facets": snap.Facets,
	})
}

// ListProducts is the stateless query endpoint: clients that keep their own
// filter state pass it as query params and get the derived page back.
func (h *Handler) ListProducts(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a positive integer"})
			return
		}
		page = parsed
	}

	inStockOnly := false
	if raw := c.Query("inStock"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "inStock must be a boolean"})
			return
		}
		inStockOnly = parsed
	}

	state := domain.FilterState{
		Query:       c.Query("q"),
		Facet:       c.Query("facet"),
		InStockOnly: inStockOnly,
	}

	c.JSON(http.StatusOK, h.catalog.Derive(state, page))
}

// GetProduct returns the detail payload for one product (the modal data).
// Description and image URL are omitted when absent; the client substitutes
// its placeholder rendering.
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.catalog.ProductByID(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCatalogNotLoaded):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog not loaded yet"})
		case errors.Is(err, domain.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// RefreshCatalog triggers a feed fetch. The fetch runs inline; a concurrent
// refresh is rejected with 409 so catalog replacement never races.
func (h *Handler) RefreshCatalog(c *gin.Context) {
	err := h.catalog.Refresh(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRefreshInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": "refresh already in progress"})
		case errors.Is(err, domain.ErrFeedUnavailable):
			// Prior catalog, if any, stays usable.
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog feed unavailable, please retry"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	snap, _ := h.catalog.Snapshot()
	c.JSON(http.StatusOK, gin.H{"loaded": true, "stats": snap.Stats})
}

// CreateSession opens a new UI session and returns its id with the initial
// (unfiltered, first page) view.
func (h *Handler) CreateSession(c *gin.Context) {
	session := h.sessions.Create(c.Request.Context())

	c.JSON(http.StatusCreated, gin.H{
		"sessionId": session.ID,
		"view":      session.View(),
	})
}

// GetSessionView returns the current view for a session.
func (h *Handler) GetSessionView(c *gin.Context) {
	session, ok := h.lookupSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.View())
}

type searchEvent struct {
	Text string `json:"text"`
}

// SearchEvent applies a search-input event. The committed query trails the
// debounce window, so the returned view may still reflect the previous
// query when events arrive faster than the window.
func (h *Handler) SearchEvent(c *gin.Context) {
	session, ok := h.lookupSession(c)
	if !ok {
		return
	}

	var event searchEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid search event payload"})
		return
	}

	session.Search(event.Text)
	c.JSON(http.StatusOK, session.View())
}

type facetEvent struct {
	Value string `json:"value" binding:"required"`
}

// FacetEvent applies a facet chip toggle.
func (h *Handler) FacetEvent(c *gin.Context) {
	session, ok := h.lookupSession(c)
	if !ok {
		return
	}

	var event facetEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "facet event requires a value"})
		return
	}

	session.ToggleFacet(event.Value)
	c.JSON(http.StatusOK, session.View())
}

type stockEvent struct {
	InStockOnly bool `json:"inStockOnly"`
}

// StockEvent applies the in-stock-only checkbox state.
func (h *Handler) StockEvent(c *gin.Context) {
	session, ok := h.lookupSession(c)
	if !ok {
		return
	}

	var event stockEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stock event payload"})
		return
	}

	session.SetStockOnly(event.InStockOnly)
	c.JSON(http.StatusOK, session.View())
}

// LoadMoreEvent reveals the next page of the current filtered list.
func (h *Handler) LoadMoreEvent(c *gin.Context) {
	session, ok := h.lookupSession(c)
	if !ok {
		return
	}

	session.LoadMore()
	c.JSON(http.StatusOK, session.View())
}

// ClearFiltersEvent resets the session's filter state and pagination.
func (h *Handler) ClearFiltersEvent(c *gin.Context) {
	session, ok := h.lookupSession(c)
	if !ok {
		return
	}

	session.ClearFilters()
	c.JSON(http.StatusOK, session.View())
}

// lookupSession resolves the :id path param, writing the 404 itself when
// the session is unknown or expired.
func (h *Handler) lookupSession(c *gin.Context) (*usecase.Session, bool) {
	session, err := h.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found or expired"})
		return nil, false
	}
	return session, true
}
