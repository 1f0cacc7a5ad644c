package domain

import "time"

// RawRecord is a single untyped record as received from the catalog feed.
// Field names vary across feed revisions (the upstream is an Excel export),
// and values may be absent, null, or the literal string "None".
type RawRecord map[string]any

// Product is the normalized catalog entity. Immutable once built.
type Product struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Brand          string  `json:"brand"`
	Category       string  `json:"category"`
	Price          float64 `json:"price"`
	FormattedPrice string  `json:"formattedPrice"`
	Stock          int     `json:"stock"`
	ImageURL       string  `json:"imageUrl,omitempty"`
	Description    string  `json:"description,omitempty"`
	SearchText     string  `json:"-"`
}

// InStock reports whether the product has positive stock.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// BrandFallback is the resolved brand when neither the explicit field nor
// name inference yields one. Products in this bucket are never a facet chip.
const BrandFallback = "Not specified"

// FacetField selects which product attribute backs the single active facet.
type FacetField string

const (
	FacetFieldBrand    FacetField = "brand"
	FacetFieldCategory FacetField = "category"
)

// FacetValue returns the product attribute backing the given facet field.
func (p Product) FacetValue(field FacetField) string {
	if field == FacetFieldCategory {
		return p.Category
	}
	return p.Brand
}

// FacetEntry is one selectable filter chip with its product count.
type FacetEntry struct {
	Value  string `json:"value"`
	Count  int    `json:"count"`
	Active bool   `json:"active,omitempty"`
}

// FilterState holds the current filter selection. The zero value matches
// everything.
type FilterState struct {
	Query       string `json:"query"`
	Facet       string `json:"facet"` // empty = no facet selected
	InStockOnly bool   `json:"inStockOnly"`
}

// CatalogStats are the summary counts recomputed once per successful load.
type CatalogStats struct {
	Total       int       `json:"total"`
	InStock     int       `json:"inStock"`
	GeneratedAt string    `json:"generatedAt,omitempty"`
	LoadedAt    time.Time `json:"loadedAt"`
}

// PageState describes the pagination display state of a filtered view.
type PageState string

const (
	PageStateEmpty    PageState = "empty"    // no products match, hide load-more
	PageStatePartial  PageState = "partial"  // more pages available
	PageStateComplete PageState = "complete" // everything is shown
)
