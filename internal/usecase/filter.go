package usecase

import (
	"strings"

	"github.com/ministore/backend/internal/domain"
)

// DefaultPageSize is used when no page size is configured.
const DefaultPageSize = 12

// Filter returns the subset of products matching every active criterion,
// preserving the original catalog order. Pure and total: the same inputs
// always yield the same sequence, and an empty result is a valid outcome,
// not an error. The caller owns invocation cadence (the search path is
// expected to be debounced upstream).
func Filter(products []domain.Product, state domain.FilterState, field domain.FacetField) []domain.Product {
	query := strings.ToLower(strings.TrimSpace(state.Query))

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if query != "" && !strings.Contains(p.SearchText, query) {
			continue
		}
		if state.Facet != "" && p.FacetValue(field) != state.Facet {
			continue
		}
		if state.InStockOnly && !p.InStock() {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// Page returns the cumulative prefix of the filtered list for the given
// page number: "load more" grows the prefix, it never re-windows, so item k
// keeps its position between consecutive calls within one filter state.
func Page(filtered []domain.Product, pageNumber, pageSize int) []domain.Product {
	return filtered[:PageEnd(len(filtered), pageNumber, pageSize)]
}

// PageEnd returns the clamped end index of the visible prefix.
func PageEnd(filteredLen, pageNumber, pageSize int) int {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	end := pageNumber * pageSize
	if end > filteredLen {
		end = filteredLen
	}
	return end
}

// PageStateOf derives the pagination display state from the filtered length
// and the visible prefix end.
func PageStateOf(filteredLen, pageEnd int) domain.PageState {
	switch {
	case filteredLen == 0:
		return domain.PageStateEmpty
	case pageEnd < filteredLen:
		return domain.PageStatePartial
	default:
		return domain.PageStateComplete
	}
}

// Remaining returns the count shown on the load-more label.
func Remaining(filteredLen, pageEnd int) int {
	if pageEnd >= filteredLen {
		return 0
	}
	return filteredLen - pageEnd
}
