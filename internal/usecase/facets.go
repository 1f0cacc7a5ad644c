package usecase

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/ministore/backend/internal/domain"
)

// BuildFacets computes the selectable filter chips for the given facet
// field. Sorted by count descending, ties by value ascending, so chip order
// is reproducible across runs with identical input. Products in the
// unspecified bucket are counted in overall stats but never become a chip.
func BuildFacets(products []domain.Product, field domain.FacetField) []domain.FacetEntry {
	counts := make(map[string]int)
	for _, p := range products {
		v := p.FacetValue(field)
		if v == "" || v == domain.BrandFallback {
			continue
		}
		counts[v]++
	}

	entries := lo.MapToSlice(counts, func(value string, count int) domain.FacetEntry {
		return domain.FacetEntry{Value: value, Count: count}
	})
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Value < entries[j].Value
	})

	return entries
}

// BuildStats computes the summary counts for a loaded catalog.
func BuildStats(products []domain.Product, generatedAt string) domain.CatalogStats {
	return domain.CatalogStats{
		Total:       len(products),
		InStock:     lo.CountBy(products, domain.Product.InStock),
		GeneratedAt: generatedAt,
		LoadedAt:    time.Now(),
	}
}
