package usecase

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/ministore/backend/internal/domain"
)

func filterFixture() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Samsung A10", Brand: "Samsung", SearchText: "samsung samsung a10", Stock: 3},
		{ID: "2", Name: "Case", Brand: "Apple", SearchText: "apple case", Stock: 0},
		{ID: "3", Name: "Samsung S21", Brand: "Samsung", SearchText: "samsung samsung s21", Stock: 0},
		{ID: "4", Name: "Pixel 7", Brand: "Google", SearchText: "google pixel 7", Stock: 1},
	}
}

func ids(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	products := filterFixture()

	tests := []struct {
		name  string
		state domain.FilterState
		want  []string
	}{
		{
			name:  "empty state matches everything in order",
			state: domain.FilterState{},
			want:  []string{"1", "2", "3", "4"},
		},
		{
			name:  "query substring over searchText",
			state: domain.FilterState{Query: "sam"},
			want:  []string{"1", "3"},
		},
		{
			name:  "query is case-insensitive",
			state: domain.FilterState{Query: "SAM"},
			want:  []string{"1", "3"},
		},
		{
			name:  "facet is exact match, not substring",
			state: domain.FilterState{Facet: "Sam"},
			want:  []string{},
		},
		{
			name:  "facet exact match",
			state: domain.FilterState{Facet: "Samsung"},
			want:  []string{"1", "3"},
		},
		{
			name:  "stock filter excludes zero stock",
			state: domain.FilterState{InStockOnly: true},
			want:  []string{"1", "4"},
		},
		{
			name:  "conjunction of all criteria",
			state: domain.FilterState{Query: "sam", Facet: "Samsung", InStockOnly: true},
			want:  []string{"1"},
		},
		{
			name:  "no matches is a valid empty result",
			state: domain.FilterState{Query: "zzz"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(products, tt.state, domain.FacetFieldBrand))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("pure: source list untouched", func(t *testing.T) {
		before := ids(products)
		Filter(products, domain.FilterState{Query: "sam", InStockOnly: true}, domain.FacetFieldBrand)
		if got := ids(products); !reflect.DeepEqual(got, before) {
			t.Errorf("source order changed: %v", got)
		}
	})

	t.Run("stock boundary: 0 excluded, 1 included", func(t *testing.T) {
		boundary := []domain.Product{
			{ID: "zero", SearchText: "a", Stock: 0},
			{ID: "one", SearchText: "b", Stock: 1},
		}
		got := ids(Filter(boundary, domain.FilterState{InStockOnly: true}, domain.FacetFieldBrand))
		if !reflect.DeepEqual(got, []string{"one"}) {
			t.Errorf("Filter() = %v, want [one]", got)
		}
	})

	t.Run("empty catalog with any state", func(t *testing.T) {
		got := Filter(nil, domain.FilterState{Query: "x", Facet: "y", InStockOnly: true}, domain.FacetFieldBrand)
		if len(got) != 0 {
			t.Errorf("Filter(nil) = %v, want empty", got)
		}
	})
}

func TestPage(t *testing.T) {
	list := make([]domain.Product, 25)
	for i := range list {
		list[i] = domain.Product{ID: fmt.Sprintf("p%02d", i)}
	}

	t.Run("monotonic cumulative growth", func(t *testing.T) {
		page1 := Page(list, 1, 12)
		page2 := Page(list, 2, 12)
		page3 := Page(list, 3, 12)

		if len(page1) != 12 {
			t.Errorf("page 1 length = %d, want 12", len(page1))
		}
		if len(page2) != 24 {
			t.Errorf("page 2 length = %d, want 24", len(page2))
		}
		if len(page3) != 25 {
			t.Errorf("page 3 length = %d, want 25 (clamped)", len(page3))
		}

		// page 2 must be a prefix-extension of page 1: item k never moves
		if !reflect.DeepEqual(page2[:12], page1) {
			t.Error("page 2 is not a prefix-extension of page 1")
		}
	})

	t.Run("empty list yields empty page, never an error", func(t *testing.T) {
		if got := Page(nil, 1, 12); len(got) != 0 {
			t.Errorf("Page(nil) = %v, want empty", got)
		}
	})

	t.Run("guards bad page inputs", func(t *testing.T) {
		if got := Page(list, 0, 12); len(got) != 12 {
			t.Errorf("page 0 treated as 1, got length %d", len(got))
		}
		if got := Page(list, 1, 0); len(got) != DefaultPageSize {
			t.Errorf("page size 0 falls back to default, got length %d", len(got))
		}
	})
}

func TestPageStateOf(t *testing.T) {
	tests := []struct {
		name        string
		filteredLen int
		pageEnd     int
		want        domain.PageState
	}{
		{"empty", 0, 0, domain.PageStateEmpty},
		{"partial", 25, 12, domain.PageStatePartial},
		{"complete at exact boundary", 24, 24, domain.PageStateComplete},
		{"complete when clamped", 25, 25, domain.PageStateComplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PageStateOf(tt.filteredLen, tt.pageEnd); got != tt.want {
				t.Errorf("PageStateOf(%d, %d) = %v, want %v", tt.filteredLen, tt.pageEnd, got, tt.want)
			}
		})
	}
}

func TestRemaining(t *testing.T) {
	if got := Remaining(25, 12); got != 13 {
		t.Errorf("Remaining(25, 12) = %d, want 13", got)
	}
	if got := Remaining(25, 25); got != 0 {
		t.Errorf("Remaining(25, 25) = %d, want 0", got)
	}
}
