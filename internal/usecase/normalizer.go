package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ministore/backend/internal/domain"
)

// knownBrands is the fixed vocabulary used to infer a brand from the product
// name when the feed carries no explicit brand field.
var knownBrands = []string{
	"iPhone", "iPad", "Samsung", "Xiaomi", "Huawei", "OnePlus",
	"Apple", "Google", "Sony", "LG", "Nokia", "Motorola",
	"Realme", "Oppo", "Vivo",
}

// brandPrefixRegex matches a known brand at the start of the product name.
// Go regexps are leftmost-first, so the first alternative wins; the anchor
// makes ties impossible anyway.
var brandPrefixRegex = regexp.MustCompile(`(?i)^(iPhone|iPad|Samsung|Xiaomi|Huawei|OnePlus|Apple|Google|Sony|LG|Nokia|Motorola|Realme|Oppo|Vivo)`)

var multipleSpacesRegex = regexp.MustCompile(`\s+`)

// Field name aliases. The feed originates from an Excel export and column
// names drifted across revisions; the oldest export uses the Russian
// spreadsheet headers verbatim.
var (
	nameKeys        = []string{"name", "title", "Наименование"}
	brandKeys       = []string{"brand", "Бренд"}
	priceKeys       = []string{"price", "cost", "Цена"}
	stockKeys       = []string{"stock", "quantity", "Остаток"}
	imageKeys       = []string{"image", "photo", "imageUrl", "Фото"}
	descriptionKeys = []string{"description", "Описание"}
	idKeys          = []string{"id", "sku", "barcode", "Штрихкод"}
	categoryKeys    = []string{"category", "group", "Полная группа"}
)

// noValueSentinel is the upstream's literal marker for an absent field.
const noValueSentinel = "None"

// Normalize converts raw feed records into Products. It is pure and total:
// malformed records degrade to safe defaults instead of failing the load,
// and running it twice over the same input yields field-for-field identical
// results (synthesized IDs excepted, which are documented as unstable).
func Normalize(records []domain.RawRecord) []domain.Product {
	products := make([]domain.Product, 0, len(records))

	for _, rec := range records {
		name := stringField(rec, nameKeys)
		category, model := resolveCategory(rec, name)
		brand := resolveBrand(rec, name)

		p := domain.Product{
			ID:          resolveID(rec),
			Name:        name,
			Brand:       brand,
			Category:    category,
			Price:       numberField(rec, priceKeys),
			Stock:       intField(rec, stockKeys),
			ImageURL:    stringField(rec, imageKeys),
			Description: stringField(rec, descriptionKeys),
		}
		p.FormattedPrice = FormatPrice(p.Price)
		p.SearchText = buildSearchText(brand, name, model)

		products = append(products, p)
	}

	return products
}

// resolveBrand applies the resolution order: explicit field, then an
// anchored prefix match over the known-brand vocabulary, then the fallback.
func resolveBrand(rec domain.RawRecord, name string) string {
	if brand := stringField(rec, brandKeys); brand != "" {
		return brand
	}
	if m := brandPrefixRegex.FindString(name); m != "" {
		return canonicalBrand(m)
	}
	return domain.BrandFallback
}

// canonicalBrand maps a case-insensitive match back to the vocabulary
// casing so facet chips stay consistent across differently-cased names.
func canonicalBrand(match string) string {
	for _, b := range knownBrands {
		if strings.EqualFold(b, match) {
			return b
		}
	}
	return match
}

// resolveCategory resolves the category and, when the explicit field holds a
// slash-separated group path, extracts the model token from its second
// segment. Absent an explicit field the category is inferred by substring
// match against the brand vocabulary.
func resolveCategory(rec domain.RawRecord, name string) (category, model string) {
	if raw := stringField(rec, categoryKeys); raw != "" {
		parts := strings.Split(raw, "/")
		if len(parts) > 1 {
			model = strings.TrimSpace(parts[1])
			return strings.TrimSpace(parts[0]), model
		}
		return raw, ""
	}
	for _, b := range knownBrands {
		if containsFold(name, b) {
			return b, ""
		}
	}
	return domain.BrandFallback, ""
}

func resolveID(rec domain.RawRecord) string {
	if id := stringField(rec, idKeys); id != "" {
		return id
	}
	// Synthesized; not stable across reloads.
	return uuid.NewString()
}

// buildSearchText precomputes the lowercase haystack used for substring
// search: brand, name, and the model token when one was resolvable.
func buildSearchText(brand, name, model string) string {
	s := brand + " " + name
	if model != "" {
		s += " " + model
	}
	s = multipleSpacesRegex.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}

// FormatPrice renders a price with two decimals and a comma decimal
// separator, matching the storefront's display format.
func FormatPrice(price float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", price), ".", ",", 1)
}

// stringField returns the first present, non-sentinel string value among the
// aliased keys. Numbers are stringified so a numeric barcode still works.
func stringField(rec domain.RawRecord, keys []string) string {
	for _, key := range keys {
		v, ok := rec[key]
		if !ok || v == nil {
			continue
		}
		var s string
		switch t := v.(type) {
		case string:
			s = strings.TrimSpace(t)
		case float64:
			s = strconv.FormatFloat(t, 'f', -1, 64)
		case int:
			s = strconv.Itoa(t)
		default:
			continue
		}
		if s == "" || s == noValueSentinel {
			continue
		}
		return s
	}
	return ""
}

// numberField parses a numeric field with an invalid-to-zero fallback.
// Negative values clamp to zero; prices and stock are never negative.
func numberField(rec domain.RawRecord, keys []string) float64 {
	for _, key := range keys {
		v, ok := rec[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case float64:
			return clampNonNegative(t)
		case int:
			return clampNonNegative(float64(t))
		case string:
			s := strings.TrimSpace(strings.Replace(t, ",", ".", 1))
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return clampNonNegative(f)
			}
			return 0
		}
	}
	return 0
}

func intField(rec domain.RawRecord, keys []string) int {
	return int(numberField(rec, keys))
}

func clampNonNegative(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
