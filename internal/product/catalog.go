package product

import (
	"sort"
	"strings"
)

// Criteria describes the catalog filters. Zero values mean "not filtered":
// an empty Category (or "all") matches everything, MaxPrice <= 0 leaves the
// upper bound open.
type Criteria struct {
	Category    string
	MinPrice    int
	MaxPrice    int
	Sizes       []string
	Brands      []string
	Search      string
	InStockOnly bool
}

// Filter intersects all predicates in the criteria over the given products.
func Filter(products []Product, c Criteria) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if matches(p, c) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p Product, c Criteria) bool {
	if c.Category != "" && c.Category != "all" && p.Category != c.Category {
		return false
	}
	if p.Price < c.MinPrice {
		return false
	}
	if c.MaxPrice > 0 && p.Price > c.MaxPrice {
		return false
	}
	if len(c.Sizes) > 0 && !sizeOverlap(p.Sizes, c.Sizes) {
		return false
	}
	if len(c.Brands) > 0 && !contains(c.Brands, BrandOf(p.Name)) {
		return false
	}
	if c.Search != "" {
		query := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) &&
			!strings.Contains(strings.ToLower(p.Category), query) {
			return false
		}
	}
	if c.InStockOnly && !p.InStock() {
		return false
	}
	return true
}

func sizeOverlap(have, want []string) bool {
	for _, w := range want {
		if contains(have, w) {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// Sort keys accepted by the catalog API.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortName      = "name"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// Sort returns a new slice ordered by the given key. Unknown keys fall back
// to "newest", which orders by descending id as a proxy for insertion order.
func Sort(products []Product, key string) []Product {
	sorted := make([]Product, len(products))
	copy(sorted, products)

	switch key {
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	case SortName:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	case SortRating:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	case SortNewest:
		fallthrough
	default:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID > sorted[j].ID })
	}
	return sorted
}
