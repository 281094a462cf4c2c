package product

import "strings"

// Product represents an item in the catalog.
// JSON tags follow the camelCase convention used across the API.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Details     string   `json:"details,omitempty"`
	Price       int      `json:"price" validate:"gte=0"`
	Category    string   `json:"category" validate:"required"`
	Image       string   `json:"image"`
	Sizes       []string `json:"sizes"`
	HasSizes    bool     `json:"hasSizes"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`
	Reviews     int      `json:"reviews" validate:"gte=0"`
}

// Normalize keeps the hasSizes flag consistent with the sizes list.
func (p *Product) Normalize() {
	p.HasSizes = len(p.Sizes) > 0
}

// InStock reports whether the product can still be ordered.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// KnownBrands are matched against product names to derive a brand. Brand is
// not a stored field; a name mentioning several brands resolves to the first
// match in this list.
var KnownBrands = []string{"Nike", "Adidas", "Puma", "New Balance", "Under Armour"}

// BrandOf derives a brand from the product name by substring match,
// falling back to "Other".
func BrandOf(name string) string {
	lower := strings.ToLower(name)
	for _, brand := range KnownBrands {
		if strings.Contains(lower, strings.ToLower(brand)) {
			return brand
		}
	}
	return "Other"
}
