package category

// Category describes a catalog category. Name is the unique slug products
// reference; DisplayName is what the storefront shows.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name" validate:"required"`
	DisplayName string `json:"displayName" validate:"required"`
	IsActive    bool   `json:"isActive"`
}

// DefaultCategories seeds the category store on first boot.
func DefaultCategories() []Category {
	return []Category{
		{ID: 1, Name: "jerseys", DisplayName: "Jerseys", IsActive: true},
		{ID: 2, Name: "boots", DisplayName: "Boots", IsActive: true},
		{ID: 3, Name: "balls", DisplayName: "Balls", IsActive: true},
		{ID: 4, Name: "accessories", DisplayName: "Accessories", IsActive: true},
	}
}
