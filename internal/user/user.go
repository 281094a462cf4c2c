package user

// OrderSummary is the compact order record kept on the user for the
// account-history view. The order store holds the full order.
type OrderSummary struct {
	OrderID string `json:"orderId"`
	Date    string `json:"date"`
	Total   int    `json:"total"`
	Status  string `json:"status"`
}

type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	// Password holds the bcrypt hash; it is blanked before any API response.
	Password  string         `json:"password,omitempty"`
	Phone     string         `json:"phone"`
	IsAdmin   bool           `json:"isAdmin"`
	CreatedAt string         `json:"createdAt,omitempty"`
	UpdatedAt string         `json:"updatedAt,omitempty"`
	LastLogin string         `json:"lastLogin,omitempty"`
	Orders    []OrderSummary `json:"orders,omitempty"`
}
