package order

// Order statuses. Orders move pending → confirmed → shipped → delivered and
// may be cancelled from any non-terminal state. Orders are never deleted.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// PaymentMethods accepted at checkout. All are handled identically
// server-side; no real settlement happens.
var PaymentMethods = []string{"COD", "bKash", "Nagad", "Credit Card"}

// Customer is a snapshot of who placed the order. Guests get a synthesized
// id and placeholder email, so ID is a string either way.
type Customer struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"required,email"`
}

type ShippingAddress struct {
	Address1 string `json:"address1"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

// Item is a snapshot of a cart line at the time of purchase. It is not a live
// reference to the product, so later catalog changes never alter placed orders.
type Item struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity" validate:"gte=1"`
	Price    int    `json:"price" validate:"gte=0"`
	Category string `json:"category"`
}

type Order struct {
	ID              string          `json:"id"`
	Customer        Customer        `json:"customer"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Items           []Item          `json:"items" validate:"required,min=1,dive"`
	PaymentMethod   string          `json:"paymentMethod"`
	Subtotal        int             `json:"subtotal"`
	ShippingFee     int             `json:"shippingFee"`
	TotalAmount     int             `json:"totalAmount"`
	Status          string          `json:"status"`
	OrderDate       string          `json:"orderDate"`
	UpdatedAt       string          `json:"updatedAt,omitempty"`
}

// ValidPaymentMethod reports whether m is one of the accepted labels.
func ValidPaymentMethod(m string) bool {
	for _, method := range PaymentMethods {
		if method == m {
			return true
		}
	}
	return false
}

// ValidTransition reports whether an order may move from one status to the
// next. Delivered and cancelled are terminal.
func ValidTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusShipped || to == StatusCancelled
	case StatusShipped:
		return to == StatusDelivered || to == StatusCancelled
	default:
		return false
	}
}
