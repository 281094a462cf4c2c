package checkout

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ir7shop/football-shop-backend/internal/cart"
	"github.com/ir7shop/football-shop-backend/internal/config"
	"github.com/ir7shop/football-shop-backend/internal/order"
)

// Step is the checkout position. The flow is linear: shipping details, then
// payment selection, then review, then confirmation. Back-navigation works
// from Payment and Review; Confirmation is terminal.
type Step int

const (
	StepShipping Step = iota + 1
	StepPayment
	StepReview
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

var (
	ErrWrongStep          = errors.New("operation not allowed at this step")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrSubmissionInFlight = errors.New("order submission already in progress")

	phonePattern = regexp.MustCompile(`^\d{10,15}$`)
)

// ShippingDetails is what the shipping step collects.
type ShippingDetails struct {
	FirstName string
	LastName  string
	Phone     string
	Address   string
	City      string
	Postcode  string
	Country   string
}

// Validate reports the first problem with the submitted details. City,
// postcode and country fall back to the shop's home market when left blank.
func (d *ShippingDetails) Validate() error {
	if strings.TrimSpace(d.FirstName) == "" || strings.TrimSpace(d.LastName) == "" {
		return errors.New("first and last name are required")
	}
	if strings.TrimSpace(d.Address) == "" {
		return errors.New("shipping address is required")
	}
	if !phonePattern.MatchString(strings.TrimSpace(d.Phone)) {
		return errors.New("phone number must be 10-15 digits")
	}
	if d.City == "" {
		d.City = "Dhaka"
	}
	if d.Postcode == "" {
		d.Postcode = "1000"
	}
	if d.Country == "" {
		d.Country = "Bangladesh"
	}
	return nil
}

// SessionUser is the logged-in shopper, if any. A nil user checks out as a
// guest with a synthesized identity.
type SessionUser struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
}

// OrderPlacer submits the finished order; the order service satisfies it.
type OrderPlacer interface {
	Place(ord order.Order) (order.Order, error)
}

// ReviewSummary is the read-only snapshot shown on the review step.
type ReviewSummary struct {
	Shipping      ShippingDetails
	PaymentMethod string
	Items         []cart.Item
	Totals        cart.Totals
}

// Flow drives one checkout session over the shopper's cart.
type Flow struct {
	mu       sync.Mutex
	cart     *cart.Cart
	placer   OrderPlacer
	shipping config.ShippingSchedule
	user     *SessionUser

	step      Step
	details   ShippingDetails
	payment   string
	inFlight  bool
	confirmed *order.Order
}

func NewFlow(c *cart.Cart, placer OrderPlacer, shipping config.ShippingSchedule, user *SessionUser) *Flow {
	return &Flow{
		cart:     c,
		placer:   placer,
		shipping: shipping,
		user:     user,
		step:     StepShipping,
	}
}

func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// SubmitShipping validates the details and advances to payment. Invalid
// details keep the flow on the shipping step and change nothing.
func (f *Flow) SubmitShipping(d ShippingDetails) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepShipping {
		return ErrWrongStep
	}
	if err := d.Validate(); err != nil {
		return err
	}
	f.details = d
	f.step = StepPayment
	return nil
}

// SelectPayment requires exactly one of the accepted methods and advances to
// review.
func (f *Flow) SelectPayment(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepPayment {
		return ErrWrongStep
	}
	if !order.ValidPaymentMethod(method) {
		return order.ErrBadPaymentMethod
	}
	f.payment = method
	f.step = StepReview
	return nil
}

// Back returns to the previous step. Only Payment→Shipping and
// Review→Payment are allowed; Confirmation is terminal.
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.step {
	case StepPayment:
		f.step = StepShipping
	case StepReview:
		f.step = StepPayment
	default:
		return ErrWrongStep
	}
	return nil
}

// Review renders the read-only summary for the review step.
func (f *Flow) Review() (ReviewSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != StepReview {
		return ReviewSummary{}, ErrWrongStep
	}
	items := f.cart.Items()
	return ReviewSummary{
		Shipping:      f.details,
		PaymentMethod: f.payment,
		Items:         items,
		Totals:        cart.ComputeTotals(items, f.shipping),
	}, nil
}

// PlaceOrder submits the order. The in-flight flag prevents double
// submission while the call is outstanding. On success the cart is cleared
// and the flow reaches confirmation; on failure the flow stays on review so
// the shopper can retry.
func (f *Flow) PlaceOrder() (order.Order, error) {
	f.mu.Lock()
	if f.step != StepReview {
		f.mu.Unlock()
		return order.Order{}, ErrWrongStep
	}
	if f.inFlight {
		f.mu.Unlock()
		return order.Order{}, ErrSubmissionInFlight
	}

	items := f.cart.Items()
	if len(items) == 0 {
		f.mu.Unlock()
		return order.Order{}, ErrEmptyCart
	}

	f.inFlight = true
	payload := f.buildOrder(items)
	f.mu.Unlock()

	placed, err := f.placer.Place(payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight = false
	if err != nil {
		return order.Order{}, err
	}

	// The order is placed; a stale local cart is recoverable.
	_ = f.cart.Clear()
	f.confirmed = &placed
	f.step = StepConfirmation
	return placed, nil
}

// Confirmed returns the placed order once the flow has finished.
func (f *Flow) Confirmed() (order.Order, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.confirmed == nil {
		return order.Order{}, false
	}
	return *f.confirmed, true
}

func (f *Flow) buildOrder(items []cart.Item) order.Order {
	totals := cart.ComputeTotals(items, f.shipping)

	var customer order.Customer
	if f.user != nil {
		customer = order.Customer{
			ID:        strconv.Itoa(f.user.ID),
			FirstName: f.user.FirstName,
			LastName:  f.user.LastName,
			Email:     f.user.Email,
		}
	} else {
		guestID := uuid.New().String()
		customer = order.Customer{
			ID:        "guest-" + guestID,
			FirstName: f.details.FirstName,
			LastName:  f.details.LastName,
			Email:     "guest-" + guestID + "@ir7.com",
		}
	}

	orderItems := make([]order.Item, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, order.Item{
			ID:       item.ID,
			Name:     item.Name,
			Size:     item.SelectedSize,
			Quantity: item.Quantity,
			Price:    item.Price,
			Category: item.Category,
		})
	}

	return order.Order{
		Customer: customer,
		ShippingAddress: order.ShippingAddress{
			Address1: f.details.Address,
			Phone:    f.details.Phone,
			City:     f.details.City,
			Postcode: f.details.Postcode,
			Country:  f.details.Country,
		},
		Items:         orderItems,
		PaymentMethod: f.payment,
		Subtotal:      totals.Subtotal,
		ShippingFee:   totals.ShippingFee,
		TotalAmount:   totals.Total,
		OrderDate:     time.Now().UTC().Format(time.RFC3339),
	}
}

// Receipt renders a plain-text receipt for the confirmed order.
func (f *Flow) Receipt() (string, error) {
	ord, ok := f.Confirmed()
	if !ok {
		return "", ErrWrongStep
	}

	var b strings.Builder
	b.WriteString("IR7 Football Shop Receipt\n")
	b.WriteString(fmt.Sprintf("Order ID: %s\n", ord.ID))
	b.WriteString(fmt.Sprintf("Date: %s\n", ord.OrderDate))
	b.WriteString(fmt.Sprintf("Customer: %s %s <%s>\n", ord.Customer.FirstName, ord.Customer.LastName, ord.Customer.Email))
	b.WriteString(fmt.Sprintf("Ship to: %s, %s %s, %s (%s)\n",
		ord.ShippingAddress.Address1, ord.ShippingAddress.City,
		ord.ShippingAddress.Postcode, ord.ShippingAddress.Country,
		ord.ShippingAddress.Phone))
	b.WriteString(fmt.Sprintf("Payment: %s\n\n", ord.PaymentMethod))
	for _, item := range ord.Items {
		b.WriteString(fmt.Sprintf("  %s (%s) x%d  %d\n", item.Name, item.Size, item.Quantity, item.Price*item.Quantity))
	}
	b.WriteString(fmt.Sprintf("\nSubtotal: %d\nShipping: %d\nTotal: %d\n", ord.Subtotal, ord.ShippingFee, ord.TotalAmount))
	b.WriteString("\nThank you for shopping with The IR7 Football Shop!\n")
	return b.String(), nil
}
