package order

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ir7shop/football-shop-backend/internal/config"
	"github.com/ir7shop/football-shop-backend/internal/user"
)

var (
	ErrEmptyItems        = errors.New("order must contain at least one item")
	ErrMissingEmail      = errors.New("customer email is required")
	ErrBadPaymentMethod  = errors.New("unknown payment method")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// UserDirectory is the slice of the user service the order flow needs:
// appending a summary to the buyer's order history.
type UserDirectory interface {
	AppendOrderSummary(email string, summary user.OrderSummary) error
}

// Clock lets tests pin order ids and dates.
type Clock func() time.Time

type Service struct {
	repo     Repository
	users    UserDirectory
	mailer   Mailer
	shipping config.ShippingSchedule
	now      Clock
	log      *slog.Logger
}

func NewService(repo Repository, users UserDirectory, mailer Mailer, shipping config.ShippingSchedule, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		users:    users,
		mailer:   mailer,
		shipping: shipping,
		now:      time.Now,
		log:      log,
	}
}

// WithClock replaces the service clock; intended for tests.
func (s *Service) WithClock(now Clock) *Service {
	s.now = now
	return s
}

// Place validates and persists a new order. The server re-derives subtotal,
// shipping fee and total from the item snapshots rather than trusting the
// client's numbers, assigns the id and pending status, appends a summary to
// the buyer's account when the email matches a registered user, and hands the
// confirmation to the mailer without letting it block or fail the response.
func (s *Service) Place(ord Order) (Order, error) {
	if len(ord.Items) == 0 {
		return Order{}, ErrEmptyItems
	}
	if strings.TrimSpace(ord.Customer.Email) == "" {
		return Order{}, ErrMissingEmail
	}
	if !ValidPaymentMethod(ord.PaymentMethod) {
		return Order{}, ErrBadPaymentMethod
	}

	subtotal := 0
	for _, item := range ord.Items {
		subtotal += item.Price * item.Quantity
	}
	ord.Subtotal = subtotal
	ord.ShippingFee = s.shipping.Fee(subtotal)
	ord.TotalAmount = subtotal + ord.ShippingFee

	now := s.now().UTC()
	ord.ID = fmt.Sprintf("IR7%d", now.UnixMilli())
	ord.Status = StatusPending
	ord.OrderDate = now.Format(time.RFC3339)
	ord.UpdatedAt = ord.OrderDate

	created, err := s.repo.Create(ord)
	if err != nil {
		return Order{}, err
	}

	// Best effort: guests have no account to update.
	if err := s.users.AppendOrderSummary(created.Customer.Email, user.OrderSummary{
		OrderID: created.ID,
		Date:    created.OrderDate,
		Total:   created.TotalAmount,
		Status:  created.Status,
	}); err != nil && err != user.ErrNotFound {
		s.log.Warn("could not append order to user history", "email", created.Customer.Email, "error", err)
	}

	go func(ord Order) {
		if err := s.mailer.SendOrderConfirmation(ord); err != nil {
			s.log.Warn("order confirmation mail failed", "orderId", ord.ID, "error", err)
		}
	}(created)

	return created, nil
}

func (s *Service) List() []Order {
	return s.repo.List()
}

func (s *Service) GetByID(id string) (Order, error) {
	return s.repo.GetByID(id)
}

// UpdateStatus validates the transition before persisting it.
func (s *Service) UpdateStatus(id, status string) (Order, error) {
	ord, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, err
	}
	if !ValidTransition(ord.Status, status) {
		return Order{}, ErrInvalidTransition
	}
	return s.repo.UpdateStatus(id, status, s.now().UTC().Format(time.RFC3339))
}
