package order

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ir7shop/football-shop-backend/internal/config"
	"github.com/ir7shop/football-shop-backend/internal/user"
)

var serviceShipping = config.ShippingSchedule{FreeThreshold: 3000, FlatFee: 110}

// fakeDirectory stands in for the user service. Unknown emails behave like
// guests: ErrNotFound.
type fakeDirectory struct {
	mu        sync.Mutex
	known     map[string]bool
	summaries map[string][]user.OrderSummary
}

func newFakeDirectory(emails ...string) *fakeDirectory {
	d := &fakeDirectory{known: map[string]bool{}, summaries: map[string][]user.OrderSummary{}}
	for _, e := range emails {
		d.known[e] = true
	}
	return d
}

func (d *fakeDirectory) AppendOrderSummary(email string, summary user.OrderSummary) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.known[email] {
		return user.ErrNotFound
	}
	d.summaries[email] = append(d.summaries[email], summary)
	return nil
}

// chanMailer lets tests wait for the fire-and-forget confirmation.
type chanMailer struct {
	sent chan Order
}

func (m *chanMailer) SendOrderConfirmation(ord Order) error {
	m.sent <- ord
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(dir *fakeDirectory, mailer Mailer) (*Service, *InMemoryRepository) {
	repo := NewInMemoryRepository(nil)
	svc := NewService(repo, dir, mailer, serviceShipping, testLogger())
	return svc, repo
}

func sampleOrder() Order {
	return Order{
		Customer: Customer{ID: "3", FirstName: "Karim", LastName: "Ahmed", Email: "karim@example.com"},
		ShippingAddress: ShippingAddress{
			Address1: "House 4, Road 2", Phone: "01812345678",
			City: "Dhaka", Postcode: "1207", Country: "Bangladesh",
		},
		Items: []Item{
			{ID: 1, Name: "Manchester United Home Jersey 2024", Size: "M", Quantity: 1, Price: 1299, Category: "jerseys"},
		},
		PaymentMethod: "COD",
	}
}

func TestPlace_AssignsIDStatusAndTotals(t *testing.T) {
	mailer := &chanMailer{sent: make(chan Order, 1)}
	svc, _ := newTestService(newFakeDirectory(), mailer)

	pinned := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.WithClock(func() time.Time { return pinned })

	placed, err := svc.Place(sampleOrder())
	require.NoError(t, err)

	assert.Equal(t, "IR71717243200000", placed.ID)
	assert.Equal(t, StatusPending, placed.Status)
	assert.Equal(t, 1299, placed.Subtotal)
	assert.Equal(t, 110, placed.ShippingFee)
	assert.Equal(t, 1409, placed.TotalAmount)
	assert.Equal(t, "2024-06-01T12:00:00Z", placed.OrderDate)
}

func TestPlace_RecomputesClientTotals(t *testing.T) {
	mailer := &chanMailer{sent: make(chan Order, 1)}
	svc, _ := newTestService(newFakeDirectory(), mailer)

	ord := sampleOrder()
	// Tampered client numbers are ignored.
	ord.Subtotal = 1
	ord.ShippingFee = 0
	ord.TotalAmount = 1
	ord.Items = []Item{
		{ID: 2, Name: "Nike Phantom GX Elite", Quantity: 1, Price: 4999, Category: "boots"},
	}

	placed, err := svc.Place(ord)
	require.NoError(t, err)
	assert.Equal(t, 4999, placed.Subtotal)
	assert.Equal(t, 0, placed.ShippingFee, "above the free-shipping threshold")
	assert.Equal(t, 4999, placed.TotalAmount)
}

func TestPlace_RejectionsLeaveStoreUntouched(t *testing.T) {
	mailer := &chanMailer{sent: make(chan Order, 1)}
	svc, repo := newTestService(newFakeDirectory(), mailer)

	empty := sampleOrder()
	empty.Items = nil
	_, err := svc.Place(empty)
	assert.ErrorIs(t, err, ErrEmptyItems)

	noEmail := sampleOrder()
	noEmail.Customer.Email = "  "
	_, err = svc.Place(noEmail)
	assert.ErrorIs(t, err, ErrMissingEmail)

	badPay := sampleOrder()
	badPay.PaymentMethod = "IOU"
	_, err = svc.Place(badPay)
	assert.ErrorIs(t, err, ErrBadPaymentMethod)

	assert.Empty(t, repo.List())
}

func TestPlace_AppendsSummaryToKnownUser(t *testing.T) {
	dir := newFakeDirectory("karim@example.com")
	mailer := &chanMailer{sent: make(chan Order, 1)}
	svc, _ := newTestService(dir, mailer)

	placed, err := svc.Place(sampleOrder())
	require.NoError(t, err)

	dir.mu.Lock()
	defer dir.mu.Unlock()
	summaries := dir.summaries["karim@example.com"]
	require.Len(t, summaries, 1)
	assert.Equal(t, placed.ID, summaries[0].OrderID)
	assert.Equal(t, placed.TotalAmount, summaries[0].Total)
	assert.Equal(t, StatusPending, summaries[0].Status)
}

func TestPlace_GuestEmailIsNotAnError(t *testing.T) {
	mailer := &chanMailer{sent: make(chan Order, 1)}
	svc, repo := newTestService(newFakeDirectory(), mailer)

	ord := sampleOrder()
	ord.Customer.Email = "guest-abc@ir7.com"
	_, err := svc.Place(ord)
	require.NoError(t, err)
	assert.Len(t, repo.List(), 1)
}

func TestPlace_SendsConfirmationMail(t *testing.T) {
	mailer := &chanMailer{sent: make(chan Order, 1)}
	svc, _ := newTestService(newFakeDirectory(), mailer)

	placed, err := svc.Place(sampleOrder())
	require.NoError(t, err)

	select {
	case mailed := <-mailer.sent:
		assert.Equal(t, placed.ID, mailed.ID)
	case <-time.After(time.Second):
		t.Fatal("confirmation mail was never sent")
	}
}

func TestUpdateStatus_Transitions(t *testing.T) {
	mailer := &chanMailer{sent: make(chan Order, 1)}
	svc, _ := newTestService(newFakeDirectory(), mailer)

	placed, err := svc.Place(sampleOrder())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(placed.ID, StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, updated.Status)
	assert.NotEmpty(t, updated.UpdatedAt)

	// Skipping ahead is rejected.
	_, err = svc.UpdateStatus(placed.ID, StatusDelivered)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.UpdateStatus(placed.ID, StatusShipped)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(placed.ID, StatusDelivered)
	require.NoError(t, err)

	// Delivered is terminal.
	_, err = svc.UpdateStatus(placed.ID, StatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.UpdateStatus("IR7-missing", StatusConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidTransition_CancelFromAnyNonTerminal(t *testing.T) {
	assert.True(t, ValidTransition(StatusPending, StatusCancelled))
	assert.True(t, ValidTransition(StatusConfirmed, StatusCancelled))
	assert.True(t, ValidTransition(StatusShipped, StatusCancelled))
	assert.False(t, ValidTransition(StatusCancelled, StatusPending))
	assert.False(t, ValidTransition(StatusDelivered, StatusCancelled))
}
