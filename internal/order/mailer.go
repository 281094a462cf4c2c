package order

import "log/slog"

// Mailer sends the order confirmation. Sending is fire-and-forget: a failure
// must never block or fail the order-placement response.
type Mailer interface {
	SendOrderConfirmation(ord Order) error
}

// LogMailer is the default Mailer; it only logs what a real mailer would
// send. No actual email delivery happens in this system.
type LogMailer struct {
	log *slog.Logger
}

func NewLogMailer(log *slog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendOrderConfirmation(ord Order) error {
	m.log.Info("order confirmation email",
		"to", ord.Customer.Email,
		"orderId", ord.ID,
		"totalAmount", ord.TotalAmount,
		"items", len(ord.Items),
	)
	return nil
}
