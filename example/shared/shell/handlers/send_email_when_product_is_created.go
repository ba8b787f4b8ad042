package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/eventdispatcher"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/core"
)

// ErrSendingEmailFailed is returned when the Mailer rejects the notification.
var ErrSendingEmailFailed = errors.New("sending email failed")

// SendEmailWhenProductIsCreated notifies the catalog team about new products.
type SendEmailWhenProductIsCreated struct {
	mailer    Mailer
	recipient string
	logger    *slog.Logger
}

// NewSendEmailWhenProductIsCreated creates a SendEmailWhenProductIsCreated handler.
func NewSendEmailWhenProductIsCreated(mailer Mailer, recipient string, logger *slog.Logger) *SendEmailWhenProductIsCreated {
	return &SendEmailWhenProductIsCreated{mailer: mailer, recipient: recipient, logger: logger}
}

// Handle implements eventdispatcher.Handler.
func (h *SendEmailWhenProductIsCreated) Handle(ctx context.Context, event eventdispatcher.Event[core.ProductCreated]) error {
	product := event.Payload()

	email := Email{
		To:      h.recipient,
		Subject: fmt.Sprintf("New product: %s", product.Name),
		Body: fmt.Sprintf(
			"Product %s (%s) was created at %s with a price of %d cents.",
			product.Name, product.ProductID, event.OccurredAt().Format("2006-01-02 15:04:05"), product.Price,
		),
	}

	if err := h.mailer.Send(ctx, email); err != nil {
		return errors.Join(ErrSendingEmailFailed, err)
	}

	h.logger.InfoContext(ctx, "email sent when product was created",
		"product_id", product.ProductID,
		"recipient", h.recipient)

	return nil
}
