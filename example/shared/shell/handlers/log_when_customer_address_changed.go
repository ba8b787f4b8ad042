package handlers

import (
	"context"
	"log/slog"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/eventdispatcher"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/core"
)

// LogWhenCustomerAddressChanged logs the new address of a customer.
type LogWhenCustomerAddressChanged struct {
	logger *slog.Logger
}

// NewLogWhenCustomerAddressChanged creates a LogWhenCustomerAddressChanged handler.
func NewLogWhenCustomerAddressChanged(logger *slog.Logger) *LogWhenCustomerAddressChanged {
	return &LogWhenCustomerAddressChanged{logger: logger}
}

// Handle implements eventdispatcher.Handler.
func (h *LogWhenCustomerAddressChanged) Handle(ctx context.Context, event eventdispatcher.Event[core.CustomerAddressChanged]) error {
	payload := event.Payload()

	h.logger.InfoContext(ctx, "customer address changed",
		"customer_id", payload.CustomerID,
		"name", payload.Name,
		"address", payload.Address.String())

	return nil
}
