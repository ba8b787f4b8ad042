package handlers

import (
	"context"
	"log/slog"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/eventdispatcher"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/core"
)

// LogWhenCustomerIsCreated1 is the first of two handlers logging new customers.
type LogWhenCustomerIsCreated1 struct {
	logger *slog.Logger
}

// NewLogWhenCustomerIsCreated1 creates a LogWhenCustomerIsCreated1 handler.
func NewLogWhenCustomerIsCreated1(logger *slog.Logger) *LogWhenCustomerIsCreated1 {
	return &LogWhenCustomerIsCreated1{logger: logger}
}

// Handle implements eventdispatcher.Handler.
func (h *LogWhenCustomerIsCreated1) Handle(ctx context.Context, event eventdispatcher.Event[core.CustomerCreated]) error {
	h.logger.InfoContext(ctx, "first handler: customer created",
		"customer_id", event.Payload().CustomerID)

	return nil
}

// LogWhenCustomerIsCreated2 is the second of two handlers logging new customers.
type LogWhenCustomerIsCreated2 struct {
	logger *slog.Logger
}

// NewLogWhenCustomerIsCreated2 creates a LogWhenCustomerIsCreated2 handler.
func NewLogWhenCustomerIsCreated2(logger *slog.Logger) *LogWhenCustomerIsCreated2 {
	return &LogWhenCustomerIsCreated2{logger: logger}
}

// Handle implements eventdispatcher.Handler.
func (h *LogWhenCustomerIsCreated2) Handle(ctx context.Context, event eventdispatcher.Event[core.CustomerCreated]) error {
	h.logger.InfoContext(ctx, "second handler: customer created",
		"customer_id", event.Payload().CustomerID,
		"name", event.Payload().Name)

	return nil
}
