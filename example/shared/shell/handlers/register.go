package handlers

import (
	"io"
	"log/slog"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/eventdispatcher"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/core"
)

// Dependencies are the collaborators of the default handler set.
// AuditWriter is optional, without it no audit log is written.
type Dependencies struct {
	Logger         *slog.Logger
	Mailer         Mailer
	EmailRecipient string
	AuditWriter    io.Writer
}

// RegisterAll registers the default handler set on the dispatcher.
func RegisterAll(d *eventdispatcher.Dispatcher, deps Dependencies) {
	eventdispatcher.Register(d, core.ProductCreatedEventKind,
		NewSendEmailWhenProductIsCreated(deps.Mailer, deps.EmailRecipient, deps.Logger))

	eventdispatcher.Register(d, core.CustomerCreatedEventKind, NewLogWhenCustomerIsCreated1(deps.Logger))
	eventdispatcher.Register(d, core.CustomerCreatedEventKind, NewLogWhenCustomerIsCreated2(deps.Logger))

	eventdispatcher.Register(d, core.CustomerAddressChangedEventKind, NewLogWhenCustomerAddressChanged(deps.Logger))

	if deps.AuditWriter == nil {
		return
	}

	audit := NewJSONAuditLog[core.DomainEvent](deps.AuditWriter)
	for _, kind := range []eventdispatcher.Kind{
		core.CustomerCreatedEventKind,
		core.CustomerAddressChangedEventKind,
		core.ProductCreatedEventKind,
		core.OrderCreatedEventKind,
		core.OrderUpdatedEventKind,
	} {
		eventdispatcher.Register(d, kind, audit)
	}
}
