package changecustomeraddress

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/eventdispatcher"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/core"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell/memorystore"
)

// CustomerStore defines the interface needed by the CommandHandler to load and save customers.
type CustomerStore interface {
	Find(ctx context.Context, id string) (*core.Customer, error)
	Save(ctx context.Context, id string, customer *core.Customer) error
}

// CommandHandler orchestrates the command processing workflow: Load -> Decide -> Save -> Notify.
type CommandHandler struct {
	customers  CustomerStore
	dispatcher *eventdispatcher.Dispatcher
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(customers CustomerStore, dispatcher *eventdispatcher.Dispatcher) CommandHandler {
	return CommandHandler{customers: customers, dispatcher: dispatcher}
}

// Handle moves the customer and notifies core.CustomerAddressChanged.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	customer, err := h.customers.Find(ctx, command.CustomerID)
	if err != nil && !errors.Is(err, memorystore.ErrNotFound) {
		return shell.HandlerResult{}, err
	}

	result, err := Decide(customer, command)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	if !result.HasEventToNotify() {
		return shell.NewIdempotentResult(), nil
	}

	if err = h.customers.Save(ctx, command.CustomerID, result.Customer); err != nil {
		return shell.HandlerResult{}, err
	}

	if err = eventdispatcher.Notify(ctx, h.dispatcher, eventdispatcher.BuildEvent(result.Event)); err != nil {
		return shell.HandlerResult{}, err
	}

	return shell.NewSuccessResult(core.CustomerAddressChangedEventKind), nil
}
