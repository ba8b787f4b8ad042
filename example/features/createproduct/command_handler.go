package createproduct

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/eventdispatcher"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/core"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell/memorystore"
)

// ProductStore defines the interface needed by the CommandHandler to load and save products.
type ProductStore interface {
	Find(ctx context.Context, id string) (*core.Product, error)
	Save(ctx context.Context, id string, product *core.Product) error
}

// CommandHandler orchestrates the command processing workflow: Load -> Decide -> Save -> Notify.
type CommandHandler struct {
	products   ProductStore
	dispatcher *eventdispatcher.Dispatcher
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(products ProductStore, dispatcher *eventdispatcher.Dispatcher) CommandHandler {
	return CommandHandler{products: products, dispatcher: dispatcher}
}

// Handle creates the product and notifies core.ProductCreated.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	existing, err := h.products.Find(ctx, command.ProductID)
	if err != nil && !errors.Is(err, memorystore.ErrNotFound) {
		return shell.HandlerResult{}, err
	}

	result, err := Decide(existing, command)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	if !result.HasEventToNotify() {
		return shell.NewIdempotentResult(), nil
	}

	if err = h.products.Save(ctx, command.ProductID, result.Product); err != nil {
		return shell.HandlerResult{}, err
	}

	if err = eventdispatcher.Notify(ctx, h.dispatcher, eventdispatcher.BuildEvent(result.Event)); err != nil {
		return shell.HandlerResult{}, err
	}

	return shell.NewSuccessResult(core.ProductCreatedEventKind), nil
}
