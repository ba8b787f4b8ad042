package addorderitem

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/core"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell/memorystore"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell/orderrepository"
)

// ProductStore defines the read access to products needed by the CommandHandler.
type ProductStore interface {
	Find(ctx context.Context, id string) (*core.Product, error)
}

// OrderRepository loads and updates orders; Update notifies core.OrderUpdated.
type OrderRepository interface {
	Find(ctx context.Context, id core.OrderIDString) (*core.Order, error)
	Update(ctx context.Context, order *core.Order) error
}

// CommandHandler orchestrates the command processing workflow: Load -> Decide -> Update.
type CommandHandler struct {
	products ProductStore
	orders   OrderRepository
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(products ProductStore, orders OrderRepository) CommandHandler {
	return CommandHandler{products: products, orders: orders}
}

// Handle adds the item to the order.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	order, err := h.orders.Find(ctx, command.OrderID)
	if err != nil && !errors.Is(err, orderrepository.ErrOrderNotFound) {
		return shell.HandlerResult{}, err
	}

	product, err := h.products.Find(ctx, command.ProductID)
	if err != nil && !errors.Is(err, memorystore.ErrNotFound) {
		return shell.HandlerResult{}, err
	}

	itemID, err := uuid.NewV7()
	if err != nil {
		return shell.HandlerResult{}, err
	}

	changed, err := Decide(order, product, command, itemID.String())
	if err != nil {
		return shell.HandlerResult{}, err
	}

	if err = h.orders.Update(ctx, changed); err != nil {
		return shell.HandlerResult{}, err
	}

	return shell.NewSuccessResult(core.OrderUpdatedEventKind), nil
}
