package placeorder

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/core"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell/memorystore"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell/orderrepository"
)

// CustomerStore defines the read access to customers needed by the CommandHandler.
type CustomerStore interface {
	Find(ctx context.Context, id string) (*core.Customer, error)
}

// ProductStore defines the read access to products needed by the CommandHandler.
type ProductStore interface {
	Find(ctx context.Context, id string) (*core.Product, error)
}

// OrderRepository persists orders; Create notifies core.OrderCreated.
type OrderRepository interface {
	Create(ctx context.Context, order *core.Order) error
	Find(ctx context.Context, id core.OrderIDString) (*core.Order, error)
}

// CommandHandler orchestrates the command processing workflow: Load -> Decide -> Create.
type CommandHandler struct {
	customers CustomerStore
	products  ProductStore
	orders    OrderRepository
	newItemID func() core.OrderItemIDString
}

// NewCommandHandler creates a new CommandHandler which identifies order items with UUIDv7.
func NewCommandHandler(customers CustomerStore, products ProductStore, orders OrderRepository) CommandHandler {
	return CommandHandler{
		customers: customers,
		products:  products,
		orders:    orders,
		newItemID: func() core.OrderItemIDString {
			return uuid.Must(uuid.NewV7()).String()
		},
	}
}

// Handle places the order.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	existing, err := h.orders.Find(ctx, command.OrderID)
	if err != nil && !errors.Is(err, orderrepository.ErrOrderNotFound) {
		return shell.HandlerResult{}, err
	}

	catalog, err := h.loadCatalog(ctx, command)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	result, err := Decide(existing, catalog, command, h.newItemID)
	if err != nil {
		return shell.HandlerResult{}, err
	}

	if !result.HasOrderToPlace() {
		return shell.NewIdempotentResult(), nil
	}

	if err = h.orders.Create(ctx, result.Order); err != nil {
		return shell.HandlerResult{}, err
	}

	return shell.NewSuccessResult(core.OrderCreatedEventKind), nil
}

// loadCatalog loads the customer and all ordered products; unknown ones are left out for Decide to reject.
func (h CommandHandler) loadCatalog(ctx context.Context, command Command) (Catalog, error) {
	catalog := Catalog{Products: make(map[core.ProductIDString]*core.Product, len(command.Lines))}

	customer, err := h.customers.Find(ctx, command.CustomerID)
	switch {
	case err == nil:
		catalog.Customer = customer
	case !errors.Is(err, memorystore.ErrNotFound):
		return Catalog{}, err
	}

	for _, line := range command.Lines {
		product, err := h.products.Find(ctx, line.ProductID)
		switch {
		case err == nil:
			catalog.Products[line.ProductID] = product
		case !errors.Is(err, memorystore.ErrNotFound):
			return Catalog{}, err
		}
	}

	return catalog, nil
}
