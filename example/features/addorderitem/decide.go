package addorderitem

import (
	"errors"
	"fmt"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/core"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
)

// Decide appends a new item to a copy of the order and returns the copy.
func Decide(order *core.Order, product *core.Product, command Command, itemID core.OrderItemIDString) (*core.Order, error) {
	if order == nil {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, command.OrderID)
	}

	if product == nil {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, command.ProductID)
	}

	item, err := core.NewOrderItem(itemID, product.Name(), product.Price(), product.ID(), command.Quantity)
	if err != nil {
		return nil, err
	}

	changed, err := core.NewOrder(order.ID(), order.CustomerID(), order.Items())
	if err != nil {
		return nil, err
	}

	changed.AddItem(item)

	return changed, nil
}
