package placeorder

import (
	"errors"
	"fmt"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/core"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("product not found")
)

// Catalog holds the state Decide needs: the ordering customer and the ordered products by id.
type Catalog struct {
	Customer *core.Customer
	Products map[core.ProductIDString]*core.Product
}

// DecisionResult is the outcome of Decide: either a new order, or nothing to do.
type DecisionResult struct {
	Order *core.Order
}

// HasOrderToPlace reports whether the decision produced a new order.
func (r DecisionResult) HasOrderToPlace() bool {
	return r.Order != nil
}

// Decide implements the business logic to place an order.
// An already existing order makes the command an idempotent no-op.
func Decide(existing *core.Order, catalog Catalog, command Command, newItemID func() core.OrderItemIDString) (DecisionResult, error) {
	if existing != nil {
		return DecisionResult{}, nil
	}

	if catalog.Customer == nil {
		return DecisionResult{}, fmt.Errorf("%w: %s", ErrCustomerNotFound, command.CustomerID)
	}

	items := make([]core.OrderItem, 0, len(command.Lines))

	for _, line := range command.Lines {
		product, ok := catalog.Products[line.ProductID]
		if !ok {
			return DecisionResult{}, fmt.Errorf("%w: %s", ErrProductNotFound, line.ProductID)
		}

		item, err := core.NewOrderItem(newItemID(), product.Name(), product.Price(), product.ID(), line.Quantity)
		if err != nil {
			return DecisionResult{}, err
		}

		items = append(items, item)
	}

	order, err := core.NewOrder(command.OrderID, catalog.Customer.ID(), items)
	if err != nil {
		return DecisionResult{}, err
	}

	return DecisionResult{Order: order}, nil
}
