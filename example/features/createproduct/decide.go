package createproduct

import (
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/core"
)

// DecisionResult is the outcome of Decide: either a new product with its event, or nothing to do.
type DecisionResult struct {
	Product *core.Product
	Event   core.ProductCreated
}

// HasEventToNotify reports whether the decision changed state.
func (r DecisionResult) HasEventToNotify() bool {
	return r.Product != nil
}

// Decide implements the business logic to create a product.
func Decide(existing *core.Product, command Command) (DecisionResult, error) {
	if existing != nil {
		return DecisionResult{}, nil
	}

	product, err := core.NewProduct(command.ProductID, command.Name, command.Price)
	if err != nil {
		return DecisionResult{}, err
	}

	return DecisionResult{
		Product: product,
		Event:   core.BuildProductCreated(product),
	}, nil
}
