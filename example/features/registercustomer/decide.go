package registercustomer

import (
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/core"
)

// DecisionResult is the outcome of Decide: either a new customer with its event, or nothing to do.
type DecisionResult struct {
	Customer *core.Customer
	Event    core.CustomerCreated
}

// HasEventToNotify reports whether the decision changed state.
func (r DecisionResult) HasEventToNotify() bool {
	return r.Customer != nil
}

// Decide implements the business logic to register a customer.
// An already registered customer (existing != nil) is an idempotent no-op.
func Decide(existing *core.Customer, command Command) (DecisionResult, error) {
	if existing != nil {
		return DecisionResult{}, nil
	}

	customer, err := core.NewCustomer(command.CustomerID, command.Name)
	if err != nil {
		return DecisionResult{}, err
	}

	return DecisionResult{
		Customer: customer,
		Event:    core.BuildCustomerCreated(customer),
	}, nil
}
