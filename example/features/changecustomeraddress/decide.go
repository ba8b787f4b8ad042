package changecustomeraddress

import (
	"errors"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/core"
)

// ErrCustomerNotFound is returned when the customer to move is not registered.
var ErrCustomerNotFound = errors.New("customer not found")

// DecisionResult is the outcome of Decide: either the moved customer with its event, or nothing to do.
type DecisionResult struct {
	Customer *core.Customer
	Event    core.CustomerAddressChanged
}

// HasEventToNotify reports whether the decision changed state.
func (r DecisionResult) HasEventToNotify() bool {
	return r.Customer != nil
}

// Decide implements the business logic to change a customer's address.
// The given customer is not modified; the result carries a changed copy.
func Decide(customer *core.Customer, command Command) (DecisionResult, error) {
	if customer == nil {
		return DecisionResult{}, ErrCustomerNotFound
	}

	address, err := core.BuildAddress(command.Street, command.Number, command.Zip, command.City)
	if err != nil {
		return DecisionResult{}, err
	}

	if customer.Address() == address {
		return DecisionResult{}, nil
	}

	changed := *customer
	if err = changed.ChangeAddress(address); err != nil {
		return DecisionResult{}, err
	}

	return DecisionResult{
		Customer: &changed,
		Event:    core.BuildCustomerAddressChanged(&changed),
	}, nil
}
