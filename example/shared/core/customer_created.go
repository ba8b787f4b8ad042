package core

// CustomerCreatedEventKind is the event kind identifier.
const CustomerCreatedEventKind = "CustomerCreated"

// CustomerCreated represents when a new customer was registered.
type CustomerCreated struct {
	CustomerID CustomerIDString
	Name       string
}

// BuildCustomerCreated creates a new CustomerCreated event.
func BuildCustomerCreated(customer *Customer) CustomerCreated {
	return CustomerCreated{
		CustomerID: customer.ID(),
		Name:       customer.Name(),
	}
}

// EventKind returns the event kind identifier.
func (e CustomerCreated) EventKind() string {
	return CustomerCreatedEventKind
}
