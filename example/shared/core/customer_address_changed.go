package core

// CustomerAddressChangedEventKind is the event kind identifier.
const CustomerAddressChangedEventKind = "CustomerAddressChanged"

// CustomerAddressChanged represents when a customer moved to a new address.
type CustomerAddressChanged struct {
	CustomerID CustomerIDString
	Name       string
	Address    Address
}

// BuildCustomerAddressChanged creates a new CustomerAddressChanged event from the customer's current state.
func BuildCustomerAddressChanged(customer *Customer) CustomerAddressChanged {
	return CustomerAddressChanged{
		CustomerID: customer.ID(),
		Name:       customer.Name(),
		Address:    customer.Address(),
	}
}

// EventKind returns the event kind identifier.
func (e CustomerAddressChanged) EventKind() string {
	return CustomerAddressChangedEventKind
}
