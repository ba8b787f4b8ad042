package registercustomer

import (
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/core"
)

const commandType = "RegisterCustomer"

// Command represents the intent to register a new customer.
type Command struct {
	CustomerID core.CustomerIDString
	Name       string
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(customerID core.CustomerIDString, name string) Command {
	return Command{
		CustomerID: customerID,
		Name:       name,
	}
}

// CommandType returns the command type identifier used for observability.
func (c Command) CommandType() string {
	return commandType
}
