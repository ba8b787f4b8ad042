package changecustomeraddress

import (
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/core"
)

const commandType = "ChangeCustomerAddress"

// Command represents the intent to move a customer to a new address.
type Command struct {
	CustomerID core.CustomerIDString
	Street     string
	Number     int
	Zip        string
	City       string
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	customerID core.CustomerIDString,
	street string,
	number int,
	zip string,
	city string,
) Command {

	return Command{
		CustomerID: customerID,
		Street:     street,
		Number:     number,
		Zip:        zip,
		City:       city,
	}
}

// CommandType returns the command type identifier used for observability.
func (c Command) CommandType() string {
	return commandType
}
