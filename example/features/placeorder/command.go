package placeorder

import (
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/core"
)

const commandType = "PlaceOrder"

// Line is one requested product with its quantity.
type Line struct {
	ProductID core.ProductIDString
	Quantity  int
}

// Command represents the intent to place an order.
type Command struct {
	OrderID    core.OrderIDString
	CustomerID core.CustomerIDString
	Lines      []Line
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(orderID core.OrderIDString, customerID core.CustomerIDString, lines ...Line) Command {
	return Command{
		OrderID:    orderID,
		CustomerID: customerID,
		Lines:      lines,
	}
}

// CommandType returns the command type identifier used for observability.
func (c Command) CommandType() string {
	return commandType
}
