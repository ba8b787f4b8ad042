package addorderitem

import (
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/core"
)

const commandType = "AddOrderItem"

// Command represents the intent to add a product to an existing order.
type Command struct {
	OrderID   core.OrderIDString
	ProductID core.ProductIDString
	Quantity  int
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(orderID core.OrderIDString, productID core.ProductIDString, quantity int) Command {
	return Command{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
	}
}

// CommandType returns the command type identifier used for observability.
func (c Command) CommandType() string {
	return commandType
}
