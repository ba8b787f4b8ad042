package createproduct

import (
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/core"
)

const commandType = "CreateProduct"

// Command represents the intent to add a product to the catalog.
type Command struct {
	ProductID core.ProductIDString
	Name      string
	Price     core.Cents
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(productID core.ProductIDString, name string, price core.Cents) Command {
	return Command{
		ProductID: productID,
		Name:      name,
		Price:     price,
	}
}

// CommandType returns the command type identifier used for observability.
func (c Command) CommandType() string {
	return commandType
}
