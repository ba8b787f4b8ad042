package core

// ProductCreatedEventKind is the event kind identifier.
const ProductCreatedEventKind = "ProductCreated"

// ProductCreated represents when a new product was added to the catalog.
type ProductCreated struct {
	ProductID ProductIDString
	Name      string
	Price     Cents
}

// BuildProductCreated creates a new ProductCreated event.
func BuildProductCreated(product *Product) ProductCreated {
	return ProductCreated{
		ProductID: product.ID(),
		Name:      product.Name(),
		Price:     product.Price(),
	}
}

// EventKind returns the event kind identifier.
func (e ProductCreated) EventKind() string {
	return ProductCreatedEventKind
}
