package core

// Product is the entity of something which can be sold.
type Product struct {
	id    ProductIDString
	name  string
	price Cents
}

// NewProduct creates a validated Product.
func NewProduct(id ProductIDString, name string, price Cents) (*Product, error) {
	if id == "" {
		return nil, ErrIDIsRequired
	}

	if name == "" {
		return nil, ErrNameIsRequired
	}

	if price < 0 {
		return nil, ErrPriceMustNotBeNegative
	}

	return &Product{id: id, name: name, price: price}, nil
}

// ID returns the product's identifier.
func (p *Product) ID() ProductIDString {
	return p.id
}

// Name returns the product's name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product's price.
func (p *Product) Price() Cents {
	return p.price
}

// ChangePrice sets a new price.
func (p *Product) ChangePrice(price Cents) error {
	if price < 0 {
		return ErrPriceMustNotBeNegative
	}

	p.price = price

	return nil
}
