package core

import (
	"errors"
	"slices"
)

// OrderItem is one line of an Order.
type OrderItem struct {
	id        OrderItemIDString
	name      string
	price     Cents
	productID ProductIDString
	quantity  int
}

// NewOrderItem creates a validated OrderItem.
func NewOrderItem(
	id OrderItemIDString,
	name string,
	price Cents,
	productID ProductIDString,
	quantity int,
) (OrderItem, error) {

	var errs []error

	if id == "" {
		errs = append(errs, ErrIDIsRequired)
	}

	if name == "" {
		errs = append(errs, ErrNameIsRequired)
	}

	if price < 0 {
		errs = append(errs, ErrPriceMustNotBeNegative)
	}

	if productID == "" {
		errs = append(errs, ErrProductIDIsRequired)
	}

	if quantity <= 0 {
		errs = append(errs, ErrQuantityMustBePositive)
	}

	if len(errs) > 0 {
		return OrderItem{}, errors.Join(errs...)
	}

	return OrderItem{id: id, name: name, price: price, productID: productID, quantity: quantity}, nil
}

// ID returns the item's identifier.
func (i OrderItem) ID() OrderItemIDString {
	return i.id
}

// Name returns the item's name.
func (i OrderItem) Name() string {
	return i.name
}

// Price returns the unit price.
func (i OrderItem) Price() Cents {
	return i.price
}

// ProductID returns the identifier of the ordered product.
func (i OrderItem) ProductID() ProductIDString {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// Total returns price times quantity.
func (i OrderItem) Total() Cents {
	return i.price * Cents(i.quantity)
}

// Order is the entity of a customer's purchase of one or more items.
type Order struct {
	id         OrderIDString
	customerID CustomerIDString
	items      []OrderItem
}

// NewOrder creates a validated Order.
func NewOrder(id OrderIDString, customerID CustomerIDString, items []OrderItem) (*Order, error) {
	if id == "" {
		return nil, ErrIDIsRequired
	}

	if customerID == "" {
		return nil, ErrCustomerIDIsRequired
	}

	if len(items) == 0 {
		return nil, ErrItemsAreRequired
	}

	return &Order{id: id, customerID: customerID, items: slices.Clone(items)}, nil
}

// ID returns the order's identifier.
func (o *Order) ID() OrderIDString {
	return o.id
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() CustomerIDString {
	return o.customerID
}

// Items returns a copy of the order's items.
func (o *Order) Items() []OrderItem {
	return slices.Clone(o.items)
}

// AddItem appends an item to the order.
func (o *Order) AddItem(item OrderItem) {
	o.items = append(o.items, item)
}

// Total returns the sum of all item totals.
func (o *Order) Total() Cents {
	var total Cents
	for _, item := range o.items {
		total += item.Total()
	}

	return total
}
