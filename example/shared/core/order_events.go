package core

const (
	// OrderCreatedEventKind is the event kind identifier.
	OrderCreatedEventKind = "OrderCreated"

	// OrderUpdatedEventKind is the event kind identifier.
	OrderUpdatedEventKind = "OrderUpdated"
)

// OrderCreated represents when an order was placed and stored.
type OrderCreated struct {
	OrderID    OrderIDString
	CustomerID CustomerIDString
	Total      Cents
	ItemCount  int
}

// BuildOrderCreated creates a new OrderCreated event.
func BuildOrderCreated(order *Order) OrderCreated {
	return OrderCreated{
		OrderID:    order.ID(),
		CustomerID: order.CustomerID(),
		Total:      order.Total(),
		ItemCount:  len(order.items),
	}
}

// EventKind returns the event kind identifier.
func (e OrderCreated) EventKind() string {
	return OrderCreatedEventKind
}

// OrderUpdated represents when a stored order was changed.
type OrderUpdated struct {
	OrderID    OrderIDString
	CustomerID CustomerIDString
	Total      Cents
	ItemCount  int
}

// BuildOrderUpdated creates a new OrderUpdated event.
func BuildOrderUpdated(order *Order) OrderUpdated {
	return OrderUpdated{
		OrderID:    order.ID(),
		CustomerID: order.CustomerID(),
		Total:      order.Total(),
		ItemCount:  len(order.items),
	}
}

// EventKind returns the event kind identifier.
func (e OrderUpdated) EventKind() string {
	return OrderUpdatedEventKind
}
