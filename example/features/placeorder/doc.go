// Package placeorder implements the Place Order use case.
//
// The customer must be known and every ordered product must exist in the catalog,
// item names and prices are taken from the catalog at the time the order is placed.
// The order repository persists the order and notifies core.OrderCreated.
package placeorder
