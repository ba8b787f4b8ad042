package core

import (
	"errors"
)

// Instead of implementing full value objects, I'm using some alias types here ...

// CustomerIDString represents a customer identifier
type CustomerIDString = string

// ProductIDString represents a product identifier
type ProductIDString = string

// OrderIDString represents an order identifier
type OrderIDString = string

// OrderItemIDString represents an order item identifier
type OrderItemIDString = string

// Cents represents a monetary amount in the smallest currency unit
type Cents = int64

// Sentinel errors for entity validation.
var (
	ErrIDIsRequired           = errors.New("id is required")
	ErrNameIsRequired         = errors.New("name is required")
	ErrCustomerIDIsRequired   = errors.New("customer id is required")
	ErrProductIDIsRequired    = errors.New("product id is required")
	ErrPriceMustNotBeNegative = errors.New("price must not be negative")
	ErrQuantityMustBePositive = errors.New("quantity must be greater than zero")
	ErrItemsAreRequired       = errors.New("an order needs at least one item")
	ErrAddressIsIncomplete    = errors.New("address is incomplete")
	ErrAddressIsRequired      = errors.New("address is mandatory to activate a customer")
)
