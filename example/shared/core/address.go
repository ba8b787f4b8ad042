package core

import (
	"fmt"
)

// Address is a value object for a postal address.
type Address struct {
	Street string
	Number int
	Zip    string
	City   string
}

// BuildAddress creates a validated Address.
func BuildAddress(street string, number int, zip string, city string) (Address, error) {
	address := Address{Street: street, Number: number, Zip: zip, City: city}

	if address.Street == "" || address.Number <= 0 || address.Zip == "" || address.City == "" {
		return Address{}, ErrAddressIsIncomplete
	}

	return address, nil
}

// IsZero reports whether the address was never set.
func (a Address) IsZero() bool {
	return a == Address{}
}

// String formats the address in a single line.
func (a Address) String() string {
	return fmt.Sprintf("%s, %d, %s %s", a.Street, a.Number, a.Zip, a.City)
}
