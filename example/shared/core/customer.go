package core

// Customer is the entity of a person who can place orders.
type Customer struct {
	id      CustomerIDString
	name    string
	address Address
	active  bool
}

// NewCustomer creates a new, inactive Customer without an address.
func NewCustomer(id CustomerIDString, name string) (*Customer, error) {
	if id == "" {
		return nil, ErrIDIsRequired
	}

	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Customer{id: id, name: name}, nil
}

// ID returns the customer's identifier.
func (c *Customer) ID() CustomerIDString {
	return c.id
}

// Name returns the customer's name.
func (c *Customer) Name() string {
	return c.name
}

// Address returns the customer's current address, which is zero if none was set.
func (c *Customer) Address() Address {
	return c.address
}

// IsActive reports whether the customer is active.
func (c *Customer) IsActive() bool {
	return c.active
}

// ChangeName renames the customer.
func (c *Customer) ChangeName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name

	return nil
}

// ChangeAddress replaces the customer's address.
func (c *Customer) ChangeAddress(address Address) error {
	if _, err := BuildAddress(address.Street, address.Number, address.Zip, address.City); err != nil {
		return err
	}

	c.address = address

	return nil
}

// Activate activates the customer, which requires an address.
func (c *Customer) Activate() error {
	if c.address.IsZero() {
		return ErrAddressIsRequired
	}

	c.active = true

	return nil
}

// Deactivate deactivates the customer.
func (c *Customer) Deactivate() {
	c.active = false
}
