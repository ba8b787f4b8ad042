// Package changecustomeraddress implements the Change Customer Address use case.
//
// Moving a registered customer to a new address notifies core.CustomerAddressChanged.
// Changing to the address the customer already has is an idempotent no-op.
package changecustomeraddress
