// Package addorderitem implements the Add Order Item use case.
//
// An item for the given product is appended to an existing order; the order repository
// replaces the stored items and notifies core.OrderUpdated.
package addorderitem
