// Package memorystore provides a concurrency-safe in-memory store for the customers and products
// of the example: Checkout in an online shop
//
// Orders are stored in SQL by the orderrepository package; customers and products only live
// as long as the process.
package memorystore
