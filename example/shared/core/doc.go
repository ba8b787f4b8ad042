// Package core contains the entities and domain events of the example:
// A small checkout with customers, products and orders.
//
// Entities validate their invariants on construction and on every state change.
// Domain events are plain payload structs which name their own kind via EventKind(),
// so they can be wrapped with eventdispatcher.BuildEvent and routed by the dispatcher
// without any further registration of type names.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
