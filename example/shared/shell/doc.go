// Package shell provides the shared command handler contracts and observability helpers
// for the example: Checkout in an online shop
//
// Command handlers in the features packages contain only business logic. The helpers in this
// package record metrics, tracing spans, and logs around them, using the same dependency-free
// interfaces as the eventdispatcher package, so one set of collectors serves both.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
