// Package observable provides a wrapper for instrumenting command handlers
// with observability (metrics, tracing, logging) while keeping business logic pure.
//
// # Core Principle: External Wrapping
//
// The wrapper is applied externally at bootstrap/wiring time, not hidden
// inside factory functions. This makes the observability composition explicit.
//
//	// 1. Create pure business logic handler
//	coreHandler := placeorder.NewCommandHandler(customers, products, orders)
//
//	// 2. Wrap with observability
//	observableHandler, err := observable.NewCommandWrapper(
//		coreHandler,
//		observable.WithCommandMetrics[placeorder.Command](metricsCollector),
//		observable.WithCommandTracing[placeorder.Command](tracingCollector),
//		observable.WithCommandContextualLogging[placeorder.Command](contextualLogger),
//	)
//
//	// 3. Use wrapped handler in application
//	result, err := observableHandler.Handle(ctx, command)
//
// For unit tests focused on business logic, use the core handlers without the wrapper.
package observable
