// Package oteladapters provides OpenTelemetry implementations of the eventdispatcher observability interfaces.
//
// Wire them into a Dispatcher with the matching options:
//
//	dispatcher, err := eventdispatcher.NewDispatcher(
//		eventdispatcher.WithTracing(oteladapters.NewTracingCollector(tracerProvider.Tracer("eventdispatcher"))),
//		eventdispatcher.WithMetrics(oteladapters.NewMetricsCollector(meterProvider.Meter("eventdispatcher"))),
//		eventdispatcher.WithContextualLogger(oteladapters.NewSlogBridgeLogger("eventdispatcher")),
//	)
package oteladapters
