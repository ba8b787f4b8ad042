// Package zapadapters provides zap implementations of the eventdispatcher logging interfaces.
//
// Example usage:
//
//	logger, _ := zap.NewProduction()
//	adapter := zapadapters.NewLogger(logger)
//
//	dispatcher, err := eventdispatcher.NewDispatcher(
//		eventdispatcher.WithLogger(adapter),
//		eventdispatcher.WithContextualLogger(adapter),
//	)
//
// The contextual methods add the trace_id and span_id of an active OpenTelemetry span.
package zapadapters
