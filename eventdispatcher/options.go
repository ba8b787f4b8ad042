package eventdispatcher

// HandlerFailurePolicy decides what Notify does when a handler fails.
type HandlerFailurePolicy int

const (
	// AbortOnHandlerError stops at the first failing handler and returns its error. This is the default.
	AbortOnHandlerError HandlerFailurePolicy = iota

	// ContinueOnHandlerError invokes every handler and returns all failures joined.
	ContinueOnHandlerError
)

// String returns the policy name as used in logs and span attributes.
func (p HandlerFailurePolicy) String() string {
	switch p {
	case AbortOnHandlerError:
		return "abort"
	case ContinueOnHandlerError:
		return "continue"
	default:
		return "unknown"
	}
}

// Option defines a functional option for configuring the Dispatcher.
type Option func(*Dispatcher) error

// WithHandlerFailurePolicy sets how Notify reacts to failing handlers.
func WithHandlerFailurePolicy(policy HandlerFailurePolicy) Option {
	return func(d *Dispatcher) error {
		if policy != AbortOnHandlerError && policy != ContinueOnHandlerError {
			return ErrUnknownHandlerFailurePolicy
		}

		d.failurePolicy = policy

		return nil
	}
}

// WithLogger sets the logger for the Dispatcher.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: handler registrations and removals
// Info level: completed notifications with kind, handler count and duration
// Error level: failing handlers.
func WithLogger(logger Logger) Option {
	return func(d *Dispatcher) error {
		if logger == nil {
			return ErrNilLogger
		}

		d.logger = logger

		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Dispatcher.
// The contextual logger receives the notification messages with the context of the Notify call,
// enabling trace correlation when tracing is enabled.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(d *Dispatcher) error {
		if logger == nil {
			return ErrNilLogger
		}

		d.contextualLogger = logger

		return nil
	}
}

// WithMetrics sets the metrics collector for the Dispatcher.
// It will receive notify durations, the number of invoked handlers, and handler error counts.
func WithMetrics(collector MetricsCollector) Option {
	return func(d *Dispatcher) error {
		if collector == nil {
			return ErrNilMetricsCollector
		}

		d.metricsCollector = collector

		return nil
	}
}

// WithTracing sets the tracing collector for the Dispatcher.
// One span is created per Notify call.
func WithTracing(collector TracingCollector) Option {
	return func(d *Dispatcher) error {
		if collector == nil {
			return ErrNilTracingCollector
		}

		d.tracingCollector = collector

		return nil
	}
}
