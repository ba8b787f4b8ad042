package observable

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/eventdispatcher"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell"
)

// ErrNilCollector is returned when a nil collector or logger is passed to a CommandOption.
var ErrNilCollector = errors.New("observability collector must not be nil")

// CommandWrapper provides observability instrumentation for any command handler.
// It wraps a core command handler and adds metrics, tracing, and logging.
// The wrapper handles all infrastructure concerns while delegating business logic to the wrapped handler.
type CommandWrapper[C shell.Command] struct {
	coreHandler shell.CoreCommandHandler[C]
	commandType string
	observers   shell.Observers
}

// NewCommandWrapper creates a new observable wrapper around the core command handler.
func NewCommandWrapper[C shell.Command](
	coreHandler shell.CoreCommandHandler[C],
	opts ...CommandOption[C],
) (*CommandWrapper[C], error) {
	// Extract command type from a zero-value instance
	var zeroCommand C

	wrapper := &CommandWrapper[C]{
		coreHandler: coreHandler,
		commandType: zeroCommand.CommandType(),
	}

	for _, opt := range opts {
		if err := opt(wrapper); err != nil {
			return nil, err
		}
	}

	return wrapper, nil
}

// Handle delegates to the core handler and instruments the call with metrics, tracing, and logging.
func (w *CommandWrapper[C]) Handle(ctx context.Context, command C) (shell.HandlerResult, error) {
	ctx, run := w.observers.StartCommand(ctx, w.commandType)

	result, err := w.coreHandler.Handle(ctx, command)
	if err != nil {
		run.Failed(err)
		return result, err
	}

	run.Succeeded(result)

	return result, nil
}

// CommandOption defines a functional option for configuring CommandWrapper.
type CommandOption[C shell.Command] func(*CommandWrapper[C]) error

// WithCommandMetrics sets the metrics collector for the CommandWrapper.
func WithCommandMetrics[C shell.Command](collector eventdispatcher.MetricsCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		if collector == nil {
			return ErrNilCollector
		}

		w.observers.Metrics = collector

		return nil
	}
}

// WithCommandTracing sets the tracing collector for the CommandWrapper.
func WithCommandTracing[C shell.Command](collector eventdispatcher.TracingCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		if collector == nil {
			return ErrNilCollector
		}

		w.observers.Tracing = collector

		return nil
	}
}

// WithCommandContextualLogging sets the contextual logger for the CommandWrapper.
func WithCommandContextualLogging[C shell.Command](logger eventdispatcher.ContextualLogger) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		if logger == nil {
			return ErrNilCollector
		}

		w.observers.ContextualLogger = logger

		return nil
	}
}

// WithCommandLogging sets the basic logger for the CommandWrapper.
func WithCommandLogging[C shell.Command](logger eventdispatcher.Logger) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		if logger == nil {
			return ErrNilCollector
		}

		w.observers.Logger = logger

		return nil
	}
}
