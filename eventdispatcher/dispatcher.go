package eventdispatcher

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"
)

const (
	logMsgHandlerRegistered   = "handler registered"
	logMsgHandlerUnregistered = "handler unregistered"
	logMsgAllUnregistered     = "all handlers unregistered"
	logMsgNotifyCompleted     = "notify completed"
	logMsgNotifyFailed        = "notify failed"
	logMsgHandlerFailed       = "event handler failed"
	logMsgOperation           = "dispatcher operation: "
	logAttrKind               = "kind"
	logAttrHandler            = "handler"
	logAttrHandlerCount       = "handler_count"
	logAttrInvokedCount       = "invoked_count"
	logAttrErrorCount         = "error_count"
	logAttrKindCount          = "kind_count"
	logAttrDurationMS         = "duration_ms"
	logAttrError              = "error"
	logAttrPolicy             = "failure_policy"
)

// Dispatcher is an in-process registry mapping event kinds to ordered lists of handlers.
//
// It is usable immediately after construction and stays usable for its entire lifetime.
// All methods and functions operating on a Dispatcher are safe for concurrent use.
type Dispatcher struct {
	mu       sync.RWMutex
	registry map[Kind][]registration

	failurePolicy    HandlerFailurePolicy
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

// NewDispatcher creates a new, empty Dispatcher with optional configuration.
func NewDispatcher(options ...Option) (*Dispatcher, error) {
	d := &Dispatcher{
		registry:      make(map[Kind][]registration),
		failurePolicy: AbortOnHandlerError,
	}

	for _, option := range options {
		if err := option(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Register appends the handler to the list of handlers for the given kind, creating the list if absent.
//
// Registrations are not de-duplicated: registering the same handler twice
// results in two invocations per notification.
func Register[P any](d *Dispatcher, kind Kind, handler Handler[P]) {
	entry := newRegistration(handler)

	d.mu.Lock()
	d.registry[kind] = append(d.registry[kind], entry)
	count := len(d.registry[kind])
	d.mu.Unlock()

	d.logDebug(logMsgHandlerRegistered, logAttrKind, kind, logAttrHandler, entry.name, logAttrHandlerCount, count)
}

// Unregister removes the first registration of exactly this handler instance for the given kind.
//
// Matching is by reference identity, not by value equality: an equal but distinct handler value
// does not match, and value-typed handlers never match at all.
// Unregistering from an unknown kind, or a handler that is not registered, is a no-op.
// The list for the kind stays present, even if it becomes empty.
func Unregister[P any](d *Dispatcher, kind Kind, handler Handler[P]) {
	d.mu.Lock()

	registrations, ok := d.registry[kind]
	if !ok {
		d.mu.Unlock()
		return
	}

	idx := slices.IndexFunc(registrations, func(r registration) bool {
		return r.matches(handler)
	})

	if idx < 0 {
		d.mu.Unlock()
		return
	}

	// Build a new slice so that snapshots taken by in-flight notifications stay untouched.
	remaining := make([]registration, 0, len(registrations)-1)
	remaining = append(remaining, registrations[:idx]...)
	remaining = append(remaining, registrations[idx+1:]...)
	d.registry[kind] = remaining
	d.mu.Unlock()

	d.logDebug(logMsgHandlerUnregistered, logAttrKind, kind, logAttrHandler, handlerName(handler), logAttrHandlerCount, len(remaining))
}

// UnregisterAll clears the whole registry and resets the Dispatcher to its initial state.
// Afterward, every kind is absent, not merely empty.
func (d *Dispatcher) UnregisterAll() {
	d.mu.Lock()
	kindCount := len(d.registry)
	d.registry = make(map[Kind][]registration)
	d.mu.Unlock()

	d.logDebug(logMsgAllUnregistered, logAttrKindCount, kindCount)
}

// HandlersFor returns the handlers currently registered for the given kind, in invocation order,
// and whether the kind is present in the registry at all.
//
// Every call reads the live registry; the returned slice is a copy which the caller may keep.
func (d *Dispatcher) HandlersFor(kind Kind) ([]any, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	registrations, ok := d.registry[kind]
	if !ok {
		return nil, false
	}

	handlers := make([]any, 0, len(registrations))
	for _, r := range registrations {
		handlers = append(handlers, r.handler)
	}

	return handlers, true
}

// Kinds returns all kinds currently present in the registry, sorted.
func (d *Dispatcher) Kinds() Kinds {
	d.mu.RLock()
	defer d.mu.RUnlock()

	kinds := make(Kinds, 0, len(d.registry))
	for kind := range d.registry {
		kinds = append(kinds, kind)
	}

	slices.Sort(kinds)

	return kinds
}

// Notify delivers the event to all handlers registered for its kind, as resolved by KindOf.
//
// Handlers are invoked synchronously on the caller's goroutine, exactly once each, in registration order.
// Notifying a kind without handlers is a no-op.
// Handler failures (returned errors and panics) are returned joined with ErrHandlerFailed,
// according to the Dispatcher's HandlerFailurePolicy.
func Notify[P any](ctx context.Context, d *Dispatcher, event Event[P]) error {
	return NotifyAs(ctx, d, KindOf(event), event)
}

// NotifyAs delivers the event to all handlers registered for the given kind.
// It behaves like Notify, but the producer chooses the kind instead of deriving it from the payload.
func NotifyAs[P any](ctx context.Context, d *Dispatcher, kind Kind, event Event[P]) error {
	return d.notify(ctx, kind, event)
}

func (d *Dispatcher) notify(ctx context.Context, kind Kind, event anyEvent) error {
	d.mu.RLock()
	registrations := slices.Clone(d.registry[kind])
	d.mu.RUnlock()

	if len(registrations) == 0 {
		return nil
	}

	tracer, ctx := d.startNotifyTracing(ctx, kind, len(registrations))
	metrics := d.startNotifyMetrics(ctx, kind)
	start := time.Now()

	var failures []error
	invoked := 0

	for _, r := range registrations {
		invoked++

		if err := r.call(ctx, event); err != nil {
			d.logErrorContext(ctx, logMsgHandlerFailed, err, logAttrKind, kind, logAttrHandler, r.name)
			metrics.recordHandlerError(r.name)
			failures = append(failures, err)

			if d.failurePolicy == AbortOnHandlerError {
				break
			}
		}
	}

	duration := time.Since(start)

	if len(failures) > 0 {
		metrics.recordError(invoked, duration)
		tracer.finishError(invoked, len(failures), duration)
		d.logOperationContext(ctx, logMsgNotifyFailed,
			logAttrKind, kind,
			logAttrHandlerCount, len(registrations),
			logAttrInvokedCount, invoked,
			logAttrErrorCount, len(failures),
			logAttrPolicy, d.failurePolicy.String(),
			logAttrDurationMS, toMilliseconds(duration))

		return errors.Join(ErrHandlerFailed, errors.Join(failures...))
	}

	metrics.recordSuccess(invoked, duration)
	tracer.finishSuccess(invoked, duration)
	d.logOperationContext(ctx, logMsgNotifyCompleted,
		logAttrKind, kind,
		logAttrHandlerCount, len(registrations),
		logAttrDurationMS, toMilliseconds(duration))

	return nil
}
