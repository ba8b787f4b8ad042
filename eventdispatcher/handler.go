package eventdispatcher

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// Handler reacts to events of one kind.
//
// Unregister matches handlers by reference identity. Use pointer handlers, or HandlerFunc,
// for handlers which are unregistered individually; value handlers can only be removed with UnregisterAll.
//
// Handle is invoked once per matching notification, synchronously and on the goroutine of the caller
// of Notify. Each notification is a single attempt; there is no retry.
// A returned error is surfaced to the caller of Notify according to the Dispatcher's HandlerFailurePolicy.
type Handler[P any] interface {
	Handle(ctx context.Context, event Event[P]) error
}

// HandlerFunc adapts a plain function to a Handler.
//
// The returned Handler is pointer-backed, so every call to HandlerFunc yields a distinct identity
// which can be used with Unregister.
func HandlerFunc[P any](fn func(ctx context.Context, event Event[P]) error) Handler[P] {
	return &funcHandler[P]{fn: fn}
}

type funcHandler[P any] struct {
	fn func(ctx context.Context, event Event[P]) error
}

func (h *funcHandler[P]) Handle(ctx context.Context, event Event[P]) error {
	return h.fn(ctx, event)
}

// registration is the payload-agnostic registry entry for one registered Handler.
type registration struct {
	handler any
	name    string
	invoke  func(ctx context.Context, event anyEvent) error
}

func newRegistration[P any](handler Handler[P]) registration {
	return registration{
		handler: handler,
		name:    handlerName(handler),
		invoke: func(ctx context.Context, event anyEvent) error {
			if typed, ok := event.(Event[P]); ok {
				return handler.Handle(ctx, typed)
			}

			payload, ok := convertPayload[P](event.payloadValue())
			if !ok {
				return fmt.Errorf(
					"%w: handler %s expects %s, got %T",
					ErrPayloadTypeMismatch, handlerName(handler), reflect.TypeFor[P](), event.payloadValue(),
				)
			}

			return handler.Handle(ctx, Event[P]{occurredAt: event.occurredAtTime(), payload: payload})
		},
	}
}

// call invokes the handler and converts a panic into an error.
func (r registration) call(ctx context.Context, event anyEvent) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = errors.Join(ErrHandlerPanicked, fmt.Errorf("%s: %v", r.name, recovered))
		}
	}()

	return r.invoke(ctx, event)
}

// matches reports whether the registration holds exactly the given handler instance.
// Only pointer and channel handlers carry an identity; value handlers never match,
// since two equal values may still be distinct registrations.
func (r registration) matches(handler any) bool {
	if !hasIdentity(r.handler) || reflect.TypeOf(r.handler) != reflect.TypeOf(handler) {
		return false
	}

	return r.handler == handler
}

func hasIdentity(handler any) bool {
	if handler == nil {
		return false
	}

	switch reflect.TypeOf(handler).Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// convertPayload converts a payload of unknown type to P, which succeeds when the dynamic type is assignable to P.
func convertPayload[P any](payload any) (P, bool) {
	var zero P

	if payload == nil {
		return zero, reflect.TypeFor[P]().Kind() == reflect.Interface
	}

	converted, ok := payload.(P)

	return converted, ok
}

func handlerName(handler any) string {
	return fmt.Sprintf("%T", handler)
}
