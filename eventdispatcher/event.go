package eventdispatcher

import (
	"reflect"
	"strconv"
	"sync"
	"time"
)

// KindProvider is implemented by payloads that know their own event kind.
//
// A pointer receiver works as well: a value payload whose pointer type implements KindProvider
// resolves to the provided kind.
type KindProvider interface {
	EventKind() Kind
}

// Event is an immutable value object describing something that has happened.
//
// It carries the time the event occurred and the payload supplied by the producer.
// The payload is stored verbatim, it is neither copied nor validated.
//
// Events should only be constructed with the supplied factory methods:
//   - BuildEvent
//   - BuildEventAt
type Event[P any] struct {
	occurredAt time.Time
	payload    P
}

// BuildEvent is a factory method for Event.
//
// It stamps the event with the current time, normalized to UTC with microsecond precision.
func BuildEvent[P any](payload P) Event[P] {
	return BuildEventAt(payload, time.Now())
}

// BuildEventAt is a factory method for Event with a given occurrence time.
// It is meant for producers which already own a timestamp, e.g. when replaying.
func BuildEventAt[P any](payload P, occurredAt time.Time) Event[P] {
	return Event[P]{
		occurredAt: ToOccurredAt(occurredAt),
		payload:    payload,
	}
}

// OccurredAt returns when this event occurred.
func (e Event[P]) OccurredAt() time.Time {
	return e.occurredAt
}

// Payload returns the payload supplied by the producer.
func (e Event[P]) Payload() P {
	return e.payload
}

func (e Event[P]) occurredAtTime() time.Time {
	return e.occurredAt
}

func (e Event[P]) payloadValue() any {
	return e.payload
}

// anyEvent is the payload-agnostic view of an Event used inside the registry.
type anyEvent interface {
	occurredAtTime() time.Time
	payloadValue() any
}

// KindOf resolves the kind identifier of an event.
//
// If the payload implements KindProvider, on its value or its pointer receiver, EventKind is used.
// Otherwise, the package-qualified name of the payload's dynamic Go type is used, falling back to
// the static type for nil interface payloads. Pointer payloads resolve to their element type.
// Two distinct types never share a resolved kind, even when they share a qualified name.
func KindOf[P any](event Event[P]) Kind {
	payload := any(event.payload)

	if provider, ok := kindProvider(payload); ok {
		return provider.EventKind()
	}

	if payload != nil {
		return typeKinds.kindOf(reflect.TypeOf(payload))
	}

	return typeKinds.kindOf(reflect.TypeFor[P]())
}

// ToOccurredAt converts a time to the occurred-at representation with UTC normalization and microsecond precision.
func ToOccurredAt(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func kindProvider(payload any) (KindProvider, bool) {
	if provider, ok := payload.(KindProvider); ok {
		return provider, true
	}

	if payload == nil {
		return nil, false
	}

	value := reflect.ValueOf(payload)
	if value.Kind() == reflect.Pointer {
		return nil, false
	}

	addressable := reflect.New(value.Type())
	addressable.Elem().Set(value)
	provider, ok := addressable.Interface().(KindProvider)

	return provider, ok
}

// typeKinds interns the kinds derived from Go types.
var typeKinds = kindRegistry{
	byType: make(map[reflect.Type]Kind),
	byKind: make(map[Kind]reflect.Type),
}

type kindRegistry struct {
	mu     sync.Mutex
	byType map[reflect.Type]Kind
	byKind map[Kind]reflect.Type
}

// kindOf returns the interned kind of t. Types sharing a qualified name, e.g. function-local
// types declared in the same package, get a numeric suffix in first-seen order.
func (r *kindRegistry) kindOf(t reflect.Type) Kind {
	for t.Kind() == reflect.Pointer && t.Name() == "" {
		t = t.Elem()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if kind, ok := r.byType[t]; ok {
		return kind
	}

	name := qualifiedName(t)
	kind := name
	for n := 2; ; n++ {
		if _, taken := r.byKind[kind]; !taken {
			break
		}
		kind = name + "#" + strconv.Itoa(n)
	}

	r.byType[t] = kind
	r.byKind[kind] = t

	return kind
}

func qualifiedName(t reflect.Type) string {
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}

	return t.PkgPath() + "." + t.Name()
}
