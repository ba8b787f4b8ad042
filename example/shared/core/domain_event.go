package core

// DomainEvent represents a business event that has occurred in the domain.
// The time of occurrence is not part of the payload, the dispatcher's event envelope carries it.
type DomainEvent interface {
	// EventKind returns the string identifier for this event type.
	EventKind() string
}
