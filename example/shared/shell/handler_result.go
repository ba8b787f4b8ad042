package shell

// HandlerResult represents the outcome of a command handler execution.
type HandlerResult struct {
	// Idempotent indicates that no state change was needed, so no event was notified.
	// This is a first-class business outcome, not an error condition.
	Idempotent bool

	// NotifiedKind is the kind of the event which was notified, empty for idempotent results.
	NotifiedKind string
}

// NewSuccessResult creates a HandlerResult for operations which changed state and notified an event.
func NewSuccessResult(notifiedKind string) HandlerResult {
	return HandlerResult{NotifiedKind: notifiedKind}
}

// NewIdempotentResult creates a HandlerResult for idempotent operations.
func NewIdempotentResult() HandlerResult {
	return HandlerResult{Idempotent: true}
}
