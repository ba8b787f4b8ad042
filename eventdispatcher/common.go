package eventdispatcher

import (
	"errors"
)

var ErrHandlerFailed = errors.New("event handler failed")
var ErrHandlerPanicked = errors.New("event handler panicked")
var ErrPayloadTypeMismatch = errors.New("event payload type does not match the handler")

var ErrNilLogger = errors.New("logger must not be nil")
var ErrNilMetricsCollector = errors.New("metrics collector must not be nil")
var ErrNilTracingCollector = errors.New("tracing collector must not be nil")
var ErrUnknownHandlerFailurePolicy = errors.New("unknown handler failure policy")

// Kind is the event kind identifier, the sole routing key of the Dispatcher.
// Producers and handlers agree on it out-of-band; the Dispatcher does not validate it.
type Kind = string

// Kinds is an alias type for a slice of Kind.
type Kinds = []Kind
