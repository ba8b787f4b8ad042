package handlers

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/eventdispatcher"
)

// ErrWritingAuditLogFailed is returned when an audit line could not be serialized or written.
var ErrWritingAuditLogFailed = errors.New("writing audit log failed")

// AuditLine is one line of the JSON audit log.
type AuditLine struct {
	Kind       string    `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// JSONAuditLog writes one JSON line per event to a writer.
// Registered as JSONAuditLog[core.DomainEvent] or JSONAuditLog[any] it serves as a catch-all handler.
type JSONAuditLog[P any] struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewJSONAuditLog creates a JSONAuditLog handler writing to the given writer.
func NewJSONAuditLog[P any](writer io.Writer) *JSONAuditLog[P] {
	return &JSONAuditLog[P]{writer: writer}
}

// Handle implements eventdispatcher.Handler.
func (h *JSONAuditLog[P]) Handle(_ context.Context, event eventdispatcher.Event[P]) error {
	line, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(AuditLine{
		Kind:       eventdispatcher.KindOf(event),
		OccurredAt: event.OccurredAt(),
		Payload:    event.Payload(),
	})
	if err != nil {
		return errors.Join(ErrWritingAuditLogFailed, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, err = h.writer.Write(append(line, '\n')); err != nil {
		return errors.Join(ErrWritingAuditLogFailed, err)
	}

	return nil
}
