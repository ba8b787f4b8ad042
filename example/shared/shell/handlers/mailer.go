package handlers

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Email is one outgoing e-mail notification.
type Email struct {
	MessageID string
	To        string
	Subject   string
	Body      string
}

// Mailer sends e-mail notifications.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// OutboxMailer is a Mailer which only keeps the sent e-mails in memory.
type OutboxMailer struct {
	mu     sync.Mutex
	outbox []Email
}

// NewOutboxMailer creates an empty OutboxMailer.
func NewOutboxMailer() *OutboxMailer {
	return &OutboxMailer{}
}

// Send implements Mailer. Emails without a MessageID get a fresh UUIDv7.
func (m *OutboxMailer) Send(_ context.Context, email Email) error {
	if email.MessageID == "" {
		messageID, err := uuid.NewV7()
		if err != nil {
			return err
		}

		email.MessageID = messageID.String()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.outbox = append(m.outbox, email)

	return nil
}

// Sent returns a copy of all e-mails sent so far.
func (m *OutboxMailer) Sent() []Email {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.outbox)
}
