package shell

import (
	"context"
)

// Command represents the contract for all command types of the example application.
// The CommandType method enables observability instrumentation without reflection.
type Command interface {
	CommandType() string
}

// CoreCommandHandler defines the contract for components that process commands with pure business logic.
// Handlers return a HandlerResult describing the business outcome (idempotency).
// Implementations should focus purely on business logic without observability concerns;
// observable.CommandWrapper adds those from the outside.
type CoreCommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}

// CommandHandler defines the contract for command handlers that return only errors.
type CommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) error
}
