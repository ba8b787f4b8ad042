package orderrepository

import (
	"github.com/AntonStoeckl/domain-events-dispatcher-go/eventdispatcher"
)

// Option defines a functional option for configuring the Repository.
type Option func(*Repository) error

// WithDispatcher sets the dispatcher which is notified about created and updated orders.
func WithDispatcher(dispatcher *eventdispatcher.Dispatcher) Option {
	return func(r *Repository) error {
		if dispatcher == nil {
			return ErrNilDispatcher
		}

		r.dispatcher = dispatcher

		return nil
	}
}

// WithLogger sets the logger which receives failed repository operations at error level
// and executed SQL statements at debug level.
func WithLogger(logger eventdispatcher.Logger) Option {
	return func(r *Repository) error {
		if logger == nil {
			return ErrNilLogger
		}

		r.logger = logger

		return nil
	}
}
