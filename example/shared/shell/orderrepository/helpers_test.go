package orderrepository_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/eventdispatcher"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/core"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell/orderrepository"
)

func givenMigratedSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	// every connection of an in-memory sqlite database sees its own database
	db.SetMaxOpenConns(1)

	t.Cleanup(func() { _ = db.Close() })

	_, err = orderrepository.Migrate(db, orderrepository.DialectSQLite3)
	require.NoError(t, err)

	return db
}

func givenOrder(t *testing.T, id core.OrderIDString, customerID core.CustomerIDString, quantities ...int) *core.Order {
	t.Helper()

	items := make([]core.OrderItem, 0, len(quantities))
	for i, quantity := range quantities {
		item, err := core.NewOrderItem(
			id+"-item-"+string(rune('a'+i)),
			"Product "+string(rune('A'+i)),
			1250,
			"product-"+string(rune('a'+i)),
			quantity,
		)
		require.NoError(t, err)

		items = append(items, item)
	}

	order, err := core.NewOrder(id, customerID, items)
	require.NoError(t, err)

	return order
}

type orderEventsSpy struct {
	mu      sync.Mutex
	created []core.OrderCreated
	updated []core.OrderUpdated
	err     error
}

func givenDispatcherWithOrderEventsSpy(t *testing.T) (*eventdispatcher.Dispatcher, *orderEventsSpy) {
	t.Helper()

	dispatcher, err := eventdispatcher.NewDispatcher()
	require.NoError(t, err)

	spy := &orderEventsSpy{}

	eventdispatcher.Register(dispatcher, core.OrderCreatedEventKind, eventdispatcher.HandlerFunc(
		func(_ context.Context, event eventdispatcher.Event[core.OrderCreated]) error {
			spy.mu.Lock()
			defer spy.mu.Unlock()

			spy.created = append(spy.created, event.Payload())

			return spy.err
		},
	))

	eventdispatcher.Register(dispatcher, core.OrderUpdatedEventKind, eventdispatcher.HandlerFunc(
		func(_ context.Context, event eventdispatcher.Event[core.OrderUpdated]) error {
			spy.mu.Lock()
			defer spy.mu.Unlock()

			spy.updated = append(spy.updated, event.Payload())

			return spy.err
		},
	))

	return dispatcher, spy
}

func (s *orderEventsSpy) failWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.err = err
}

func (s *orderEventsSpy) createdEvents() []core.OrderCreated {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]core.OrderCreated(nil), s.created...)
}

func (s *orderEventsSpy) updatedEvents() []core.OrderUpdated {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]core.OrderUpdated(nil), s.updated...)
}
