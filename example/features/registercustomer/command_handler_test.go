package registercustomer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/eventdispatcher"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/features/registercustomer"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/core"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell/memorystore"
)

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// setup
	ctx := context.Background()
	customers := memorystore.NewStore[*core.Customer]()
	dispatcher, received := givenDispatcherRecordingCustomerCreated(t, nil)
	handler := registercustomer.NewCommandHandler(customers, dispatcher)

	// act
	result, err := handler.Handle(ctx, registercustomer.BuildCommand("customer-1", "Ada Lovelace"))

	// assert
	require.NoError(t, err)
	assert.False(t, result.Idempotent)
	assert.Equal(t, core.CustomerCreatedEventKind, result.NotifiedKind)

	stored, err := customers.Find(ctx, "customer-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", stored.Name())

	assert.Equal(t, []core.CustomerCreated{{CustomerID: "customer-1", Name: "Ada Lovelace"}}, *received)
}

func Test_CommandHandler_Handle_Idempotent_CustomerAlreadyRegistered(t *testing.T) {
	// setup
	ctx := context.Background()
	dispatcher, received := givenDispatcherRecordingCustomerCreated(t, nil)
	handler := registercustomer.NewCommandHandler(memorystore.NewStore[*core.Customer](), dispatcher)

	// arrange
	command := registercustomer.BuildCommand("customer-1", "Ada Lovelace")
	_, err := handler.Handle(ctx, command)
	require.NoError(t, err)

	// act
	result, err := handler.Handle(ctx, command)

	// assert
	require.NoError(t, err)
	assert.True(t, result.Idempotent)
	assert.Len(t, *received, 1, "no second event is notified")
}

func Test_CommandHandler_Handle_ReturnsNotificationFailure(t *testing.T) {
	// setup
	ctx := context.Background()
	customers := memorystore.NewStore[*core.Customer]()
	handlerErr := errors.New("audit log unavailable")
	dispatcher, _ := givenDispatcherRecordingCustomerCreated(t, handlerErr)
	handler := registercustomer.NewCommandHandler(customers, dispatcher)

	// act
	_, err := handler.Handle(ctx, registercustomer.BuildCommand("customer-1", "Ada Lovelace"))

	// assert
	assert.ErrorIs(t, err, eventdispatcher.ErrHandlerFailed)
	assert.ErrorIs(t, err, handlerErr)

	_, findErr := customers.Find(ctx, "customer-1")
	assert.NoError(t, findErr, "the customer stays registered")
}

func Test_CommandHandler_Handle_InvalidCommand(t *testing.T) {
	// setup
	dispatcher, received := givenDispatcherRecordingCustomerCreated(t, nil)
	handler := registercustomer.NewCommandHandler(memorystore.NewStore[*core.Customer](), dispatcher)

	// act
	_, err := handler.Handle(context.Background(), registercustomer.BuildCommand("", "Ada Lovelace"))

	// assert
	assert.ErrorIs(t, err, core.ErrIDIsRequired)
	assert.Empty(t, *received)
}

func givenDispatcherRecordingCustomerCreated(t *testing.T, handlerErr error) (*eventdispatcher.Dispatcher, *[]core.CustomerCreated) {
	t.Helper()

	dispatcher, err := eventdispatcher.NewDispatcher()
	require.NoError(t, err)

	received := &[]core.CustomerCreated{}
	eventdispatcher.Register(dispatcher, core.CustomerCreatedEventKind, eventdispatcher.HandlerFunc(
		func(_ context.Context, event eventdispatcher.Event[core.CustomerCreated]) error {
			*received = append(*received, event.Payload())
			return handlerErr
		},
	))

	return dispatcher, received
}
