package handlers_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/eventdispatcher"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/core"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell/handlers"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/testutil/observability"
)

var errMailerDown = errors.New("smtp connection refused")

type failingMailer struct{}

func (failingMailer) Send(context.Context, handlers.Email) error {
	return errMailerDown
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func givenCustomerWithAddress(t *testing.T) *core.Customer {
	t.Helper()

	customer, err := core.NewCustomer("customer-1", "Ada Lovelace")
	require.NoError(t, err)

	address, err := core.BuildAddress("Main Street", 123, "13330-250", "São Paulo")
	require.NoError(t, err)
	require.NoError(t, customer.ChangeAddress(address))

	return customer
}

func Test_SendEmailWhenProductIsCreated_SendsOneEmail(t *testing.T) {
	// setup
	logHandler := observability.NewLogHandlerSpy(false)
	mailer := handlers.NewOutboxMailer()
	handler := handlers.NewSendEmailWhenProductIsCreated(mailer, "catalog@example.com", slog.New(logHandler))

	// arrange
	product, err := core.NewProduct("product-1", "Keyboard", 4999)
	require.NoError(t, err)

	// act
	err = handler.Handle(context.Background(), eventdispatcher.BuildEvent(core.BuildProductCreated(product)))

	// assert
	require.NoError(t, err)

	sent := mailer.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "catalog@example.com", sent[0].To)
	assert.Equal(t, "New product: Keyboard", sent[0].Subject)
	assert.Contains(t, sent[0].Body, "4999 cents")
	assert.NotEmpty(t, sent[0].MessageID)

	assert.True(t, logHandler.
		HasInfoLogWithMessage("email sent when product was created").
		WithAttribute("product_id", "product-1").
		WithAttribute("recipient", "catalog@example.com").
		Assert())
}

func Test_SendEmailWhenProductIsCreated_ReturnsMailerFailure(t *testing.T) {
	// setup
	handler := handlers.NewSendEmailWhenProductIsCreated(failingMailer{}, "catalog@example.com", slog.New(slog.DiscardHandler))

	// act
	err := handler.Handle(context.Background(), eventdispatcher.BuildEvent(core.ProductCreated{ProductID: "product-1"}))

	// assert
	assert.ErrorIs(t, err, handlers.ErrSendingEmailFailed)
	assert.ErrorIs(t, err, errMailerDown)
}

func Test_OutboxMailer_KeepsGivenMessageIDs(t *testing.T) {
	// setup
	mailer := handlers.NewOutboxMailer()

	// act
	require.NoError(t, mailer.Send(context.Background(), handlers.Email{MessageID: "fixed"}))
	require.NoError(t, mailer.Send(context.Background(), handlers.Email{}))

	// assert
	sent := mailer.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, "fixed", sent[0].MessageID)
	assert.NotEqual(t, sent[0].MessageID, sent[1].MessageID)
}

func Test_LogWhenCustomerIsCreated_BothHandlersLog(t *testing.T) {
	// setup
	logHandler := observability.NewLogHandlerSpy(false)
	logger := slog.New(logHandler)
	event := eventdispatcher.BuildEvent(core.CustomerCreated{CustomerID: "customer-1", Name: "Ada Lovelace"})

	// act
	err1 := handlers.NewLogWhenCustomerIsCreated1(logger).Handle(context.Background(), event)
	err2 := handlers.NewLogWhenCustomerIsCreated2(logger).Handle(context.Background(), event)

	// assert
	require.NoError(t, err1)
	require.NoError(t, err2)

	assert.True(t, logHandler.
		HasInfoLogWithMessage("first handler: customer created").
		WithAttribute("customer_id", "customer-1").
		Assert())
	assert.True(t, logHandler.
		HasInfoLogWithMessage("second handler: customer created").
		WithAttribute("customer_id", "customer-1").
		WithAttribute("name", "Ada Lovelace").
		Assert())
}

func Test_LogWhenCustomerAddressChanged_LogsTheNewAddress(t *testing.T) {
	// setup
	logHandler := observability.NewLogHandlerSpy(false)
	handler := handlers.NewLogWhenCustomerAddressChanged(slog.New(logHandler))
	customer := givenCustomerWithAddress(t)

	// act
	err := handler.Handle(context.Background(), eventdispatcher.BuildEvent(core.BuildCustomerAddressChanged(customer)))

	// assert
	require.NoError(t, err)
	assert.True(t, logHandler.
		HasInfoLogWithMessage("customer address changed").
		WithAttribute("customer_id", "customer-1").
		WithAttribute("name", "Ada Lovelace").
		WithAttribute("address", "Main Street, 123, 13330-250 São Paulo").
		Assert())
}

func Test_JSONAuditLog_WritesOneLinePerEvent(t *testing.T) {
	// setup
	var buf bytes.Buffer
	handler := handlers.NewJSONAuditLog[any](&buf)
	occurredAt := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)

	// act
	err1 := handler.Handle(context.Background(), eventdispatcher.BuildEventAt[any](core.ProductCreated{ProductID: "product-1", Name: "Keyboard", Price: 4999}, occurredAt))
	err2 := handler.Handle(context.Background(), eventdispatcher.BuildEventAt[any](core.CustomerCreated{CustomerID: "customer-1"}, occurredAt))

	// assert
	require.NoError(t, err1)
	require.NoError(t, err2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(lines[0], &first))
	assert.Equal(t, "ProductCreated", first["kind"])
	assert.Equal(t, "2025-03-01T10:30:00Z", first["occurred_at"])
	assert.Equal(t, map[string]any{"ProductID": "product-1", "Name": "Keyboard", "Price": float64(4999)}, first["payload"])

	assert.Contains(t, lines[1], `"kind":"CustomerCreated"`)
}

func Test_JSONAuditLog_ReturnsWriteFailure(t *testing.T) {
	// setup
	handler := handlers.NewJSONAuditLog[core.OrderCreated](failingWriter{})

	// act
	err := handler.Handle(context.Background(), eventdispatcher.BuildEvent(core.OrderCreated{OrderID: "order-1"}))

	// assert
	assert.ErrorIs(t, err, handlers.ErrWritingAuditLogFailed)
}

func Test_RegisterAll_WiresTheDefaultHandlerSet(t *testing.T) {
	testCases := []struct {
		name           string
		auditWriter    *bytes.Buffer
		expectedCounts map[eventdispatcher.Kind]int
	}{
		{
			name: "without audit log",
			expectedCounts: map[eventdispatcher.Kind]int{
				core.ProductCreatedEventKind:         1,
				core.CustomerCreatedEventKind:        2,
				core.CustomerAddressChangedEventKind: 1,
			},
		},
		{
			name:        "with audit log",
			auditWriter: &bytes.Buffer{},
			expectedCounts: map[eventdispatcher.Kind]int{
				core.ProductCreatedEventKind:         2,
				core.CustomerCreatedEventKind:        3,
				core.CustomerAddressChangedEventKind: 2,
				core.OrderCreatedEventKind:           1,
				core.OrderUpdatedEventKind:           1,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// setup
			dispatcher, err := eventdispatcher.NewDispatcher()
			require.NoError(t, err)

			deps := handlers.Dependencies{
				Logger:         slog.New(slog.DiscardHandler),
				Mailer:         handlers.NewOutboxMailer(),
				EmailRecipient: "catalog@example.com",
			}
			if tc.auditWriter != nil {
				deps.AuditWriter = tc.auditWriter
			}

			// act
			handlers.RegisterAll(dispatcher, deps)

			// assert
			assert.Len(t, dispatcher.Kinds(), len(tc.expectedCounts))
			for kind, count := range tc.expectedCounts {
				registered, ok := dispatcher.HandlersFor(kind)
				assert.True(t, ok, kind)
				assert.Len(t, registered, count, kind)
			}
		})
	}
}

func Test_RegisterAll_NotifyReachesHandlersAndAuditLog(t *testing.T) {
	// setup
	dispatcher, err := eventdispatcher.NewDispatcher()
	require.NoError(t, err)

	var audit bytes.Buffer
	mailer := handlers.NewOutboxMailer()
	handlers.RegisterAll(dispatcher, handlers.Dependencies{
		Logger:         slog.New(slog.DiscardHandler),
		Mailer:         mailer,
		EmailRecipient: "catalog@example.com",
		AuditWriter:    &audit,
	})

	// act
	err = eventdispatcher.Notify(context.Background(), dispatcher,
		eventdispatcher.BuildEvent(core.ProductCreated{ProductID: "product-1", Name: "Keyboard"}))

	// assert
	require.NoError(t, err)
	assert.Len(t, mailer.Sent(), 1)
	assert.Contains(t, audit.String(), `"kind":"ProductCreated"`)
}
