package eventdispatcher_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/eventdispatcher"
)

type plainPayload struct {
	Value string
}

type anonymousAware interface {
	Aware()
}

type invoiceIssued struct {
	InvoiceID string
}

func (*invoiceIssued) EventKind() eventdispatcher.Kind {
	return "InvoiceIssued"
}

const testPackage = "github.com/AntonStoeckl/domain-events-dispatcher-go/eventdispatcher_test."

func Test_BuildEvent_StampsCurrentTime(t *testing.T) {
	// arrange
	before := time.Now().UTC().Truncate(time.Microsecond)

	// act
	event := eventdispatcher.BuildEvent(plainPayload{Value: "x"})

	// assert
	after := time.Now().UTC()
	assert.False(t, event.OccurredAt().Before(before), "occurredAt must not be before construction")
	assert.False(t, event.OccurredAt().After(after), "occurredAt must not be after construction")
	assert.Equal(t, time.UTC, event.OccurredAt().Location())
}

func Test_BuildEventAt_NormalizesTimestamp(t *testing.T) {
	// arrange
	location := time.FixedZone("UTC+2", 2*60*60)
	occurredAt := time.Date(2024, 3, 1, 12, 0, 0, 123456789, location)

	// act
	event := eventdispatcher.BuildEventAt(plainPayload{}, occurredAt)

	// assert
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 123456000, time.UTC), event.OccurredAt())
}

func Test_BuildEvent_StoresPayloadVerbatim(t *testing.T) {
	// arrange
	payload := &plainPayload{Value: "original"}

	// act
	event := eventdispatcher.BuildEvent(payload)

	// assert
	assert.Same(t, payload, event.Payload(), "payload must not be copied")
}

func Test_KindOf(t *testing.T) {
	testCases := []struct {
		name     string
		kindFunc func() eventdispatcher.Kind
		expected eventdispatcher.Kind
	}{
		{
			name: "payload implementing KindProvider",
			kindFunc: func() eventdispatcher.Kind {
				return eventdispatcher.KindOf(eventdispatcher.BuildEvent(productCreated{}))
			},
			expected: productCreatedKind,
		},
		{
			name: "payload type name",
			kindFunc: func() eventdispatcher.Kind {
				return eventdispatcher.KindOf(eventdispatcher.BuildEvent(plainPayload{}))
			},
			expected: testPackage + "plainPayload",
		},
		{
			name: "pointer payload resolves to the element type name",
			kindFunc: func() eventdispatcher.Kind {
				return eventdispatcher.KindOf(eventdispatcher.BuildEvent(&plainPayload{}))
			},
			expected: testPackage + "plainPayload",
		},
		{
			name: "dynamic type of an interface payload",
			kindFunc: func() eventdispatcher.Kind {
				var payload any = customerCreated{}
				return eventdispatcher.KindOf(eventdispatcher.BuildEvent(payload))
			},
			expected: customerCreatedKind,
		},
		{
			name: "nil interface payload falls back to the static type",
			kindFunc: func() eventdispatcher.Kind {
				var payload anonymousAware
				return eventdispatcher.KindOf(eventdispatcher.BuildEvent(payload))
			},
			expected: testPackage + "anonymousAware",
		},
		{
			name: "unnamed type",
			kindFunc: func() eventdispatcher.Kind {
				return eventdispatcher.KindOf(eventdispatcher.BuildEvent([]string{"a"}))
			},
			expected: "[]string",
		},
		{
			name: "predeclared type",
			kindFunc: func() eventdispatcher.Kind {
				return eventdispatcher.KindOf(eventdispatcher.BuildEvent(42))
			},
			expected: "int",
		},
		{
			name: "value payload with KindProvider on the pointer receiver",
			kindFunc: func() eventdispatcher.Kind {
				return eventdispatcher.KindOf(eventdispatcher.BuildEvent(invoiceIssued{InvoiceID: "i-1"}))
			},
			expected: "InvoiceIssued",
		},
		{
			name: "pointer payload with KindProvider on the pointer receiver",
			kindFunc: func() eventdispatcher.Kind {
				return eventdispatcher.KindOf(eventdispatcher.BuildEvent(&invoiceIssued{InvoiceID: "i-1"}))
			},
			expected: "InvoiceIssued",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.kindFunc())
		})
	}
}

func Test_KindOf_DistinctTypesWithTheSameName_DoNotCollide(t *testing.T) {
	// arrange
	type plainPayload struct {
		Value string
	}
	local := eventdispatcher.BuildEvent(plainPayload{Value: "local"})

	// act
	localKind := eventdispatcher.KindOf(local)
	anonymousKind := eventdispatcher.KindOf(eventdispatcher.BuildEvent(struct{ Value string }{}))
	outerKind := kindOfPackageLevelPlainPayload()

	// assert
	assert.NotEqual(t, outerKind, localKind)
	assert.NotEqual(t, anonymousKind, localKind)
	assert.Equal(t, localKind, eventdispatcher.KindOf(eventdispatcher.BuildEvent(&plainPayload{})), "kinds are stable per type")
}

func Test_Notify_SameNamedTypeFromAnotherScope_DoesNotReachHandler(t *testing.T) {
	// setup
	dispatcher := givenDispatcher(t)

	// arrange
	type plainPayload struct {
		Value string
	}
	handler := newHandlerSpy[any]("package-level plainPayload", nil)
	eventdispatcher.Register(dispatcher, kindOfPackageLevelPlainPayload(), handler)

	// act
	err := eventdispatcher.Notify(context.Background(), dispatcher, eventdispatcher.BuildEvent(plainPayload{Value: "v"}))

	// assert
	require.NoError(t, err)
	assert.Zero(t, handler.calls())
}

func Test_Notify_ValuePayloadWithPointerReceiverKind_ReachesHandler(t *testing.T) {
	// setup
	dispatcher := givenDispatcher(t)

	// arrange
	handler := newHandlerSpy[invoiceIssued]("invoices", nil)
	eventdispatcher.Register(dispatcher, "InvoiceIssued", handler)

	// act
	err := eventdispatcher.Notify(context.Background(), dispatcher, eventdispatcher.BuildEvent(invoiceIssued{InvoiceID: "i-1"}))

	// assert
	require.NoError(t, err)
	require.Equal(t, 1, handler.calls())
	assert.Equal(t, "i-1", handler.events()[0].Payload().InvoiceID)
}

func kindOfPackageLevelPlainPayload() eventdispatcher.Kind {
	return eventdispatcher.KindOf(eventdispatcher.BuildEvent(plainPayload{}))
}
