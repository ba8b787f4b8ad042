package eventdispatcher_test

import (
	"context"
	"errors"
	"sync"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/eventdispatcher"
)

const (
	productCreatedKind  = "ProductCreated"
	customerCreatedKind = "CustomerCreated"
)

var errHandlerSpyFailure = errors.New("handler spy failure")

type productCreated struct {
	ProductID string
	Name      string
}

func (productCreated) EventKind() eventdispatcher.Kind {
	return productCreatedKind
}

type customerCreated struct {
	CustomerID string
}

func (customerCreated) EventKind() eventdispatcher.Kind {
	return customerCreatedKind
}

// callLog records the order in which handlers were invoked across several handler spies.
type callLog struct {
	mu    sync.Mutex
	names []string
}

func (l *callLog) add(name string) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.names = append(l.names, name)
}

func (l *callLog) get() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.names...)
}

// handlerSpy is a Handler which records every event it receives.
type handlerSpy[P any] struct {
	name     string
	log      *callLog
	err      error
	panicVal any
	mu       sync.Mutex
	received []eventdispatcher.Event[P]
}

func newHandlerSpy[P any](name string, log *callLog) *handlerSpy[P] {
	return &handlerSpy[P]{name: name, log: log}
}

func (h *handlerSpy[P]) failingWith(err error) *handlerSpy[P] {
	h.err = err
	return h
}

func (h *handlerSpy[P]) panickingWith(value any) *handlerSpy[P] {
	h.panicVal = value
	return h
}

func (h *handlerSpy[P]) Handle(_ context.Context, event eventdispatcher.Event[P]) error {
	h.mu.Lock()
	h.received = append(h.received, event)
	h.mu.Unlock()

	h.log.add(h.name)

	if h.panicVal != nil {
		panic(h.panicVal)
	}

	return h.err
}

func (h *handlerSpy[P]) calls() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.received)
}

func (h *handlerSpy[P]) events() []eventdispatcher.Event[P] {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]eventdispatcher.Event[P](nil), h.received...)
}

func givenDispatcher(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, options ...eventdispatcher.Option) *eventdispatcher.Dispatcher {
	t.Helper()

	dispatcher, err := eventdispatcher.NewDispatcher(options...)
	if err != nil {
		t.Fatalf("creating dispatcher failed: %v", err)
	}

	return dispatcher
}
