package eventdispatcher_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/eventdispatcher"
)

func noopHandler() eventdispatcher.Handler[productCreated] {
	return eventdispatcher.HandlerFunc(func(_ context.Context, _ eventdispatcher.Event[productCreated]) error {
		return nil
	})
}

func Benchmark_Notify(b *testing.B) {
	for _, handlerCount := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("handlers=%d", handlerCount), func(b *testing.B) {
			dispatcher := givenDispatcher(b)
			for i := 0; i < handlerCount; i++ {
				eventdispatcher.Register(dispatcher, productCreatedKind, noopHandler())
			}

			event := eventdispatcher.BuildEvent(productCreated{ProductID: "p-1"})
			ctx := context.Background()

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if err := eventdispatcher.Notify(ctx, dispatcher, event); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func Benchmark_Notify_Parallel(b *testing.B) {
	dispatcher := givenDispatcher(b)
	for i := 0; i < 10; i++ {
		eventdispatcher.Register(dispatcher, productCreatedKind, noopHandler())
	}

	event := eventdispatcher.BuildEvent(productCreated{ProductID: "p-1"})

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		ctx := context.Background()
		for pb.Next() {
			_ = eventdispatcher.Notify(ctx, dispatcher, event)
		}
	})
}

func Benchmark_RegisterUnregister(b *testing.B) {
	dispatcher := givenDispatcher(b)
	handler := noopHandler()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		eventdispatcher.Register(dispatcher, productCreatedKind, handler)
		eventdispatcher.Unregister(dispatcher, productCreatedKind, handler)
	}
}
