// Package eventdispatcher provides an in-process registry and dispatcher for domain events.
//
// Producers publish typed occurrences (events) without knowing which listeners exist, and
// independently registered handlers react to specific event kinds. The dispatcher is an explicitly
// owned instance; there is no package-level default.
//
// Key types:
//   - Event: an immutable value carrying the time it occurred and an opaque payload
//   - Handler: the single-method capability invoked for every matching notification
//   - Dispatcher: the registry mapping an event kind to an ordered list of handlers
//
// Routing is done by kind identifier only. The kind of an event is derived from its payload
// (see KindOf) or chosen explicitly by the producer with NotifyAs.
//
// Common usage pattern:
//
//	dispatcher, err := eventdispatcher.NewDispatcher(
//		eventdispatcher.WithLogger(slog.Default()),
//	)
//	if err != nil {
//		// handle error
//	}
//
//	eventdispatcher.Register(dispatcher, core.ProductCreatedEventKind, sendEmailHandler)
//
//	event := eventdispatcher.BuildEvent(core.BuildProductCreated(product))
//	if err := eventdispatcher.Notify(ctx, dispatcher, event); err != nil {
//		// a handler failed, see ErrHandlerFailed
//	}
//
// Handlers are invoked synchronously, on the caller's goroutine, in registration order.
// By default, the first failing handler aborts the remaining chain and its error is returned
// to the caller of Notify. WithHandlerFailurePolicy(ContinueOnHandlerError) runs every handler
// and returns all failures joined.
package eventdispatcher
