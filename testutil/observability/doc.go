// Package observability provides test doubles for the observability interfaces of the eventdispatcher package.
//
// It contains spies which capture log records, metrics, and tracing calls so that tests can
// assert on the instrumentation of Dispatcher notifications without any observability backend.
package observability
