package shell

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/eventdispatcher"
)

// Metric names recorded per command run.
const (
	CommandHandlerDurationMetric     = "checkout_command_duration_seconds"
	CommandHandlerCallsMetric        = "checkout_command_runs_total"
	CommandHandlerIdempotentMetric   = "checkout_command_idempotent_total"
	CommandHandlerCanceledMetric     = "checkout_command_canceled_total"
	CommandHandlerTimeoutMetric      = "checkout_command_timeout_total"
	CommandHandlerNotifyFailedMetric = "checkout_command_notify_failed_total"
)

// Statuses of a command run, shared by metric labels, span outcomes and logs.
const (
	StatusSuccess      = "success"
	StatusError        = "error"
	StatusIdempotent   = "idempotent"
	StatusCanceled     = "canceled"
	StatusTimeout      = "timeout"
	StatusNotifyFailed = "notify_failed" // the state changed, but an event handler failed
)

const (
	LogMsgCommandStarted   = "command started"
	LogMsgCommandCompleted = "command completed"
	LogMsgCommandFailed    = "command failed"

	SpanNameCommandHandle = "checkout.command"
)

const (
	attrCommandType     = "command_type"
	attrStatus          = "status"
	attrDurationMS      = "duration_ms"
	attrBusinessOutcome = "business_outcome"
	attrEventKind       = "event_kind"
	attrError           = "error"
)

// statusCounters holds the extra counter incremented for a status, on top of the run counter.
var statusCounters = map[string]string{
	StatusIdempotent:   CommandHandlerIdempotentMetric,
	StatusCanceled:     CommandHandlerCanceledMetric,
	StatusTimeout:      CommandHandlerTimeoutMetric,
	StatusNotifyFailed: CommandHandlerNotifyFailedMetric,
}

// Observers are the optional sinks a command run reports to. Nil fields are skipped.
// A ContextualLogger takes precedence over a plain Logger.
type Observers struct {
	Metrics          eventdispatcher.MetricsCollector
	Tracing          eventdispatcher.TracingCollector
	ContextualLogger eventdispatcher.ContextualLogger
	Logger           eventdispatcher.Logger
}

// CommandRun is a single observed execution of a command.
type CommandRun struct {
	observers   Observers
	commandType string
	ctx         context.Context
	span        eventdispatcher.SpanContext
	startedAt   time.Time
}

// StartCommand opens a span, logs the start and returns the context the command should run with.
func (o Observers) StartCommand(ctx context.Context, commandType string) (context.Context, *CommandRun) {
	run := &CommandRun{observers: o, commandType: commandType, startedAt: time.Now()}

	if o.Tracing != nil {
		ctx, run.span = o.Tracing.StartSpan(ctx, SpanNameCommandHandle, map[string]string{
			attrCommandType: commandType,
		})
	}

	run.ctx = ctx
	run.info(LogMsgCommandStarted, attrCommandType, commandType)

	return ctx, run
}

// Succeeded reports a run that returned without error.
func (r *CommandRun) Succeeded(result HandlerResult) {
	duration := time.Since(r.startedAt)
	outcome := BusinessOutcome(result)

	r.record(outcome, duration)
	r.finishSpan(outcome, duration, nil)

	args := []any{
		attrCommandType, r.commandType,
		attrBusinessOutcome, outcome,
		attrDurationMS, milliseconds(duration),
	}
	if result.NotifiedKind != "" {
		args = append(args, attrEventKind, result.NotifiedKind)
	}

	r.info(LogMsgCommandCompleted, args...)
}

// Failed reports a run that returned err.
func (r *CommandRun) Failed(err error) {
	duration := time.Since(r.startedAt)
	status := ClassifyError(err)

	r.record(status, duration)
	r.finishSpan(status, duration, err)

	args := []any{attrCommandType, r.commandType, attrStatus, status, attrError, err.Error()}

	switch {
	case r.observers.ContextualLogger != nil:
		r.observers.ContextualLogger.ErrorContext(r.ctx, LogMsgCommandFailed, args...)
	case r.observers.Logger != nil:
		r.observers.Logger.Error(LogMsgCommandFailed, args...)
	}
}

func (r *CommandRun) info(msg string, args ...any) {
	switch {
	case r.observers.ContextualLogger != nil:
		r.observers.ContextualLogger.InfoContext(r.ctx, msg, args...)
	case r.observers.Logger != nil:
		r.observers.Logger.Info(msg, args...)
	}
}

func (r *CommandRun) record(status string, duration time.Duration) {
	collector := r.observers.Metrics
	if collector == nil {
		return
	}

	labels := map[string]string{attrCommandType: r.commandType, attrStatus: status}
	counters := []string{CommandHandlerCallsMetric}
	if extra, ok := statusCounters[status]; ok {
		counters = append(counters, extra)
	}

	if contextual, ok := collector.(eventdispatcher.ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(r.ctx, CommandHandlerDurationMetric, duration, labels)
		for _, counter := range counters {
			contextual.IncrementCounterContext(r.ctx, counter, labels)
		}

		return
	}

	collector.RecordDuration(CommandHandlerDurationMetric, duration, labels)
	for _, counter := range counters {
		collector.IncrementCounter(counter, labels)
	}
}

func (r *CommandRun) finishSpan(status string, duration time.Duration, err error) {
	if r.observers.Tracing == nil || r.span == nil {
		return
	}

	attrs := map[string]string{
		attrStatus:     status,
		attrDurationMS: strconv.FormatFloat(milliseconds(duration), 'f', 2, 64),
	}
	if err != nil {
		attrs[attrError] = err.Error()
	}

	r.observers.Tracing.FinishSpan(r.span, status, attrs)
}

// ClassifyError maps a command error to its status.
func ClassifyError(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return StatusCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return StatusTimeout
	case errors.Is(err, eventdispatcher.ErrHandlerFailed):
		return StatusNotifyFailed
	default:
		return StatusError
	}
}

// BusinessOutcome returns the status of a successful run.
func BusinessOutcome(result HandlerResult) string {
	if result.Idempotent {
		return StatusIdempotent
	}

	return StatusSuccess
}

func milliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
