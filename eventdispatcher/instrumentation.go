package eventdispatcher

import (
	"context"
	"fmt"
	"math"
	"time"
)

const (
	spanNameNotify            = "eventdispatcher.notify"
	spanAttrKind              = "kind"
	spanAttrHandlerCount      = "handler_count"
	spanAttrInvokedCount      = "invoked_count"
	spanAttrErrorCount        = "error_count"
	spanAttrDurationMS        = "duration_ms"
	spanAttrErrorType         = "error_type"
	metricNotifyDuration      = "eventdispatcher_notify_duration_seconds"
	metricHandlersInvoked     = "eventdispatcher_handlers_invoked"
	metricHandlerErrors       = "eventdispatcher_handler_errors_total"
	metricLabelKind           = "kind"
	metricLabelHandler        = "handler"
	metricLabelStatus         = "status"
	statusSuccess             = "success"
	statusError               = "error"
	errorTypeHandlerFailed    = "handler_failed"
	nanosecondsPerMillisecond = 1e6
)

// logDebug logs registry changes at debug level if the logger is configured.
func (d *Dispatcher) logDebug(action string, args ...any) {
	if d.logger != nil {
		d.logger.Debug(logMsgOperation+action, args...)
	}
}

// logOperationContext logs operational information at info level to all configured loggers.
func (d *Dispatcher) logOperationContext(ctx context.Context, action string, args ...any) {
	if d.logger != nil {
		d.logger.Info(logMsgOperation+action, args...)
	}

	if d.contextualLogger != nil {
		d.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
	}
}

// logErrorContext logs error information at the error level to all configured loggers.
func (d *Dispatcher) logErrorContext(ctx context.Context, message string, err error, args ...any) {
	if d.logger == nil && d.contextualLogger == nil {
		return
	}

	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if d.logger != nil {
		d.logger.Error(message, allArgs...)
	}

	if d.contextualLogger != nil {
		d.contextualLogger.ErrorContext(ctx, message, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/nanosecondsPerMillisecond*1000) / 1000
}

func formatMilliseconds(d time.Duration) string {
	return fmt.Sprintf("%.2f", float64(d.Nanoseconds())/nanosecondsPerMillisecond)
}

// === Tracing Observer ===

// notifyTracingObserver encapsulates the tracing span lifecycle of one notification.
type notifyTracingObserver struct {
	collector TracingCollector
	span      SpanContext
}

// startNotifyTracing starts a span for a notification if the tracing collector is configured.
func (d *Dispatcher) startNotifyTracing(ctx context.Context, kind Kind, handlerCount int) (*notifyTracingObserver, context.Context) {
	if d.tracingCollector == nil {
		return &notifyTracingObserver{}, ctx
	}

	newCtx, span := d.tracingCollector.StartSpan(ctx, spanNameNotify, map[string]string{
		spanAttrKind:         kind,
		spanAttrHandlerCount: fmt.Sprintf("%d", handlerCount),
	})

	return &notifyTracingObserver{collector: d.tracingCollector, span: span}, newCtx
}

// finishSuccess completes the span of a notification where all handlers succeeded.
func (o *notifyTracingObserver) finishSuccess(invoked int, duration time.Duration) {
	if o.span == nil {
		return
	}

	o.span.SetStatus(statusSuccess)
	o.span.AddAttribute(spanAttrDurationMS, formatMilliseconds(duration))

	o.collector.FinishSpan(o.span, statusSuccess, map[string]string{
		spanAttrInvokedCount: fmt.Sprintf("%d", invoked),
	})
}

// finishError completes the span of a notification where at least one handler failed.
func (o *notifyTracingObserver) finishError(invoked int, failures int, duration time.Duration) {
	if o.span == nil {
		return
	}

	o.span.SetStatus(statusError)
	o.span.AddAttribute(spanAttrErrorType, errorTypeHandlerFailed)
	o.span.AddAttribute(spanAttrDurationMS, formatMilliseconds(duration))

	o.collector.FinishSpan(o.span, statusError, map[string]string{
		spanAttrErrorType:    errorTypeHandlerFailed,
		spanAttrInvokedCount: fmt.Sprintf("%d", invoked),
		spanAttrErrorCount:   fmt.Sprintf("%d", failures),
	})
}

// === Metrics Observer ===

// notifyMetricsObserver encapsulates the metrics collection of one notification.
type notifyMetricsObserver struct {
	collector MetricsCollector
	ctx       context.Context
	kind      Kind
}

// startNotifyMetrics creates a metrics observer for a notification.
func (d *Dispatcher) startNotifyMetrics(ctx context.Context, kind Kind) *notifyMetricsObserver {
	return &notifyMetricsObserver{collector: d.metricsCollector, ctx: ctx, kind: kind}
}

// recordSuccess records all metrics for a notification where all handlers succeeded.
func (o *notifyMetricsObserver) recordSuccess(invoked int, duration time.Duration) {
	o.recordDuration(duration, statusSuccess)
	o.recordValue(metricHandlersInvoked, float64(invoked), statusSuccess)
}

// recordError records all metrics for a notification where at least one handler failed.
func (o *notifyMetricsObserver) recordError(invoked int, duration time.Duration) {
	o.recordDuration(duration, statusError)
	o.recordValue(metricHandlersInvoked, float64(invoked), statusError)
}

// recordHandlerError counts one failing handler invocation.
func (o *notifyMetricsObserver) recordHandlerError(handler string) {
	if o.collector == nil {
		return
	}

	labels := map[string]string{
		metricLabelKind:    o.kind,
		metricLabelHandler: handler,
		metricLabelStatus:  statusError,
	}

	if contextual, ok := o.collector.(ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(o.ctx, metricHandlerErrors, labels)
		return
	}

	o.collector.IncrementCounter(metricHandlerErrors, labels)
}

func (o *notifyMetricsObserver) recordDuration(duration time.Duration, status string) {
	if o.collector == nil {
		return
	}

	labels := map[string]string{metricLabelKind: o.kind, metricLabelStatus: status}

	if contextual, ok := o.collector.(ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(o.ctx, metricNotifyDuration, duration, labels)
		return
	}

	o.collector.RecordDuration(metricNotifyDuration, duration, labels)
}

func (o *notifyMetricsObserver) recordValue(metric string, value float64, status string) {
	if o.collector == nil {
		return
	}

	labels := map[string]string{metricLabelKind: o.kind, metricLabelStatus: status}

	if contextual, ok := o.collector.(ContextualMetricsCollector); ok {
		contextual.RecordValueContext(o.ctx, metric, value, labels)
		return
	}

	o.collector.RecordValue(metric, value, labels)
}
