package zapadapters

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/eventdispatcher"
)

const (
	fieldTraceID = "trace_id"
	fieldSpanID  = "span_id"
)

// Logger implements eventdispatcher.Logger and eventdispatcher.ContextualLogger on top of zap.
// Arguments are alternating keys and values, the same as for slog.
type Logger struct {
	sugar *zap.SugaredLogger
}

// NewLogger creates a Logger which writes to the given zap.Logger.
func NewLogger(logger *zap.Logger) *Logger {
	return &Logger{sugar: logger.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

// NewDevelopmentLogger creates a Logger with zap's development configuration at the given level.
func NewDevelopmentLogger(level slog.Level) (*Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(ToZapLevel(level))

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return NewLogger(logger), nil
}

// NewProductionLogger creates a Logger with zap's JSON production configuration at the given level.
func NewProductionLogger(level slog.Level) (*Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(ToZapLevel(level))
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return NewLogger(logger), nil
}

// ToZapLevel maps a slog level to the closest zap level.
func ToZapLevel(level slog.Level) zapcore.Level {
	switch {
	case level < slog.LevelInfo:
		return zapcore.DebugLevel
	case level < slog.LevelWarn:
		return zapcore.InfoLevel
	case level < slog.LevelError:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// Debug implements eventdispatcher.Logger.
func (l *Logger) Debug(msg string, args ...any) {
	l.sugar.Debugw(msg, args...)
}

// Info implements eventdispatcher.Logger.
func (l *Logger) Info(msg string, args ...any) {
	l.sugar.Infow(msg, args...)
}

// Warn implements eventdispatcher.Logger.
func (l *Logger) Warn(msg string, args ...any) {
	l.sugar.Warnw(msg, args...)
}

// Error implements eventdispatcher.Logger.
func (l *Logger) Error(msg string, args ...any) {
	l.sugar.Errorw(msg, args...)
}

// DebugContext implements eventdispatcher.ContextualLogger.
func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.sugar.Debugw(msg, withTraceFields(ctx, args)...)
}

// InfoContext implements eventdispatcher.ContextualLogger.
func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.sugar.Infow(msg, withTraceFields(ctx, args)...)
}

// WarnContext implements eventdispatcher.ContextualLogger.
func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.sugar.Warnw(msg, withTraceFields(ctx, args)...)
}

// ErrorContext implements eventdispatcher.ContextualLogger.
func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.sugar.Errorw(msg, withTraceFields(ctx, args)...)
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

func withTraceFields(ctx context.Context, args []any) []any {
	spanContext := trace.SpanContextFromContext(ctx)
	if !spanContext.IsValid() {
		return args
	}

	withTrace := make([]any, 0, len(args)+4)
	withTrace = append(withTrace, args...)

	return append(withTrace,
		fieldTraceID, spanContext.TraceID().String(),
		fieldSpanID, spanContext.SpanID().String())
}

var (
	_ eventdispatcher.Logger           = (*Logger)(nil)
	_ eventdispatcher.ContextualLogger = (*Logger)(nil)
)
