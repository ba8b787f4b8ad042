package observable_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/eventdispatcher"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell/observable"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/testutil/observability"
)

type mockCommand struct {
	ID string
}

func (mockCommand) CommandType() string {
	return "TestCommand"
}

type mockHandler struct {
	mu     sync.Mutex
	result shell.HandlerResult
	err    error
	calls  []mockCommand
}

func newMockHandler(result shell.HandlerResult, err error) *mockHandler {
	return &mockHandler{result: result, err: err}
}

func (h *mockHandler) Handle(_ context.Context, command mockCommand) (shell.HandlerResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.calls = append(h.calls, command)

	return h.result, h.err
}

func (h *mockHandler) getCalls() []mockCommand {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]mockCommand(nil), h.calls...)
}

func labels(status string) map[string]string {
	return map[string]string{"command_type": "TestCommand", "status": status}
}

func Test_CommandWrapper_Handle_Success(t *testing.T) {
	// arrange
	expectedResult := shell.NewSuccessResult("SomethingHappened")
	handler := newMockHandler(expectedResult, nil)
	metricsCollector := observability.NewMetricsCollectorSpy(true)
	tracingCollector := observability.NewTracingCollectorSpy(true)
	logHandler := observability.NewLogHandlerSpy(false)

	wrapper, err := observable.NewCommandWrapper[mockCommand](
		handler,
		observable.WithCommandMetrics[mockCommand](metricsCollector),
		observable.WithCommandTracing[mockCommand](tracingCollector),
		observable.WithCommandContextualLogging[mockCommand](slog.New(logHandler)),
	)
	require.NoError(t, err)

	command := mockCommand{ID: "cmd-1"}

	// act
	result, err := wrapper.Handle(context.Background(), command)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, expectedResult, result)
	assert.Equal(t, []mockCommand{command}, handler.getCalls())

	assert.True(t, metricsCollector.HasDurationRecordWithLabels(shell.CommandHandlerDurationMetric, labels("success")))
	assert.Equal(t, 1, metricsCollector.CountCounterRecords(shell.CommandHandlerCallsMetric, labels("success")))
	assert.Equal(t, 0, metricsCollector.CountCounterRecords(shell.CommandHandlerIdempotentMetric, nil))

	assert.True(t, tracingCollector.HasSpanRecordForName(shell.SpanNameCommandHandle).
		WithStatus("success").
		WithStartAttribute("command_type", "TestCommand").
		Assert())

	assert.True(t, logHandler.HasInfoLogWithMessage(shell.LogMsgCommandStarted).
		WithAttribute("command_type", "TestCommand").
		Assert())
	assert.True(t, logHandler.HasInfoLogWithMessage(shell.LogMsgCommandCompleted).
		WithAttribute("business_outcome", "success").
		WithAttribute("event_kind", "SomethingHappened").
		WithDurationMS().
		Assert())
}

func Test_CommandWrapper_Handle_Idempotent(t *testing.T) {
	// arrange
	handler := newMockHandler(shell.NewIdempotentResult(), nil)
	metricsCollector := observability.NewMetricsCollectorSpy(true)
	logHandler := observability.NewLogHandlerSpy(false)

	wrapper, err := observable.NewCommandWrapper[mockCommand](
		handler,
		observable.WithCommandMetrics[mockCommand](metricsCollector),
		observable.WithCommandLogging[mockCommand](slog.New(logHandler)),
	)
	require.NoError(t, err)

	// act
	result, err := wrapper.Handle(context.Background(), mockCommand{})

	// assert
	assert.NoError(t, err)
	assert.True(t, result.Idempotent)
	assert.Equal(t, 1, metricsCollector.CountCounterRecords(shell.CommandHandlerIdempotentMetric, labels("idempotent")))
	assert.True(t, logHandler.HasInfoLogWithMessage(shell.LogMsgCommandCompleted).
		WithAttribute("business_outcome", "idempotent").
		Assert())
}

func Test_CommandWrapper_Handle_ClassifiesErrors(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		expectedStatus string
		statusMetric   string
	}{
		{
			name:           "plain error",
			err:            errors.New("customer not found"),
			expectedStatus: shell.StatusError,
		},
		{
			name:           "canceled",
			err:            fmt.Errorf("loading customer: %w", context.Canceled),
			expectedStatus: shell.StatusCanceled,
			statusMetric:   shell.CommandHandlerCanceledMetric,
		},
		{
			name:           "timeout",
			err:            context.DeadlineExceeded,
			expectedStatus: shell.StatusTimeout,
			statusMetric:   shell.CommandHandlerTimeoutMetric,
		},
		{
			name:           "event handler failed",
			err:            errors.Join(eventdispatcher.ErrHandlerFailed, errors.New("smtp down")),
			expectedStatus: shell.StatusNotifyFailed,
			statusMetric:   shell.CommandHandlerNotifyFailedMetric,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			handler := newMockHandler(shell.HandlerResult{}, tc.err)
			metricsCollector := observability.NewMetricsCollectorSpy(true)
			tracingCollector := observability.NewTracingCollectorSpy(true)
			logHandler := observability.NewLogHandlerSpy(false)

			wrapper, err := observable.NewCommandWrapper[mockCommand](
				handler,
				observable.WithCommandMetrics[mockCommand](metricsCollector),
				observable.WithCommandTracing[mockCommand](tracingCollector),
				observable.WithCommandLogging[mockCommand](slog.New(logHandler)),
			)
			require.NoError(t, err)

			// act
			_, err = wrapper.Handle(context.Background(), mockCommand{})

			// assert
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, 1, metricsCollector.CountCounterRecords(shell.CommandHandlerCallsMetric, labels(tc.expectedStatus)))

			if tc.statusMetric != "" {
				assert.Equal(t, 1, metricsCollector.CountCounterRecords(tc.statusMetric, labels(tc.expectedStatus)))
			}

			assert.True(t, tracingCollector.HasSpanRecordForName(shell.SpanNameCommandHandle).
				WithStatus(tc.expectedStatus).
				WithEndAttribute("error", tc.err.Error()).
				Assert())

			assert.True(t, logHandler.HasErrorLogWithMessage(shell.LogMsgCommandFailed).
				WithAttribute("status", tc.expectedStatus).
				WithAttributeKey("error").
				Assert())
		})
	}
}

func Test_CommandWrapper_Handle_WithoutObservability(t *testing.T) {
	// arrange
	handler := newMockHandler(shell.NewSuccessResult("SomethingHappened"), nil)
	wrapper, err := observable.NewCommandWrapper[mockCommand](handler)
	require.NoError(t, err)

	// act
	_, err = wrapper.Handle(context.Background(), mockCommand{})

	// assert
	assert.NoError(t, err)
	assert.Len(t, handler.getCalls(), 1)
}

func Test_CommandWrapper_RejectsNilCollectors(t *testing.T) {
	handler := newMockHandler(shell.HandlerResult{}, nil)

	testCases := []struct {
		name   string
		option observable.CommandOption[mockCommand]
	}{
		{"metrics", observable.WithCommandMetrics[mockCommand](nil)},
		{"tracing", observable.WithCommandTracing[mockCommand](nil)},
		{"contextual logging", observable.WithCommandContextualLogging[mockCommand](nil)},
		{"logging", observable.WithCommandLogging[mockCommand](nil)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapper, err := observable.NewCommandWrapper[mockCommand](handler, tc.option)

			assert.ErrorIs(t, err, observable.ErrNilCollector)
			assert.Nil(t, wrapper)
		})
	}
}
