package eventdispatcher_test

import (
	"testing"

	"go.uber.org/goleak"
)

// Notify runs handlers on the caller's goroutine, so no test may leave goroutines behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
