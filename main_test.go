package fluentfsm

import (
	"testing"

	"go.uber.org/goleak"
)

// Dispatch is fully synchronous; no test may leave a goroutine behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
