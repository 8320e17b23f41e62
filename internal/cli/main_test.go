package cli

import (
	"testing"

	"go.uber.org/goleak"
)

// The chat loop runs in its own goroutine; every test must leave it stopped.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreAnyFunction("os/signal.loop"),
	)
}
