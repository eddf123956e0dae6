package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds a single test when the caller passes zero.
const DefaultTimeout = 5 * time.Second

// Context returns a context cancelled when the test ends, when timeout
// elapses, or shortly before the test binary's own deadline.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if deadline, ok := t.Deadline(); ok {
		if remaining := time.Until(deadline) - time.Second; remaining > 0 {
			timeout = min(timeout, remaining)
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}
