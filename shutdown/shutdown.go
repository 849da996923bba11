// Package shutdown ties a context to the process termination signals.
package shutdown

import (
	"context"
	"os/signal"
)

// Context returns a copy of parent that is canceled when the process
// receives an interrupt. Calling stop restores default signal handling.
func Context(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	return signal.NotifyContext(parent, signals...)
}
