package cli

import (
	"context"
	"os/signal"
)

// notifyContext is a test seam; the returned context ends on an interrupt signal.
var notifyContext = func(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, interruptSignals...)
}
