package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// CatchCtrlC returns a context that is cancelled upon SIGINT or SIGTERM.
func CatchCtrlC(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)
}
