// Package appshell adapts a Run-style entry point to a process: signals in,
// exit code out.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main runs run with a context that is canceled on SIGINT or SIGTERM, then
// exits with its code. A run that was interrupted but still reports success
// exits with interruptCode. After the first signal the default handlers are
// restored, so a second Ctrl-C kills the process outright.
func Main(interruptCode int, run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			stop()
		case <-done:
		}
	}()

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == 0 {
		code = interruptCode
	}
	close(done)
	stop()
	os.Exit(code)
}
