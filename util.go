package lescan

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/net/context"
)

// WithSigHandler returns ctx after arming a handler that calls cancel on
// SIGINT or SIGTERM. Wrap a context.WithCancel or WithTimeout pair to make
// a scan run interruptible from the terminal.
func WithSigHandler(ctx context.Context, cancel func()) context.Context {
	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx
}
