package httpapi

import (
	"context"
	"errors"
)

// errShutdown is the cancel cause attached to generation contexts when the
// process is stopping, so backends can tell shutdown from client disconnect.
var errShutdown = errors.New("server shutting down")

// baseCtx is the process-level context; main cancels it during shutdown so
// in-flight generations stop instead of holding the model lock.
var baseCtx = context.Background()

// SetBaseContext installs the process-level context generation contexts
// derive from. Passing nil resets to Background.
func SetBaseContext(ctx context.Context) {
	if ctx == nil {
		baseCtx = context.Background()
		return
	}
	baseCtx = ctx
}

// generationContext derives the context a generation call runs under: it is
// canceled when the client goes away or the server shuts down, whichever
// comes first, with the cause recording which. The returned stop func must be
// called when the handler ends; it also releases the watcher goroutine.
func generationContext(req context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(context.Background())
	go func() {
		select {
		case <-req.Done():
			cancel(context.Cause(req))
		case <-baseCtx.Done():
			cancel(errShutdown)
		case <-ctx.Done():
		}
	}()
	return ctx, func() { cancel(nil) }
}
