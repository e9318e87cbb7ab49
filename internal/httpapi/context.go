package httpapi

import (
	"context"
)

// serverBaseCtx is canceled on shutdown so in-flight runs stop with the
// process.
var serverBaseCtx = context.Background()

// SetBaseContext sets the process-level base context used by handlers.
func SetBaseContext(ctx context.Context) {
	if ctx == nil {
		serverBaseCtx = context.Background()
		return
	}
	serverBaseCtx = ctx
}

// runContext derives the context for one generation request: canceled when
// the client goes away, when the server shuts down, or after runTimeout.
func runContext(req context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(req)
	stop := context.AfterFunc(serverBaseCtx, cancel)
	if runTimeout > 0 {
		tctx, tcancel := context.WithTimeout(ctx, runTimeout)
		return tctx, func() { tcancel(); stop(); cancel() }
	}
	return ctx, func() { stop(); cancel() }
}
