package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/depherd/pkg/utils/errs"
	"github.com/m-mizutani/goerr/v2"
)

// Dispatch runs handler on its own goroutine. The handler context keeps the
// logger of ctx but is detached from its cancellation, so a webhook response
// being written does not abort the review. Returned errors and panics are
// passed to errs.Handle.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				errs.Handle(newCtx, goerr.New("panic in async handler",
					goerr.V("recover", r),
					goerr.V("stack", string(debug.Stack())),
				))
			}
		}()

		if err := handler(newCtx); err != nil {
			errs.Handle(newCtx, goerr.Wrap(err, "error in async handler"))
		}
	}()
}

func newBackgroundContext(ctx context.Context) context.Context {
	return ctxlog.With(context.Background(), ctxlog.From(ctx))
}
