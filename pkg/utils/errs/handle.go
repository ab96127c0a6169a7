package errs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const flushTimeout = 2 * time.Second

// InitSentry enables error reporting. An empty dsn leaves reporting disabled.
func InitSentry(dsn, release string) error {
	if dsn == "" {
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:     dsn,
		Release: release,
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize sentry")
	}
	return nil
}

// Flush waits for buffered events to be sent
func Flush() {
	if sentry.CurrentHub().Client() == nil {
		return
	}
	sentry.Flush(flushTimeout)
}

// Handle logs err with the values attached by goerr and reports it to sentry
// when sentry has been initialized.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	attrs := []any{slog.Any("error", err)}
	var gErr *goerr.Error
	if errors.As(err, &gErr) {
		for k, v := range gErr.Values() {
			attrs = append(attrs, slog.Any(k, v))
		}
	}
	ctxlog.From(ctx).Error(err.Error(), attrs...)

	hub := sentry.CurrentHub()
	if hub.Client() == nil {
		return
	}
	hub.Clone().CaptureException(err)
}
