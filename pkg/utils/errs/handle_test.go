package errs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/depherd/pkg/utils/errs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestHandle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := ctxlog.With(context.Background(), logger)

	t.Run("logs goerr values", func(t *testing.T) {
		buf.Reset()
		err := goerr.Wrap(errors.New("connection reset"), "failed to list pull requests", goerr.V("repo", "octo/hello"))
		errs.Handle(ctx, err)

		out := buf.String()
		gt.String(t, out).Contains("failed to list pull requests")
		gt.String(t, out).Contains("repo=octo/hello")
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		buf.Reset()
		errs.Handle(ctx, nil)
		gt.Number(t, buf.Len()).Equal(0)
	})
}

func TestInitSentry_EmptyDSN(t *testing.T) {
	gt.NoError(t, errs.InitSentry("", "dev"))
	errs.Flush()
}
