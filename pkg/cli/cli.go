package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/depherd/pkg/cli/config"
	"github.com/m-mizutani/depherd/pkg/domain/types"
	"github.com/m-mizutani/depherd/pkg/utils/errs"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg config.Logger
		sentryCfg config.Sentry
		logger    *slog.Logger
	)

	app := &cli.Command{
		Name:    "depherd",
		Usage:   "Herd Dependabot pull requests: classify, approve and clean up notifications",
		Version: types.Version,
		Flags:   append(loggerCfg.Flags(), sentryCfg.Flags()...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}
			slog.SetDefault(logger)

			if err := sentryCfg.Configure(types.Version); err != nil {
				return nil, err
			}

			return ctxlog.With(ctx, logger), nil
		},
		Commands: []*cli.Command{
			cmdApprove(),
			cmdTriage(),
			cmdServe(),
			cmdProxy(),
		},
	}

	defer errs.Flush()
	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		errs.Handle(ctxlog.With(ctx, logger), err)
		return err
	}

	return nil
}
