package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/depherd/pkg/cli/config"
	"github.com/m-mizutani/depherd/pkg/domain/interfaces"
	"github.com/m-mizutani/depherd/pkg/infra/prompt"
	"github.com/m-mizutani/depherd/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	controller "github.com/m-mizutani/depherd/pkg/controller/http"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		appCfg    config.GitHubApp
		policyCfg config.Policy
	)

	var flags []cli.Flag
	flags = append(flags, serverCfg.Flags()...)
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, policyCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start GitHub App webhook server reviewing Dependabot pull requests",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			policy, err := policyCfg.Load()
			if err != nil {
				return err
			}

			var reviewer interfaces.PullRequestReviewer
			if appCfg.Enabled() {
				client, err := appCfg.NewClient()
				if err != nil {
					return err
				}
				reviewer = usecase.NewDependabotReviewer(client, prompt.NewStatic(serverCfg.AutoApprove), policy)
			} else {
				logger.Warn("GitHub App credentials not configured, events are only logged")
			}

			logger.Info("Starting depherd server",
				slog.String("addr", serverCfg.Addr),
				slog.Bool("auto_approve", serverCfg.AutoApprove),
				slog.String("author", policy.Author),
			)

			server := controller.NewServer(ctx,
				controller.WithAddr(serverCfg.Addr),
				controller.WithWebhook(appCfg.WebhookSecret, usecase.NewWebhook(reviewer, policy)),
			)
			return runServer(ctx, server)
		},
	}
}

// runServer serves until ctx is cancelled or SIGINT/SIGTERM arrives, then
// shuts down gracefully.
func runServer(ctx context.Context, server *controller.Server) error {
	logger := ctxlog.From(ctx)
	errCh := make(chan error, 1)

	go func() {
		logger.Info("HTTP server starting", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		logger.Info("Context cancelled, shutting down...")
	case sig := <-sigChan:
		logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
	case err := <-errCh:
		return goerr.Wrap(err, "HTTP server failed", goerr.V("addr", server.Addr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return goerr.Wrap(err, "failed to shutdown server gracefully")
	}

	logger.Info("Server shutdown complete")
	return nil
}
