package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/depherd/pkg/cli/config"
	"github.com/m-mizutani/depherd/pkg/infra/lmstudio"
	"github.com/m-mizutani/depherd/pkg/infra/tool"
	"github.com/m-mizutani/depherd/pkg/usecase"
	"github.com/urfave/cli/v3"

	controller "github.com/m-mizutani/depherd/pkg/controller/http"
)

func cmdProxy() *cli.Command {
	var proxyCfg config.Proxy

	return &cli.Command{
		Name:    "proxy",
		Aliases: []string{"p"},
		Usage:   "Relay OpenAI-compatible chat requests to a local model server and run its tool calls",
		Flags:   proxyCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			schemas, err := tool.LoadSchemas(proxyCfg.ToolsDir)
			if err != nil {
				return err
			}
			note := tool.NewNote(proxyCfg.NotesDir)
			schemas = tool.WithBuiltin(schemas, note.Schema())

			toolProxy := usecase.NewToolProxy(lmstudio.New(proxyCfg.Upstream), schemas, note)

			logger.Info("Starting tool proxy",
				slog.String("addr", proxyCfg.Addr),
				slog.String("upstream", proxyCfg.Upstream),
				slog.Int("tools", len(schemas)),
			)

			server := controller.NewServer(ctx,
				controller.WithAddr(proxyCfg.Addr),
				controller.WithProxy(toolProxy),
			)
			return runServer(ctx, server)
		},
	}
}
