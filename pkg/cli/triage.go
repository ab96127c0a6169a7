package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/depherd/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdTriage() *cli.Command {
	var deps approvalDeps

	return &cli.Command{
		Name:    "triage",
		Aliases: []string{"t"},
		Usage:   "Clear notifications of closed pull requests and run approve for repositories with open Dependabot PRs",
		Flags:   deps.flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			client, approver, policy, err := deps.build()
			if err != nil {
				return err
			}

			triage := usecase.NewTriage(client, approver, policy, os.Stdout)
			if _, err := triage.Run(ctx); err != nil {
				return err
			}
			return nil
		},
	}
}
