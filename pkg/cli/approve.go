package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/depherd/pkg/cli/config"
	"github.com/m-mizutani/depherd/pkg/domain/interfaces"
	"github.com/m-mizutani/depherd/pkg/domain/model"
	"github.com/m-mizutani/depherd/pkg/domain/types"
	"github.com/m-mizutani/depherd/pkg/infra/prompt"
	"github.com/m-mizutani/depherd/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// approvalDeps are shared by approve and triage
type approvalDeps struct {
	githubCfg config.GitHub
	policyCfg config.Policy
	slackCfg  config.Slack
	yes       bool
}

func (d *approvalDeps) flags() []cli.Flag {
	var flags []cli.Flag
	flags = append(flags, d.githubCfg.Flags()...)
	flags = append(flags, d.policyCfg.Flags()...)
	flags = append(flags, d.slackCfg.Flags()...)
	flags = append(flags, &cli.BoolFlag{
		Name:        "yes",
		Aliases:     []string{"y"},
		Usage:       "Approve without asking for confirmation",
		Destination: &d.yes,
		Sources:     cli.EnvVars("DEPHERD_YES"),
	})
	return flags
}

func (d *approvalDeps) confirmer() interfaces.Confirmer {
	if d.yes {
		return prompt.NewStatic(true)
	}
	return prompt.NewTerminal(os.Stdin, os.Stdout)
}

// build returns the GitHub client, the approver and the loaded policy
func (d *approvalDeps) build() (interfaces.GitHubClient, *usecase.Approver, model.Policy, error) {
	policy, err := d.policyCfg.Load()
	if err != nil {
		return nil, nil, policy, err
	}

	client, err := d.githubCfg.NewClient()
	if err != nil {
		return nil, nil, policy, err
	}

	approver := usecase.NewApprover(client, d.confirmer(),
		usecase.WithPolicy(policy),
		usecase.WithOutput(os.Stdout),
		usecase.WithNotifier(d.slackCfg.Notifier()),
	)
	return client, approver, policy, nil
}

func cmdApprove() *cli.Command {
	var deps approvalDeps

	return &cli.Command{
		Name:      "approve",
		Aliases:   []string{"a"},
		Usage:     "Approve safe Dependabot pull requests of a repository",
		ArgsUsage: "<owner> <repo>",
		Flags:     deps.flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 2 {
				return goerr.Wrap(types.ErrInvalidArgument, "usage: depherd approve <owner> <repo>",
					goerr.V("args", c.Args().Slice()),
				)
			}
			repo, err := model.ParseRepository(c.Args().Get(0) + "/" + c.Args().Get(1))
			if err != nil {
				return err
			}

			_, approver, _, err := deps.build()
			if err != nil {
				return err
			}

			if _, err := approver.Run(ctx, repo); err != nil {
				return err
			}
			return nil
		},
	}
}
