package config

import (
	"github.com/m-mizutani/depherd/pkg/domain/interfaces"
	"github.com/m-mizutani/depherd/pkg/infra/slack"
	"github.com/m-mizutani/depherd/pkg/utils/errs"
	"github.com/urfave/cli/v3"
)

// Slack holds the incoming webhook for approval summaries
type Slack struct {
	WebhookURL string
}

func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL for approval summaries",
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("DEPHERD_SLACK_WEBHOOK_URL"),
		},
	}
}

// Notifier returns nil when no webhook URL is configured
func (c *Slack) Notifier() interfaces.Notifier {
	if c.WebhookURL == "" {
		return nil
	}
	return slack.New(c.WebhookURL)
}

// Sentry holds error reporting configuration
type Sentry struct {
	DSN string
}

func (c *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN; errors are reported when set",
			Destination: &c.DSN,
			Sources:     cli.EnvVars("DEPHERD_SENTRY_DSN"),
		},
	}
}

// Configure initializes sentry for errs.Handle
func (c *Sentry) Configure(release string) error {
	return errs.InitSentry(c.DSN, release)
}
