package config

import (
	"os"

	"github.com/m-mizutani/depherd/pkg/domain/interfaces"
	"github.com/m-mizutani/depherd/pkg/domain/types"
	"github.com/m-mizutani/depherd/pkg/infra/ghcli"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	githubinfra "github.com/m-mizutani/depherd/pkg/infra/github"
)

const (
	BackendAPI = "api"
	BackendGH  = "gh"
)

// GitHub holds GitHub access configuration
type GitHub struct {
	Token   string
	Backend string
	BaseURL string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token (api backend)",
			Destination: &c.Token,
			Sources:     cli.EnvVars("DEPHERD_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "backend",
			Usage:       "How to talk to GitHub: api (REST with token) or gh (gh CLI)",
			Value:       BackendAPI,
			Destination: &c.Backend,
			Sources:     cli.EnvVars("DEPHERD_BACKEND"),
			Validator: func(s string) error {
				if s != BackendAPI && s != BackendGH {
					return goerr.Wrap(types.ErrInvalidArgument, "backend must be api or gh", goerr.V("backend", s))
				}
				return nil
			},
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API base URL, for GitHub Enterprise",
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("DEPHERD_GITHUB_API_URL"),
		},
	}
}

// NewClient builds the client of the selected backend
func (c *GitHub) NewClient() (interfaces.GitHubClient, error) {
	switch c.Backend {
	case BackendGH:
		return ghcli.New(), nil
	case BackendAPI, "":
		var opts []githubinfra.Option
		if c.BaseURL != "" {
			opts = append(opts, githubinfra.WithBaseURL(c.BaseURL))
		}
		return githubinfra.NewClient(c.Token, opts...)
	default:
		return nil, goerr.Wrap(types.ErrInvalidArgument, "unknown backend", goerr.V("backend", c.Backend))
	}
}

// GitHubApp holds GitHub App configuration for the webhook server
type GitHubApp struct {
	AppID          int64
	InstallationID int64
	PrivateKey     string
	PrivateKeyFile string
	WebhookSecret  string
}

// Flags returns CLI flags for GitHub App configuration
func (c *GitHubApp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Destination: &c.AppID,
			Sources:     cli.EnvVars("DEPHERD_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID",
			Destination: &c.InstallationID,
			Sources:     cli.EnvVars("DEPHERD_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM content)",
			Destination: &c.PrivateKey,
			Sources:     cli.EnvVars("DEPHERD_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key-file",
			Usage:       "Path to the GitHub App private key",
			Destination: &c.PrivateKeyFile,
			Sources:     cli.EnvVars("DEPHERD_GITHUB_APP_PRIVATE_KEY_FILE"),
		},
		&cli.StringFlag{
			Name:        "github-webhook-secret",
			Usage:       "GitHub webhook secret",
			Required:    true,
			Destination: &c.WebhookSecret,
			Sources:     cli.EnvVars("DEPHERD_GITHUB_WEBHOOK_SECRET"),
		},
	}
}

// Enabled reports whether App credentials were given. Without them the
// server only logs events.
func (c *GitHubApp) Enabled() bool {
	return c.AppID != 0 && c.InstallationID != 0 && (c.PrivateKey != "" || c.PrivateKeyFile != "")
}

// NewClient creates a client authenticated as the App installation
func (c *GitHubApp) NewClient() (*githubinfra.Client, error) {
	key := []byte(c.PrivateKey)
	if len(key) == 0 && c.PrivateKeyFile != "" {
		data, err := os.ReadFile(c.PrivateKeyFile)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read GitHub App private key", goerr.V("path", c.PrivateKeyFile))
		}
		key = data
	}
	if len(key) == 0 {
		return nil, goerr.Wrap(types.ErrInvalidArgument, "GitHub App private key is required")
	}

	return githubinfra.NewAppClient(c.AppID, c.InstallationID, key)
}
