package config

import (
	"github.com/m-mizutani/depherd/pkg/infra/lmstudio"
	"github.com/urfave/cli/v3"
)

// Proxy holds the tool-calling proxy configuration
type Proxy struct {
	Addr     string
	Upstream string
	ToolsDir string
	NotesDir string
}

// Flags returns CLI flags for proxy configuration
func (c *Proxy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Proxy listen address",
			Value:       "localhost:1230",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("DEPHERD_PROXY_ADDR"),
		},
		&cli.StringFlag{
			Name:        "upstream",
			Usage:       "OpenAI-compatible API base URL",
			Value:       lmstudio.DefaultBaseURL,
			Destination: &c.Upstream,
			Sources:     cli.EnvVars("DEPHERD_UPSTREAM"),
		},
		&cli.StringFlag{
			Name:        "tools-dir",
			Usage:       "Directory of tool schema JSON files",
			Value:       "tools",
			Destination: &c.ToolsDir,
			Sources:     cli.EnvVars("DEPHERD_TOOLS_DIR"),
		},
		&cli.StringFlag{
			Name:        "notes-dir",
			Usage:       "Directory create_note writes to",
			Value:       "notes",
			Destination: &c.NotesDir,
			Sources:     cli.EnvVars("DEPHERD_NOTES_DIR"),
		},
	}
}
