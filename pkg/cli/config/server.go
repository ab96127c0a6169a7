package config

import "github.com/urfave/cli/v3"

// Server holds server configuration
type Server struct {
	Addr        string
	AutoApprove bool
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("DEPHERD_ADDR"),
		},
		&cli.BoolFlag{
			Name:        "auto-approve",
			Usage:       "Approve eligible pull requests without a human (webhook server only)",
			Destination: &c.AutoApprove,
			Sources:     cli.EnvVars("DEPHERD_AUTO_APPROVE"),
		},
	}
}
