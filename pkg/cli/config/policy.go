package config

import (
	"bytes"
	"os"

	"github.com/m-mizutani/depherd/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Policy holds the path of the optional policy file
type Policy struct {
	Path string
}

// Flags returns CLI flags for the policy file
func (c *Policy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "policy",
			Usage:       "TOML file with author, deny_packages and deny_orgs",
			Destination: &c.Path,
			Sources:     cli.EnvVars("DEPHERD_POLICY"),
		},
	}
}

// Load reads the policy file. Without a path the default policy is returned.
// Keys missing from the file keep their default values.
func (c *Policy) Load() (model.Policy, error) {
	policy := model.DefaultPolicy()
	if c.Path == "" {
		return policy, nil
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		return policy, goerr.Wrap(err, "failed to read policy file", goerr.V("path", c.Path))
	}

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&policy); err != nil {
		return policy, goerr.Wrap(err, "failed to parse policy file", goerr.V("path", c.Path))
	}
	if policy.Author == "" {
		policy.Author = model.DefaultAuthor
	}

	return policy, nil
}
