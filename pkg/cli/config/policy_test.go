package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/depherd/pkg/cli/config"
	"github.com/m-mizutani/depherd/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func writePolicy(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestPolicy_Load(t *testing.T) {
	t.Run("no file gives default", func(t *testing.T) {
		policy, err := (&config.Policy{}).Load()
		gt.NoError(t, err)
		gt.Value(t, policy.Author).Equal(model.DefaultAuthor)
		gt.Number(t, len(policy.DenyPackages)).Equal(0)
	})

	t.Run("deny lists", func(t *testing.T) {
		path := writePolicy(t, `
deny_packages = ["left-pad", "@types/node"]
deny_orgs = ["@aws-sdk"]
`)
		policy, err := (&config.Policy{Path: path}).Load()
		gt.NoError(t, err)
		gt.Value(t, policy.Author).Equal(model.DefaultAuthor)
		gt.Value(t, policy.DenyPackages).Equal([]string{"left-pad", "@types/node"})
		gt.True(t, policy.IsDenied("@aws-sdk/client-s3"))
	})

	t.Run("custom author", func(t *testing.T) {
		policy, err := (&config.Policy{Path: writePolicy(t, `author = "renovate[bot]"`)}).Load()
		gt.NoError(t, err)
		gt.True(t, policy.IsAuthor("app/renovate"))
	})

	t.Run("unknown key is an error", func(t *testing.T) {
		_, err := (&config.Policy{Path: writePolicy(t, `allow_major = true`)}).Load()
		gt.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := (&config.Policy{Path: filepath.Join(t.TempDir(), "none.toml")}).Load()
		gt.Error(t, err)
	})
}
