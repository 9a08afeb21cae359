package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yllada/region-switcher/common"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	root := NewRootCmd(BuildInfo{Version: "1.2.3-test", BuildTime: "unknown"})
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	root := NewRootCmd(BuildInfo{Version: "dev"})

	assert.Equal(t, "region-switcher", root.Use)
	assert.NotEmpty(t, root.Short)
	assert.NotEmpty(t, root.Long)
	assert.True(t, root.SilenceUsage)
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("verbose"))
}

func TestSubcommands(t *testing.T) {
	root := NewRootCmd(BuildInfo{Version: "dev"})

	found := make(map[string]bool)
	for _, cmd := range root.Commands() {
		found[cmd.Name()] = true
	}
	for _, want := range []string{"regions", "lookup", "connect", "config", "version"} {
		assert.True(t, found[want], "missing subcommand %s", want)
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "region-switcher version 1.2.3-test\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, common.AppVersion)
	assert.Contains(t, out, "1.2.3-test")
	assert.NotContains(t, out, "Commit")
}

func TestRegionsCommand(t *testing.T) {
	out, err := execute(t, "regions", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "access_code: BY-MSK-5729")
}

func TestLookupCommand(t *testing.T) {
	out, err := execute(t, "lookup", "US-NYC-9417")
	require.NoError(t, err)
	assert.Contains(t, out, "США")

	_, err = execute(t, "lookup", "nope")
	assert.ErrorIs(t, err, common.ErrAccessCodeNotFound)

	_, err = execute(t, "lookup")
	assert.Error(t, err, "lookup requires an argument")
}

func TestConnectCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	_, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)

	out, err := execute(t, "connect", "BY-MSK-5729", "--config", path, "--timeout", "5s")
	require.NoError(t, err)
	assert.Contains(t, out, "Регион изменен на Беларусь 🇧🇾")
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.True(t, common.FileExists(path))

	_, err = execute(t, "config", "init", "--config", path)
	assert.Error(t, err, "init refuses to overwrite")

	_, err = execute(t, "config", "init", "--config", path, "--force")
	assert.NoError(t, err)

	out, err = execute(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "auto_region: true")
	assert.Contains(t, out, "change_delay: 1s")
}

func TestRootRequiresTerminal(t *testing.T) {
	_, err := execute(t)
	assert.ErrorIs(t, err, common.ErrNotATerminal)
}
