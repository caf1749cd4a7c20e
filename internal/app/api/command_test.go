package api

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfig_FlagsOverride(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("PORT", "9000")

	cmd := newServeCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--port", "7070", "--seed=false"}))

	cfg, err := resolveConfig(cmd, serveFlagsFrom(t, cmd))
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.False(t, cfg.Seed.Enabled)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestResolveConfig_UnsetFlagsKeepEnvironment(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("PORT", "9000")

	cmd := newServeCommand()
	require.NoError(t, cmd.ParseFlags(nil))

	cfg, err := resolveConfig(cmd, serveFlagsFrom(t, cmd))
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.Seed.Enabled)
}

func TestRootCommand_HasServe(t *testing.T) {
	serve, _, err := NewRootCommand().Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", serve.Name())
}

func serveFlagsFrom(t *testing.T, cmd *cobra.Command) serveFlags {
	t.Helper()
	flags := cmd.Flags()
	var out serveFlags
	var err error
	out.configPath, err = flags.GetString("config")
	require.NoError(t, err)
	out.port, err = flags.GetString("port")
	require.NoError(t, err)
	out.seed, err = flags.GetBool("seed")
	require.NoError(t, err)
	out.logLevel, err = flags.GetString("log-level")
	require.NoError(t, err)
	return out
}
