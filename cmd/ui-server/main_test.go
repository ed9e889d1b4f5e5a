package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Its-donkey/multistream/internal/config"
	"github.com/Its-donkey/multistream/internal/ui/forms"
	"github.com/Its-donkey/multistream/internal/ui/model"
)

func init() {
	color.NoColor = true
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	out, err := execute(t, "parse", "twitch.tv/mikars", "kick.com/odablock", "verf")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ twitch mikars https://www.twitch.tv/mikars")
	assert.Contains(t, out, "✓ kick odablock https://kick.com/odablock")
	assert.Contains(t, out, "✓ twitch verf")
}

func TestParseCommandReportsFailures(t *testing.T) {
	out, err := execute(t, "parse", "example.com/a", "ok", "/")
	require.Error(t, err)
	assert.True(t, errors.Is(err, forms.ErrUnrecognized))
	assert.Contains(t, err.Error(), "2 errors occurred")
	assert.Contains(t, out, `✗ "example.com/a"`)
	assert.Contains(t, out, forms.FormatHint)
	assert.Contains(t, out, "✓ twitch ok")
}

func TestRunParseWithCustomParser(t *testing.T) {
	var buf bytes.Buffer
	calls := 0
	err := runParse(context.Background(), &buf, []string{"x"}, func(_ context.Context, input string) (model.ChannelRef, error) {
		calls++
		return model.ChannelRef{Platform: model.PlatformKick, Channel: input}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Contains(t, buf.String(), "✓ kick x")
}

func TestEmbedCommand(t *testing.T) {
	out, err := execute(t, "embed", "twitch.tv/alfie", "--parent", "localhost", "--parent", "viewer.example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://player.twitch.tv/?channel=alfie&parent=localhost&parent=viewer.example.com\n", out)

	out, err = execute(t, "embed", "kick.com/rhys", "--parent", "localhost")
	require.NoError(t, err)
	assert.Equal(t, "https://player.kick.com/rhys\n", out)
}

func TestEmbedCommandUsesConfiguredParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "multistream.yaml")
	require.NoError(t, os.WriteFile(path, []byte("embed:\n  parents: [\"viewer.example.com\"]\n"), 0o600))

	out, err := execute(t, "--config", path, "embed", "muts")
	require.NoError(t, err)
	assert.Equal(t, "https://player.twitch.tv/?channel=muts&parent=viewer.example.com\n", out)
}

func TestEmbedCommandRejectsUnknownInput(t *testing.T) {
	_, err := execute(t, "embed", "example.com/x", "--parent", "localhost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, forms.ErrUnrecognized))
}

func TestApplyFlagOverrides(t *testing.T) {
	cmd := newServeCmd(&rootOptions{})
	require.NoError(t, cmd.Flags().Parse([]string{"--columns", "4", "--listen", ":9000", "--parent", "a.example,b.example"}))

	cfg := config.Default()
	require.NoError(t, applyFlagOverrides(&cfg, cmd.Flags()))
	assert.Equal(t, 4, cfg.Grid.Columns)
	assert.Equal(t, ":9000", cfg.Server.Listen)
	assert.Equal(t, []string{"a.example", "b.example"}, cfg.Embed.Parents)
	assert.Equal(t, "ui", cfg.Server.Assets)
}

func TestApplyFlagOverridesValidates(t *testing.T) {
	cmd := newServeCmd(&rootOptions{})
	require.NoError(t, cmd.Flags().Parse([]string{"--columns", "12"}))

	cfg := config.Default()
	err := applyFlagOverrides(&cfg, cmd.Flags())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid flags")
}
