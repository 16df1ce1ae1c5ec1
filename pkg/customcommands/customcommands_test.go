package customcommands

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nova-launcher/nova/pkg/config"
)

func writeScript(t *testing.T, dir, filename, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(content), 0o755))
}

func TestNewCreatesScriptsDirectoryWhenMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scripts")
	cfg := config.Config{Scripts: config.ScriptsConfig{Directory: dir, Enabled: true}}

	idx := New(cfg, slog.Default())

	assert.DirExists(t, dir)
	assert.Empty(t, idx.Scripts)
}

func TestNewSkipsDirectoryWhenDisabled(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "hello.sh", "#!/bin/sh\n# nova: name = \"Hello\"\necho hi\n")

	cfg := config.Config{Scripts: config.ScriptsConfig{Directory: dir, Enabled: false}}
	idx := New(cfg, slog.Default())

	assert.Empty(t, idx.Scripts)
}

func TestParseScriptMetadataFullHeader(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "weather.sh", `#!/bin/sh
# nova: name = "Weather"
# nova: description = "Show current weather"
# nova: icon = "weather-icon"
# nova: keywords = weather, forecast
# nova: argument = true
# nova: output = notification
curl https://example.com/weather
`)

	cfg := config.Config{Scripts: config.ScriptsConfig{Directory: dir, Enabled: true}}
	idx := New(cfg, slog.Default())

	require.Len(t, idx.Scripts, 1)
	s := idx.Scripts[0]
	assert.Equal(t, "weather", s.ID)
	assert.Equal(t, "Weather", s.Name)
	assert.Equal(t, "Show current weather", s.Description)
	assert.Equal(t, []string{"weather", "forecast"}, s.Keywords)
	assert.True(t, s.HasArgument)
	assert.Equal(t, OutputNotification, s.OutputMode)
}

func TestParseScriptMetadataSkipsScriptsWithoutHeader(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "plain.sh", "#!/bin/sh\necho hi\n")

	cfg := config.Config{Scripts: config.ScriptsConfig{Directory: dir, Enabled: true}}
	idx := New(cfg, slog.Default())

	assert.Empty(t, idx.Scripts)
}

func TestParseScriptMetadataDefaultsOutputToSilent(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "quiet.sh", "# nova: name = \"Quiet\"\necho hi\n")

	cfg := config.Config{Scripts: config.ScriptsConfig{Directory: dir, Enabled: true}}
	idx := New(cfg, slog.Default())

	require.Len(t, idx.Scripts, 1)
	assert.Equal(t, OutputSilent, idx.Scripts[0].OutputMode)
}

func TestReloadRescansScriptsDirectory(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{Scripts: config.ScriptsConfig{Directory: dir, Enabled: true}}
	idx := New(cfg, slog.Default())
	assert.Empty(t, idx.Scripts)

	writeScript(t, dir, "new.sh", "# nova: name = \"New\"\necho hi\n")
	idx.Reload(cfg)

	require.Len(t, idx.Scripts, 1)
	assert.Equal(t, "New", idx.Scripts[0].Name)
}

func TestOutputModeString(t *testing.T) {
	assert.Equal(t, "silent", OutputSilent.String())
	assert.Equal(t, "notification", OutputNotification.String())
	assert.Equal(t, "clipboard", OutputClipboard.String())
	assert.Equal(t, "inline", OutputInline.String())
}
