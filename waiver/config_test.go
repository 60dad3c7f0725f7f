package waiver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileReturnsDefault(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTrigger, cfg.Trigger)
}

func TestLoadConfig_ParsesTriggerAndRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "waivers.yaml")
	content := "trigger: my-tool\nrules:\n  - rule-a\n  - rule-b\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "my-tool", cfg.Trigger)
	assert.Equal(t, []string{"rule-a", "rule-b"}, cfg.Rules)
}

func TestLoadConfig_DefaultsTriggerWhenUnset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "waivers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules: [a]\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultTrigger, cfg.Trigger)
}
