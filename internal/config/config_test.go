package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ".py", cfg.Analysis.Extension)
	assert.Equal(t, "pyre-fixme", cfg.Analysis.FixmeMarker)
	assert.Equal(t, "pystats.db", cfg.History.Path)
	assert.False(t, cfg.History.Record)
}

func TestLoadConfig_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pystats.yaml")
	contents := `analysis:
  fixme_marker: todo-marker
history:
  record: true
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "todo-marker", cfg.Analysis.FixmeMarker)
	assert.True(t, cfg.History.Record)
	assert.Equal(t, ".py", cfg.Analysis.Extension, "unset keys keep their defaults")
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pystats.yaml")
	require.NoError(t, os.WriteFile(path, []byte("history:\n  path: from-file.db\n"), 0o644))
	t.Setenv("PYSTATS_DB", "from-env.db")
	t.Setenv("PYSTATS_FIXME_MARKER", "env-marker")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.db", cfg.History.Path)
	assert.Equal(t, "env-marker", cfg.Analysis.FixmeMarker)
}

func TestLoadConfig_BlankedKeysFallBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pystats.yaml")
	contents := `analysis:
  extension: ""
  fixme_marker: ""
history:
  path: ""
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ".py", cfg.Analysis.Extension)
	assert.Equal(t, "pyre-fixme", cfg.Analysis.FixmeMarker)
	assert.Equal(t, "pystats.db", cfg.History.Path)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pystats.yaml")
	require.NoError(t, os.WriteFile(path, []byte("analysis: [not a mapping\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
