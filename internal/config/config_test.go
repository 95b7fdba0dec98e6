package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picker.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
title: Pick a branch
items:
  - main
  - release/1.0
selected: 1
width: 40
log:
  level: debug
  file: /tmp/picker.log
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Pick a branch", cfg.Title)
	assert.Equal(t, []string{"main", "release/1.0"}, cfg.Items)
	assert.Equal(t, 1, cfg.Selected)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/picker.log", cfg.Log.File)
	assert.NoError(t, cfg.Validate())
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picker.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
title = "Continue?"
items = ["Yes", "No"]

[log]
level = "warn"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Continue?", cfg.Title)
	assert.Equal(t, []string{"Yes", "No"}, cfg.Items)
	assert.Equal(t, 0, cfg.Selected)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalidSyntax(t *testing.T) {
	_, err := LoadFromBytes([]byte("items: [unterminated"), FormatYAML)
	assert.Error(t, err)

	_, err = LoadFromBytes([]byte("items = ["), FormatTOML)
	assert.Error(t, err)

	_, err = LoadFromBytes([]byte("items: []"), Format("ini"))
	assert.Error(t, err)
}

func TestEnvExpansion(t *testing.T) {
	t.Setenv("PICKER_TEST_BRANCH", "feature/wrap")

	cfg, err := LoadFromBytes([]byte(`
title: ${PICKER_TEST_TITLE:-Branches}
items:
  - ${PICKER_TEST_BRANCH}
  - ${PICKER_TEST_UNSET}
`), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "Branches", cfg.Title)
	assert.Equal(t, []string{"feature/wrap", ""}, cfg.Items)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatFromPath("a/b/picker.toml"))
	assert.Equal(t, FormatTOML, FormatFromPath("PICKER.TOML"))
	assert.Equal(t, FormatYAML, FormatFromPath("picker.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("picker.yml"))
	assert.Equal(t, FormatYAML, FormatFromPath("picker"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid", cfg: Config{Items: []string{"a", "b"}, Selected: 1}},
		{name: "no items", cfg: Config{}, wantErr: true},
		{name: "selected past end", cfg: Config{Items: []string{"a"}, Selected: 1}, wantErr: true},
		{name: "negative selected", cfg: Config{Items: []string{"a"}, Selected: -1}, wantErr: true},
		{name: "negative width", cfg: Config{Items: []string{"a"}, Width: -3}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	assert.ErrorIs(t, (&Config{}).Validate(), ErrNoItems)
}
