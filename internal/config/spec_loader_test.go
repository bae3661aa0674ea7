package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/catalog"
	"github.com/paulasilvatech/Mastery-AI-Apps-Dev-sub017/internal/sizing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSpec_ValidConfig(t *testing.T) {
	t.Parallel()
	path := writeFile(t, t.TempDir(), DefaultConfigFilename, `
stage: 17
environment: prod
base_name: workshop
suffix: ab01
location: eastus
tags:
  owner: team-a
disabled: [redis-cache]
naming:
  max_length: 40
`)

	cfg, err := LoadSpec(path)
	require.NoError(t, err)
	assert.Equal(t, 17, cfg.Stage)
	assert.Equal(t, sizing.TierProd, cfg.Environment)
	assert.Equal(t, "workshop", cfg.BaseName)
	assert.Equal(t, "team-a", cfg.Tags["owner"])
	assert.Equal(t, []string{"redis-cache"}, cfg.Disabled)
	assert.Equal(t, 40, cfg.Naming.MaxLength)
}

func TestLoadSpec_InvalidConfig(t *testing.T) {
	t.Parallel()
	path := writeFile(t, t.TempDir(), DefaultConfigFilename, "stage: -2\nenvironment: qa\n")

	_, err := LoadSpec(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")

	cfg, err := LoadSpecWithoutValidation(path)
	require.NoError(t, err)
	assert.Equal(t, -2, cfg.Stage)
}

func TestLoadSpec_Errors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	_, err := LoadSpec(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	path := writeFile(t, dir, "bad.yaml", "stage: [")
	_, err = LoadSpec(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadSpec_RelativeCatalog(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "catalog.yaml", string(catalog.BuiltinSource()))
	path := writeFile(t, dir, DefaultConfigFilename, `
stage: 0
environment: dev
base_name: ws
location: eastus
catalog: catalog.yaml
`)

	cfg, err := LoadSpec(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "catalog.yaml"), cfg.CatalogPath())

	cat, err := cfg.LoadCatalog()
	require.NoError(t, err)
	assert.Positive(t, cat.Len())
}

func TestLoadSpecFromBytes(t *testing.T) {
	t.Parallel()
	cfg, err := LoadSpecFromBytes([]byte("environment: dev\nbase_name: ws\nlocation: eastus\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Stage)

	_, err = LoadSpecFromBytes([]byte("environment: dev\n"))
	require.Error(t, err)
}

func TestFindConfigFile(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	nested := filepath.Join(root, "module-17", "lab")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	want := writeFile(t, root, DefaultConfigFilename, "stage: 0\n")

	got, err := findConfigFileFrom(nested)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = findConfigFileFrom(t.TempDir())
	if err == nil {
		t.Skip("a tierplan.yaml exists above the temp dir")
	}
	assert.Contains(t, err.Error(), "not found")
}

func TestSaveSpec_RoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), DefaultConfigFilename)
	want := validSpec()
	require.NoError(t, SaveSpec(want, path))

	got, err := LoadSpec(path)
	require.NoError(t, err)
	assert.Equal(t, want.BaseName, got.BaseName)
	assert.Equal(t, want.Environment, got.Environment)
	assert.Equal(t, want.Naming, got.Naming)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
