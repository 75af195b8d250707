package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(LoadOptions{File: filepath.Join(t.TempDir(), "missing.toml")})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Required(t *testing.T) {
	_, err := Load(LoadOptions{File: filepath.Join(t.TempDir(), "missing.toml"), Required: true})
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
pattern = "Sources/**/*Flag.swift"
output = "site/flags.json"

[log]
level = "debug"

[html]
repo = "owner/app"
`)

	cfg, err := Load(LoadOptions{File: path})
	require.NoError(t, err)

	assert.Equal(t, "Sources/**/*Flag.swift", cfg.Pattern)
	assert.Equal(t, "site/flags.json", cfg.Output)
	assert.Equal(t, "debug", cfg.Log.Level)
	// не указанное в файле остаётся по умолчанию
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "owner/app", cfg.HTML.Repo)
	assert.Equal(t, "featureflags", cfg.Gen.Package)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "[log]\nlevel = \"debug\"\n")
	t.Setenv("FLAGSCAN_LOG__LEVEL", "warn")
	t.Setenv("FLAGSCAN_GEN__PACKAGE", "flags")
	t.Setenv("FLAGSCAN_OUTPUT", "out.yaml")

	cfg, err := Load(LoadOptions{File: path, EnableEnv: true})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "flags", cfg.Gen.Package)
	assert.Equal(t, "out.yaml", cfg.Output)
}

func TestLoad_EnvDisabled(t *testing.T) {
	path := writeConfig(t, "[log]\nlevel = \"debug\"\n")
	t.Setenv("FLAGSCAN_LOG__LEVEL", "warn")

	cfg, err := Load(LoadOptions{File: path})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_BadFile(t *testing.T) {
	path := writeConfig(t, "pattern = \n")
	_, err := Load(LoadOptions{File: path})
	assert.Error(t, err)
}
