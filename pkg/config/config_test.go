package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderDefaults(t *testing.T) {
	cfg, loader := Loader()
	require.NoError(t, loader.Load())

	assert.Equal(t, "Bldfile", cfg.File)
	assert.Equal(t, "", cfg.Compiler)
	assert.False(t, cfg.KeepGoing)
	assert.False(t, cfg.SplitOptions)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.JSON)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel())
}

func TestLoaderEnvOverride(t *testing.T) {
	require.NoError(t, os.Setenv("BLD_COMPILER", "clang++"))
	require.NoError(t, os.Setenv("BLD_LOG_LEVEL", "debug"))
	defer os.Unsetenv("BLD_COMPILER")
	defer os.Unsetenv("BLD_LOG_LEVEL")

	cfg, loader := Loader()
	require.NoError(t, loader.Load())

	assert.Equal(t, "clang++", cfg.Compiler)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel())
}

func TestLoaderFile(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "bld.toml")
	err := ioutil.WriteFile(tomlPath, []byte("file = \"other.bld\"\ncompiler = \"g++-11\"\n"), os.FileMode(0600))
	require.NoError(t, err)

	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(oldWd)

	cfg, loader := Loader()
	require.NoError(t, loader.Load())

	assert.Equal(t, "other.bld", cfg.File)
	assert.Equal(t, "g++-11", cfg.Compiler)
}

func TestValidate(t *testing.T) {
	cfg, loader := Loader()
	require.NoError(t, loader.Load())

	cfg.Log.Level = "verbose"
	require.Error(t, cfg.Validate())

	cfg.Log.Level = "warning"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel())

	cfg.File = ""
	require.Error(t, cfg.Validate())
}
