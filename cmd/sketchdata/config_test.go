package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Roots)
	assert.Equal(t, "jpeg", cfg.Extension)
	assert.False(t, cfg.AutoOrient)
	assert.False(t, cfg.Verify)
	assert.Equal(t, 0, cfg.Parallelism)
	assert.ErrorIs(t, cfg.Validate(), ErrNoRoots)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SKETCHDATA_ROOTS", "/data/cars,/data/boats")
	t.Setenv("SKETCHDATA_EXTENSION", "png")
	t.Setenv("SKETCHDATA_PARALLELISM", "3")
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, []string{"/data/cars", "/data/boats"}, cfg.Roots)
	assert.Equal(t, "png", cfg.Extension)
	assert.Equal(t, 3, cfg.Parallelism)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile,
		[]byte("SKETCHDATA_VERIFY=true\nSKETCHDATA_EXTENSION=webp\n"), 0o644))
	// Variables already set take precedence over the file.
	t.Setenv("SKETCHDATA_EXTENSION", "bmp")
	// Registered so it is cleaned up after the test: godotenv.Load sets it in the process environment.
	t.Setenv("SKETCHDATA_VERIFY", "")
	require.NoError(t, os.Unsetenv("SKETCHDATA_VERIFY"))

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)
	assert.True(t, cfg.Verify)
	assert.Equal(t, "bmp", cfg.Extension)
}

func TestConfig_Flags(t *testing.T) {
	t.Setenv("SKETCHDATA_ROOTS", "/from/env")
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"-roots= /a, ,/b ", "-ext=.png", "-auto_orient", "-parallelism=2"}))
	assert.Equal(t, []string{"/a", "/b"}, cfg.Roots)
	assert.Equal(t, ".png", cfg.Extension)
	assert.True(t, cfg.AutoOrient)
	assert.Equal(t, 2, cfg.Parallelism)
	require.NoError(t, cfg.Validate())

	cfg.Extension = "."
	assert.ErrorIs(t, cfg.Validate(), ErrEmptyExtension)
}
