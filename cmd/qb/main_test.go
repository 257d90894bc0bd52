package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvim-tech/qb/pkg/utils"
)

// captureStdout runs f with stdout redirected and returns what it wrote
func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	f()

	require.NoError(t, w.Close())
	output, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(output)
}

func TestDebugTracingCoversResolution(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configDir)
	require.NoError(t, os.MkdirAll(filepath.Join(configDir, "qb"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "qb", "config.toml"),
		[]byte("[global]\ndebug = true\n"), 0644))

	flagBrowser = "firefox"
	flagBasePath = filepath.Join(t.TempDir(), "missing")
	defer func() {
		flagBrowser = ""
		flagBasePath = ""
		utils.SetDebug(false)
	}()

	var runErr error
	output := captureStdout(t, func() {
		runErr = run()
	})

	// The run stops at the missing base path, but the config file must
	// already have armed debug output by the time the browser resolves
	require.Error(t, runErr)
	assert.Contains(t, output, "DEBUG: browser firefox set explicitly")
	assert.Contains(t, output, "DEBUG: using browser firefox")
}
