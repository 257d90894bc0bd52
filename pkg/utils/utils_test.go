package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/u")
	t.Setenv("QB_TEST_DIR", "/data")

	assert.Equal(t, "/home/u/.mozilla/firefox", ExpandPath("~/.mozilla/firefox"))
	assert.Equal(t, "/home/u", ExpandPath("~"))
	assert.Equal(t, "/data/profiles", ExpandPath("$QB_TEST_DIR/profiles"))
	assert.Equal(t, "/absolute/path", ExpandPath("/absolute/path"))
}

func TestGetConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, "/xdg", GetConfigDir())

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/u")
	assert.Equal(t, "/home/u/.config", GetConfigDir())
}

func TestIsDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.True(t, IsDirectory(dir))
	assert.False(t, IsDirectory(file))
	assert.False(t, IsDirectory(filepath.Join(dir, "missing")))
}

func TestFileExists(t *testing.T) {
	file := filepath.Join(t.TempDir(), "theme.rasi")
	assert.False(t, FileExists(file))

	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	assert.True(t, FileExists(file))
}

func TestCommandExists(t *testing.T) {
	assert.True(t, CommandExists("sh"))
	assert.False(t, CommandExists("definitely-not-a-real-command"))
}
