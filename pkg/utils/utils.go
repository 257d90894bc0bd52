// Package utils provides common utility functions for qb.
// It includes helpers for path expansion, file checks, command lookup,
// line-oriented logging, and desktop notifications.
package utils

import (
	"os"
	"os/exec"
	"path/filepath"
)

// CommandExists checks if a command exists in PATH
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// ExpandPath expands ~ and environment variables in a path
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home := os.Getenv("HOME")
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	path = ExpandPath(path)
	_, err := os.Stat(path)
	return err == nil
}

// IsDirectory checks if a path is a directory
func IsDirectory(path string) bool {
	path = ExpandPath(path)
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// GetHomeDir returns the home directory
func GetHomeDir() string {
	return os.Getenv("HOME")
}

// GetConfigDir returns the XDG config directory
func GetConfigDir() string {
	if configDir := os.Getenv("XDG_CONFIG_HOME"); configDir != "" {
		return configDir
	}
	return filepath.Join(GetHomeDir(), ".config")
}
