// Package profile enumerates browser profile directories.
package profile

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/lvim-tech/qb/pkg/utils"
)

// List returns the profile directory names under basePath, sorted
// lexicographically. A directory counts as a profile when its name
// contains "Default" or starts with "Profile". The base path must exist.
func List(basePath string) ([]string, error) {
	basePath = utils.ExpandPath(basePath)

	info, err := os.Stat(basePath)
	if err != nil {
		return nil, fmt.Errorf("profile path does not exist: %s", basePath)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("profile path is not a directory: %s", basePath)
	}

	entries, err := os.ReadDir(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile path %s: %w", basePath, err)
	}

	var profiles []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if isProfileName(entry.Name()) {
			profiles = append(profiles, entry.Name())
		}
	}

	sort.Strings(profiles)
	return profiles, nil
}

// isProfileName matches the profile naming conventions of the
// supported browsers (case-sensitive)
func isProfileName(name string) bool {
	return strings.Contains(name, "Default") || strings.HasPrefix(name, "Profile")
}
