// Package browser defines the supported browser kinds and resolves
// which one a run should target.
package browser

import (
	"fmt"
	"path/filepath"

	"github.com/lvim-tech/qb/pkg/utils"
)

// Kind represents a supported browser
type Kind string

const (
	Firefox Kind = "firefox"
	Zen     Kind = "zen-browser"
	Brave   Kind = "brave"
)

// Kinds returns all supported browser kinds
func Kinds() []Kind {
	return []Kind{Firefox, Zen, Brave}
}

// ParseKind validates a browser name from a flag or config value
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if name == string(k) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unsupported browser %q (supported: firefox, zen-browser, brave)", name)
}

// String returns the browser name
func (k Kind) String() string {
	return string(k)
}

// DefaultProfilePath returns the default profile base path for a browser
func (k Kind) DefaultProfilePath() string {
	switch k {
	case Firefox:
		return filepath.Join(utils.GetHomeDir(), ".mozilla", "firefox")
	case Zen:
		return filepath.Join(utils.GetHomeDir(), ".zen")
	case Brave:
		return filepath.Join(utils.GetHomeDir(), ".config", "BraveSoftware", "Brave-Browser")
	default:
		return ""
	}
}
