package browser

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/lvim-tech/qb/pkg/utils"
)

// desktopEntries maps xdg desktop entry names to browser kinds
var desktopEntries = map[string]Kind{
	"firefox.desktop":       Firefox,
	"brave-browser.desktop": Brave,
	"zen.desktop":           Zen,
	"zen_browser.desktop":   Zen,
	"zen-browser.desktop":   Zen,
}

// probeOrder is the PATH probe priority: firefox > brave > zen-browser
var probeOrder = []Kind{Firefox, Brave, Zen}

// strategy tries one resolution source, returning false when undetermined
type strategy func() (Kind, bool)

// Resolve determines the target browser. Priority: explicit flag >
// desktop default handler > PATH probe. An invalid explicit value is an
// error; an exhausted chain is an error.
func Resolve(explicit string) (Kind, error) {
	if explicit != "" {
		kind, err := ParseKind(explicit)
		if err != nil {
			return "", err
		}
		utils.Debugf("browser %s set explicitly", kind)
		return kind, nil
	}

	strategies := []strategy{desktopDefault, pathProbe}
	for _, s := range strategies {
		if kind, ok := s(); ok {
			return kind, nil
		}
	}

	return "", fmt.Errorf("no supported browser found (looked for firefox, brave, zen-browser)")
}

// desktopDefault queries xdg-settings for the default web browser
func desktopDefault() (Kind, bool) {
	output, err := exec.Command("xdg-settings", "get", "default-web-browser").Output()
	if err != nil {
		utils.Warnf("could not query default web browser: %v", err)
		return "", false
	}

	entry := strings.TrimSpace(string(output))
	kind, ok := desktopEntries[entry]
	if !ok {
		utils.Warnf("unrecognized default browser %q, falling back to PATH", entry)
		return "", false
	}

	utils.Debugf("browser %s resolved from desktop default %q", kind, entry)
	return kind, true
}

// pathProbe returns the first browser kind with an executable in PATH
func pathProbe() (Kind, bool) {
	for _, kind := range probeOrder {
		if utils.CommandExists(string(kind)) {
			utils.Debugf("browser %s found in PATH", kind)
			return kind, true
		}
	}
	return "", false
}
