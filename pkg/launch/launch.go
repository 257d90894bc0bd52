// Package launch builds and starts the browser subprocess for a chosen
// profile. The child is spawned fully detached so the parent can exit
// immediately after handoff.
package launch

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"

	"github.com/lvim-tech/qb/pkg/browser"
	"github.com/lvim-tech/qb/pkg/utils"
)

// Args returns the profile arguments for a browser kind. Firefox and
// zen-browser take the absolute profile directory; brave takes only the
// leaf directory name via --profile-directory=. An unknown kind gets no
// profile arguments (unreachable through the kind enum, kept defensive).
func Args(kind browser.Kind, profileDir string) []string {
	switch kind {
	case browser.Firefox, browser.Zen:
		return []string{"--profile", profileDir}
	case browser.Brave:
		return []string{"--profile-directory=" + filepath.Base(profileDir)}
	default:
		return nil
	}
}

// Command returns the program to execute: the override when set,
// otherwise the browser's own binary name
func Command(kind browser.Kind, override string) string {
	if override != "" {
		return override
	}
	return string(kind)
}

// Run starts the browser detached. The child gets its own session and no
// inherited stdio, so it survives the parent exiting right after.
func Run(command string, kind browser.Kind, profileDir string) error {
	args := Args(kind, profileDir)
	utils.Debugf("launching %s %v", command, args)

	cmd := exec.Command(command, args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
	cmd.Env = os.Environ()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", command, err)
	}

	// Hand off completely - the child is on its own from here
	return cmd.Process.Release()
}
