// Package menu bridges to the rofi selection menu. Options go in as
// newline-joined text on stdin, the chosen line comes back on stdout.
// Cancellation (ESC or empty selection) is reported as ErrCancelled,
// not as a failure.
package menu

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/lvim-tech/qb/pkg/utils"
)

// ErrCancelled is returned when the user dismisses the menu
var ErrCancelled = errors.New("cancelled by user")

// IsCancelled checks whether an error came from a dismissed menu
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// Rofi invokes rofi in dmenu mode
type Rofi struct {
	theme string
}

// NewRofi creates a rofi menu. A theme path that does not exist on disk
// is dropped with a warning and the menu runs with default appearance.
func NewRofi(theme string) *Rofi {
	if theme != "" && !utils.FileExists(theme) {
		utils.Warnf("rofi theme not found, using default appearance: %s", theme)
		theme = ""
	}
	return &Rofi{theme: theme}
}

// Show presents the options and returns the chosen one
func (r *Rofi) Show(options []string, prompt string) (string, error) {
	cmd := exec.Command("rofi", r.args(prompt)...)
	cmd.Stdin = strings.NewReader(strings.Join(options, "\n"))

	output, err := cmd.Output()
	if err != nil {
		// rofi exits nonzero on ESC; any exit failure means no selection
		if _, ok := err.(*exec.ExitError); ok {
			return "", ErrCancelled
		}
		return "", err
	}

	result := strings.TrimSpace(string(output))
	if result == "" {
		return "", ErrCancelled
	}

	return result, nil
}

func (r *Rofi) args(prompt string) []string {
	args := []string{"-dmenu", "-i", "-p", prompt}
	if r.theme != "" {
		args = append(args, "-theme", r.theme)
	}
	return args
}
