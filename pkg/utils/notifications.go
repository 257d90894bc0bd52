package utils

import (
	"os"
	"os/exec"
)

// ShowErrorNotification sends a critical desktop notification.
// Failures are ignored - notifications are best effort.
func ShowErrorNotification(title, message string) {
	tool := detectNotificationTool()
	if tool == "" {
		return
	}

	cmd := exec.Command(tool,
		"-u", "critical",
		"-t", "5000",
		title,
		message)
	cmd.Env = os.Environ()
	cmd.Start()
}

// detectNotificationTool detects which notification tool is available
func detectNotificationTool() string {
	if CommandExists("dunstify") {
		return "dunstify"
	}
	if CommandExists("notify-send") {
		return "notify-send"
	}
	return ""
}
