package utils

import (
	"fmt"
	"os"
)

var debugEnabled bool

// SetDebug enables or disables debug output
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

// Infof prints an informational line to stdout
func Infof(format string, args ...any) {
	fmt.Fprintf(os.Stdout, "INFO: "+format+"\n", args...)
}

// Warnf prints a warning line to stdout
func Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stdout, "WARN: "+format+"\n", args...)
}

// Errorf prints an error line to stderr
func Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
}

// Debugf prints a debug line to stdout when debug output is enabled
func Debugf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	fmt.Fprintf(os.Stdout, "DEBUG: "+format+"\n", args...)
}
