// Package logging wraps charmbracelet/log with a package-level logger
// writing to stderr, so generated output on stdout stays pipeable.
package logging

import (
	"os"

	charmlog "github.com/charmbracelet/log"
)

var defaultLogger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
	Level:           charmlog.InfoLevel,
})

// Setup configures the log level. Verbose enables debug-level diagnostics.
func Setup(verbose bool) {
	if verbose {
		defaultLogger.SetLevel(charmlog.DebugLevel)
	} else {
		defaultLogger.SetLevel(charmlog.InfoLevel)
	}
}

func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// With returns a sub-logger carrying the given key/value pairs.
func With(args ...any) *charmlog.Logger {
	return defaultLogger.With(args...)
}
