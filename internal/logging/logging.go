// Package logging configures the process-wide logger. Chart output owns
// stdout, so all diagnostics go to stderr.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup returns the logger for a run. Verbose lowers the threshold to debug.
func Setup(verbose bool) *logrus.Logger {
	level := logrus.InfoLevel
	if verbose {
		level = logrus.DebugLevel
	}
	logger := logrus.Logger{
		Formatter: &logrus.TextFormatter{},
		Out:       os.Stderr,
		Level:     level,
	}

	return &logger
}
