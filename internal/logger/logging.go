// Package logger provides modifications to charmbracelet/log's default logger to be used in various files/packages.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// output is stderr so query results on stdout stay pipeable.
var output io.Writer = os.Stderr

// New creates a new default charm log.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(output, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: log.GetLevel() == log.DebugLevel,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig creates a new charm log with custom config
func NewWithConfig(prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(output, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}

// ParseFormatter maps a config name to a charm formatter. Empty means text.
func ParseFormatter(name string) (log.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	}
	return log.TextFormatter, fmt.Errorf("unknown log formatter %q", name)
}

// Setup configures the package-level charm logger used across the module.
func Setup(level string, showTimestamp bool, formatter string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	f, err := ParseFormatter(formatter)
	if err != nil {
		return err
	}
	l := NewWithConfig("", lvl, false, showTimestamp, f)
	log.SetDefault(l)
	log.SetLevel(lvl)
	return nil
}
