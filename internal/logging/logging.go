// Package logging builds the logrus loggers of the picker command.
//
// The interactive picker owns the terminal, so logs never go to the screen:
// they go to a file when one is configured, to stderr when stderr is not a
// terminal, and nowhere otherwise.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// LevelEnv names the environment variable which overrides the log level.
const LevelEnv = "PICKER_LOG_LEVEL"

// Option configures a logger.
type Option func(*logrus.Logger)

// WithOutput sets the logger output
func WithOutput(w io.Writer) Option {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

// WithLevel sets the log level
func WithLevel(level logrus.Level) Option {
	return func(l *logrus.Logger) {
		l.SetLevel(level)
	}
}

// WithFormatter sets the log formatter
func WithFormatter(formatter logrus.Formatter) Option {
	return func(l *logrus.Logger) {
		l.SetFormatter(formatter)
	}
}

// NewLogger returns a logger tagged with the component name. Without
// options it logs at info level to io.Discard.
func NewLogger(component string, opts ...Option) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	for _, opt := range opts {
		opt(logger)
	}

	return logger.WithField("component", component)
}

// ParseLevel returns the level named by the PICKER_LOG_LEVEL environment
// variable, else the given name, else info.
func ParseLevel(name string) (logrus.Level, error) {
	if env := os.Getenv(LevelEnv); env != "" {
		name = env
	}
	if name == "" {
		return logrus.InfoLevel, nil
	}
	level, err := logrus.ParseLevel(strings.TrimSpace(name))
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

// OpenSink returns the writer logs should go to and a function releasing it.
// A non-empty path is opened for appending, creating missing directories.
// Without a path, stderr is used when it is not a terminal.
func OpenSink(path string, stderr *os.File) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	if path != "" {
		path = expandPath(path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, noop, fmt.Errorf("create log directory: %w", err)
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, noop, fmt.Errorf("open log file: %w", err)
		}
		return file, file.Close, nil
	}

	if stderr != nil && !isTerminal(stderr) {
		return stderr, noop, nil
	}
	return io.Discard, noop, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// expandPath expands tilde in file paths
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
