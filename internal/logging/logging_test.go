package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger("test-component")
	require.NotNil(t, logger)

	assert.Equal(t, "test-component", logger.Data["component"])
	assert.Equal(t, logrus.InfoLevel, logger.Logger.GetLevel())
	assert.Equal(t, io.Discard, logger.Logger.Out)
}

func TestLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("picker", WithOutput(&buf), WithLevel(logrus.DebugLevel))

	logger.WithField("index", 2).Debug("selected")

	output := buf.String()
	assert.Contains(t, output, "level=debug")
	assert.Contains(t, output, "component=picker")
	assert.Contains(t, output, "index=2")
	assert.Contains(t, output, "msg=selected")
}

func TestLoggerLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("picker", WithOutput(&buf), WithLevel(logrus.WarnLevel))

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestWithFormatter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("picker", WithOutput(&buf), WithFormatter(&logrus.JSONFormatter{}))

	logger.Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"component":"picker"`)
}

func TestParseLevel(t *testing.T) {
	t.Setenv(LevelEnv, "")

	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, level)

	level, err = ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)

	level, err = ParseLevel("loud")
	assert.Error(t, err)
	assert.Equal(t, logrus.InfoLevel, level)

	t.Setenv(LevelEnv, "error")
	level, err = ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, logrus.ErrorLevel, level)
}

func TestOpenSinkFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "picker.log")

	w, closeSink, err := OpenSink(path, nil)
	require.NoError(t, err)

	logger := NewLogger("picker", WithOutput(w))
	logger.Info("written to file")
	require.NoError(t, closeSink())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestOpenSinkStderrNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stderr")
	require.NoError(t, err)
	defer f.Close()

	w, closeSink, err := OpenSink("", f)
	require.NoError(t, err)
	assert.NoError(t, closeSink())
	assert.Equal(t, f, w)

	w, _, err = OpenSink("", nil)
	require.NoError(t, err)
	assert.Equal(t, io.Discard, w)
}
