package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	logger := newLogger("warn", "text", out)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")

	logOutput := out.String()
	require.NotContains(t, logOutput, "debug message")
	require.NotContains(t, logOutput, "info message")
	require.Contains(t, logOutput, "warn message")
}

func TestNewLogger_JSONFormat(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	logger := newLogger("info", "json", out)

	logger.Info("hello")

	require.Contains(t, out.String(), `"msg":"hello"`)
}

func TestNewLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	logger := newLogger("bogus", "text", out)

	logger.Debug("debug message")
	logger.Info("info message")

	logOutput := out.String()
	require.NotContains(t, logOutput, "debug message")
	require.Contains(t, logOutput, "info message")
}
