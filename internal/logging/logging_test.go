package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/taskman/pkg/types"
)

func TestNewDefaultLevelIsWarn(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(Options{Writer: &buf})
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "taskman")
	assert.Contains(t, out, "key=value")
}

func TestNewDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(Options{Level: types.LogLevelDebug, Writer: &buf})
	require.NoError(t, err)

	logger.Debug("persisted tasks", "count", 2)
	assert.Contains(t, buf.String(), "persisted tasks")
}

func TestNewUnknownLevel(t *testing.T) {
	_, _, err := New(Options{Level: "chatty"})
	assert.ErrorIs(t, err, types.ErrLogLevelUnknown)
}

func TestNewLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "taskman.log")
	logger, closer, err := New(Options{Level: types.LogLevelInfo, File: path})
	require.NoError(t, err)

	logger.Info("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
