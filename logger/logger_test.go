package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesFormattedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system_log.txt")

	l := New(path)
	l.Info("hello %s", "world")
	l.Warn("careful")
	l.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Regexp(t, `^\[INFO\] \d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} - hello world$`, lines[0])
	assert.Regexp(t, `^\[WARN\] \d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} - careful$`, lines[1])
}

func TestLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system_log.txt")

	l := New(path)
	l.Info("first")
	l.Close()

	l = New(path)
	l.Info("second")
	l.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestLoggerSurvivesUnwritablePath(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "missing", "nested", "log.txt"))
	defer l.Close()

	// Console-only fallback; must not panic.
	l.Error("storage is gone")
}
