package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// capture routes logs into a buffer and restores defaults afterwards.
func capture(t *testing.T, verbose bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verbose)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	defer SetVerbose(false)

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_WhenVerbose(t *testing.T) {
	buf := capture(t, true)

	Debug("test message", "key", "value")

	out := buf.String()
	assert.Contains(t, out, "DBG")
	assert.Contains(t, out, "test message")
	assert.Contains(t, out, "key=value")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("test message")
	Info("info message")
	Warn("warn message")

	assert.Zero(t, buf.Len(), "expected no output when verbose is disabled")
}

func TestError_AlwaysPrinted(t *testing.T) {
	buf := capture(t, false)

	Error("database unavailable", "path", "/tmp/pets.db")

	out := buf.String()
	assert.Contains(t, out, "ERR")
	assert.Contains(t, out, "database unavailable")
	assert.Contains(t, out, "path=/tmp/pets.db")
}

func TestInfoAndWarn_WhenVerbose(t *testing.T) {
	buf := capture(t, true)

	Info("info message", "n", 3)
	Warn("warn message")

	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "info message")
	assert.Contains(t, out, "n=3")
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "warn message")
}

func TestNoColorForNonTerminal(t *testing.T) {
	buf := capture(t, true)

	Warn("plain")

	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestSection(t *testing.T) {
	buf := capture(t, true)

	Section("Search")

	assert.Equal(t, "\n=== Search ===\n", buf.String())
}

func TestSection_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Section("Search")

	assert.Zero(t, buf.Len())
}

func TestSlog_ReflectsOutput(t *testing.T) {
	buf := capture(t, true)

	Slog().Info("via slog")

	assert.Contains(t, buf.String(), "via slog")
}
