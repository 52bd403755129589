package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	return entry
}

func TestLoggerWritesFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"font_size": "24px", "panel": "open"}).Debug("selection applied")

	entry := decode(t, buf)
	assert.Equal(t, "selection applied", entry["message"])
	assert.Equal(t, "24px", entry["font_size"])
	assert.Equal(t, "open", entry["panel"])
	assert.Equal(t, "debug", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestLoggerRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "WARN", Writer: buf})
	require.NoError(t, err)

	log.Info("hidden")
	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Equal(t, "warn", decode(t, buf)["level"])
}

func TestLoggerError(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Error(errors.New("boom"), "render failed")
	entry := decode(t, buf)
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "render failed", entry["message"])
}

func TestLoggerHumanReadable(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Info("program started")
	assert.Contains(t, buf.String(), "INF")
	assert.Contains(t, buf.String(), "program started")
}

func TestLoggerInvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}

func TestNilAndNopLoggers(t *testing.T) {
	t.Parallel()

	var log *Logger
	assert.NotPanics(t, func() {
		log.Info("x")
		log.Debug("x")
		log.Warn("x")
		log.Error(nil, "x")
		assert.Nil(t, log.WithFields(map[string]any{"a": 1}))
	})
	assert.NotPanics(t, func() { Nop().Info("x") })
}
