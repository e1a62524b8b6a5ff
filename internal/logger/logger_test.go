package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "WARN", Writer: &buf})
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"shown"`)
	assert.Contains(t, out, `"level":"warn"`)
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestWithAddsField(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	log.With("command", "html").Debug("start")
	assert.Contains(t, buf.String(), `"command":"html"`)
}

func TestNilLoggerIsSafe(t *testing.T) {
	var log *Logger
	assert.NotPanics(t, func() {
		log.Info("x")
		log.Debug("x")
		log.Warn("x")
		_ = log.With("a", "b")
		_ = log.Zerolog()
	})
}
