package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codecrafters-io/sqlite-varint-go/internal/config"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, zerolog.DebugLevel)

	log.Info("decoded", "value", 128, "bytes", 2)

	entry := decodeLine(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "decoded", entry["message"])
	assert.EqualValues(t, 128, entry["value"])
	assert.EqualValues(t, 2, entry["bytes"])
}

func TestLoggerErrorField(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, zerolog.DebugLevel)

	log.Error("decode failed", "error", errors.New("varint: truncated input"), "dangling")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "varint: truncated input", entry["error"])
	assert.NotContains(t, entry, "dangling")
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, zerolog.DebugLevel).With("command", "scan")

	log.Warn("stopped")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "scan", entry["command"])
	assert.Equal(t, "warn", entry["level"])
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, zerolog.InfoLevel)

	log.Debug("hidden")
	assert.Zero(t, buf.Len())
}

func TestGlobal(t *testing.T) {
	prev := Global()
	t.Cleanup(func() { SetGlobal(prev) })

	nop := Nop()
	SetGlobal(nop)
	assert.Same(t, nop, Global())
}

func TestNewFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "varint.log")
	log, closer, err := NewFromConfig(config.LoggingConfig{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)

	log.Debug("written")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"written"`)
}

func TestNewFromConfigBadLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "varint.log")
	log, closer, err := NewFromConfig(config.LoggingConfig{Level: "bogus", Format: "json", Output: path})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("shown")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}
