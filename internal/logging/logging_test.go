package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "warn"}, &buf)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("invalid structure", zap.String("structure", "((x"))
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "invalid structure")
	assert.Contains(t, out, "((x")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", Format: FormatJSON}, &buf)
	require.NoError(t, err)

	log.Debug("scan", zap.Int("stems", 3))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "scan", entry["msg"])
	assert.EqualValues(t, 3, entry["stems"])
}

func TestNew_QuietRaisesLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", Quiet: true}, &buf)
	require.NoError(t, err)
	log.Warn("dropped")
	assert.Empty(t, buf.String())
	assert.True(t, log.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew_Rejects(t *testing.T) {
	_, err := New(Options{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
	_, err = New(Options{Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}
