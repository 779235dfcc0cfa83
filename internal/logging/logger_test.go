package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelDebug, JSON: true, Output: &buf})
	defer Init(DefaultConfig())

	Info("alarm triggered", KeyState, "TRIGGERED", KeyAttempt, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "alarm triggered", entry["msg"])
	assert.Equal(t, "TRIGGERED", entry[KeyState])
	assert.Equal(t, float64(1), entry[KeyAttempt])
}

func TestInitRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelWarn, Output: &buf})
	defer Init(DefaultConfig())

	Info("hidden")
	DebugLog("also hidden")
	Warn("shown")

	s := buf.String()
	assert.NotContains(t, s, "hidden")
	assert.Contains(t, s, "shown")
	assert.False(t, Debug)
}

func TestWithCarriesAttributes(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: slog.LevelInfo, JSON: true, Output: &buf})
	defer Init(DefaultConfig())

	log := With(KeyCycleID, "abc-123")
	log.Info("cycle started")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc-123", entry[KeyCycleID])
}
