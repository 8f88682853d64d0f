package eventstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/delegator/internal/telemetry"
)

func TestWriterWritesStartAndEndRecords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "delegation.jsonl")

	w := NewWriter(path)
	require.NotEmpty(t, w.RunID())

	w.RecordEvent(telemetry.DelegationStart("researcher", "anthropic", "claude", 1, true))

	tokens := uint64(42)
	cost := 0.0123
	w.RecordEvent(telemetry.DelegationEnd("researcher", "anthropic", "claude", 1, 250*time.Millisecond, true, nil, &tokens, &cost))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := splitLines(raw)
	require.Len(t, lines, 2)

	var start map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &start))
	assert.Equal(t, "DelegationStart", start["event_type"])
	assert.Equal(t, w.RunID(), start["run_id"])
	assert.Equal(t, true, start["agentic"])
	_, hasTokens := start["tokens_used"]
	assert.False(t, hasTokens, "start record must not carry tokens_used")

	var end map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &end))
	assert.Equal(t, "DelegationEnd", end["event_type"])
	assert.Equal(t, float64(250), end["duration_ms"])
	assert.Equal(t, float64(42), end["tokens_used"])
	assert.Nil(t, end["error_message"])
}

func TestWriterWritesTokensAsNullWhenUnknown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "delegation.jsonl")

	w := NewWriter(path)
	w.RecordEvent(telemetry.DelegationEnd("agent", "openai", "gpt", 0, time.Second, false, nil, nil, nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(splitLines(raw)[0], &decoded))

	tokensRaw, present := decoded["tokens_used"]
	assert.True(t, present, "tokens_used key must be present even when unknown")
	assert.Nil(t, tokensRaw)

	costRaw, present := decoded["cost_usd"]
	assert.True(t, present, "cost_usd key must be present even when unknown")
	assert.Nil(t, costRaw)
}

func TestWriterIgnoresNonDelegationEvents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "delegation.jsonl")

	w := NewWriter(path)
	w.RecordEvent(telemetry.Event{Type: telemetry.EventHeartbeatTick})

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "heartbeat events must not create the log file")
}

func splitLines(raw []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i, b := range raw {
		if b == '\n' {
			if i > start {
				lines = append(lines, raw[start:i])
			}
			start = i + 1
		}
	}
	if start < len(raw) {
		lines = append(lines, raw[start:])
	}
	return lines
}
