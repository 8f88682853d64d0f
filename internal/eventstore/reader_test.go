package eventstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAllMissingFileIsEmpty(t *testing.T) {
	events, err := ReadAll(filepath.Join(t.TempDir(), "missing.jsonl"))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestReadAllSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "delegation.jsonl")
	content := `{"event_type":"DelegationStart","run_id":"r1","agent_name":"a","timestamp":"2026-07-30T10:00:00Z"}
not json at all
{"event_type":"DelegationEnd","run_id":"r1","agent_name":"a","tokens_used":10,"cost_usd":0.5,"timestamp":"2026-07-30T10:00:01Z"}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	events, err := ReadAll(path)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "DelegationStart", events[0].Str("event_type"))
	assert.Equal(t, uint64(10), events[1].U64("tokens_used"))
}

func TestRawEventTimeParsesRFC3339(t *testing.T) {
	ev := RawEvent{"timestamp": "2026-07-30T10:00:00Z"}
	tm := ev.Time()
	assert.Equal(t, 2026, tm.Year())
}

func TestRawEventTimeZeroOnBadTimestamp(t *testing.T) {
	ev := RawEvent{"timestamp": "not-a-time"}
	assert.True(t, ev.Time().IsZero())
}
