package eventstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRunIndexGroupsAndSorts(t *testing.T) {
	events := []RawEvent{
		{"event_type": "DelegationStart", "run_id": "old", "timestamp": "2026-01-01T00:00:00Z"},
		{"event_type": "DelegationEnd", "run_id": "old", "tokens_used": float64(10), "cost_usd": 0.1, "timestamp": "2026-01-01T00:00:01Z"},
		{"event_type": "DelegationStart", "run_id": "new", "timestamp": "2026-02-01T00:00:00Z"},
		{"event_type": "DelegationEnd", "run_id": "new", "tokens_used": float64(20), "cost_usd": 0.2, "timestamp": "2026-02-01T00:00:01Z"},
		{"event_type": "DelegationStart", "run_id": ""},
	}

	runs := BuildRunIndex(events)
	require.Len(t, runs, 2)
	assert.Equal(t, "new", runs[0].RunID, "newest run must sort first")
	assert.Equal(t, "old", runs[1].RunID)
	assert.Equal(t, uint64(1), runs[0].DelegationCount)
	assert.Equal(t, uint64(20), runs[0].TotalTokens)
	assert.InDelta(t, 0.2, runs[0].TotalCostUSD, 1e-9)
}

func TestBuildRunIndexRunsWithoutTimestampSortLast(t *testing.T) {
	events := []RawEvent{
		{"event_type": "DelegationStart", "run_id": "no-time"},
		{"event_type": "DelegationStart", "run_id": "has-time", "timestamp": "2026-01-01T00:00:00Z"},
	}

	runs := BuildRunIndex(events)
	require.Len(t, runs, 2)
	assert.Equal(t, "has-time", runs[0].RunID)
	assert.Equal(t, "no-time", runs[1].RunID)
}
