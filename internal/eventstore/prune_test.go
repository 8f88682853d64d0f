package eventstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPruneKeepsOnlyNewestRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "delegation.jsonl")
	lines := []string{
		`{"event_type":"DelegationStart","run_id":"r1","timestamp":"2026-01-01T00:00:00Z"}`,
		`{"event_type":"DelegationEnd","run_id":"r1","tokens_used":1,"cost_usd":0.1,"timestamp":"2026-01-01T00:00:01Z"}`,
		`{"event_type":"DelegationStart","run_id":"r2","timestamp":"2026-02-01T00:00:00Z"}`,
		`{"event_type":"DelegationEnd","run_id":"r2","tokens_used":2,"cost_usd":0.2,"timestamp":"2026-02-01T00:00:01Z"}`,
		`{"event_type":"DelegationStart","run_id":"r3","timestamp":"2026-03-01T00:00:00Z"}`,
		`{"event_type":"DelegationEnd","run_id":"r3","tokens_used":3,"cost_usd":0.3,"timestamp":"2026-03-01T00:00:01Z"}`,
	}
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))

	require.NoError(t, Prune(path, 2))

	events, err := ReadAll(path)
	require.NoError(t, err)
	require.Len(t, events, 4)

	runs := BuildRunIndex(events)
	require.Len(t, runs, 2)
	assert.Equal(t, "r3", runs[0].RunID)
	assert.Equal(t, "r2", runs[1].RunID)
}

func TestPruneKeepZeroRemovesEverything(t *testing.T) {
	path := filepath.Join(t.TempDir(), "delegation.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(`{"event_type":"DelegationStart","run_id":"r1","timestamp":"2026-01-01T00:00:00Z"}`+"\n"), 0o644))

	require.NoError(t, Prune(path, 0))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(string(raw)))
}

func TestPruneMissingFileIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.jsonl")
	err := Prune(path, 5)
	assert.NoError(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "pruning a missing log must not create it")
}
