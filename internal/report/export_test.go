package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/delegator/internal/eventstore"
)

func TestExportJSONLRoundTrips(t *testing.T) {
	events := []eventstore.RawEvent{
		ev("DelegationStart", map[string]any{"run_id": "r1", "agent_name": "a"}),
		ev("DelegationEnd", map[string]any{"run_id": "r1", "agent_name": "a", "tokens_used": float64(10)}),
	}
	var buf bytes.Buffer
	require.NoError(t, ExportJSONL(&buf, events))

	lines := strings.Count(buf.String(), "\n")
	assert.Equal(t, 2, lines)

	for i, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		var decoded eventstore.RawEvent
		require.NoError(t, json.Unmarshal([]byte(line), &decoded))
		assert.Equal(t, events[i], decoded)
	}
}

func TestExportCSVOnlyIncludesEndEvents(t *testing.T) {
	events := []eventstore.RawEvent{
		ev("DelegationStart", map[string]any{"run_id": "r1", "agent_name": "a"}),
		ev("DelegationEnd", map[string]any{"run_id": "r1", "agent_name": "a", "tokens_used": float64(10), "cost_usd": 0.5, "success": true}),
	}
	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, events))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2) // header + one DelegationEnd row
	assert.Equal(t, "DelegationEnd", records[1][0])
	assert.Equal(t, "10", records[1][9])
	assert.Equal(t, "0.5000", records[1][10])
}
