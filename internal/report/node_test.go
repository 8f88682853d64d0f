package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/delegator/internal/eventstore"
)

func ev(t string, fields map[string]any) eventstore.RawEvent {
	raw := eventstore.RawEvent{"event_type": t}
	for k, v := range fields {
		raw[k] = v
	}
	return raw
}

func TestBuildNodesMatchesStartAndEnd(t *testing.T) {
	events := []eventstore.RawEvent{
		ev("DelegationStart", map[string]any{"run_id": "r1", "agent_name": "main", "depth": float64(0), "timestamp": "2026-01-01T00:00:00Z"}),
		ev("DelegationEnd", map[string]any{"run_id": "r1", "agent_name": "main", "depth": float64(0), "duration_ms": float64(5000), "success": true, "tokens_used": float64(1000), "cost_usd": 0.003, "timestamp": "2026-01-01T00:00:05Z"}),
	}
	nodes := BuildNodes(events)
	require.Len(t, nodes, 1)
	assert.False(t, nodes[0].InFlight())
	assert.True(t, *nodes[0].Success)
	assert.Equal(t, uint64(1000), *nodes[0].TokensUsed)
}

func TestBuildNodesFIFOPairsConcurrentDelegations(t *testing.T) {
	events := []eventstore.RawEvent{
		ev("DelegationStart", map[string]any{"run_id": "r1", "agent_name": "a", "depth": float64(0), "timestamp": "2026-01-01T00:00:00Z"}),
		ev("DelegationStart", map[string]any{"run_id": "r1", "agent_name": "a", "depth": float64(0), "timestamp": "2026-01-01T00:00:01Z"}),
		ev("DelegationEnd", map[string]any{"run_id": "r1", "agent_name": "a", "depth": float64(0), "duration_ms": float64(100), "success": true, "timestamp": "2026-01-01T00:00:02Z"}),
		ev("DelegationEnd", map[string]any{"run_id": "r1", "agent_name": "a", "depth": float64(0), "duration_ms": float64(200), "success": false, "timestamp": "2026-01-01T00:00:03Z"}),
	}
	nodes := BuildNodes(events)
	require.Len(t, nodes, 2)
	assert.Equal(t, uint64(100), nodes[0].DurationMs)
	assert.True(t, *nodes[0].Success)
	assert.Equal(t, uint64(200), nodes[1].DurationMs)
	assert.False(t, *nodes[1].Success)
}

func TestBuildNodesOrphanEndDoesNotUnderflow(t *testing.T) {
	events := []eventstore.RawEvent{
		ev("DelegationEnd", map[string]any{"run_id": "r1", "agent_name": "ghost", "depth": float64(0), "success": true}),
	}
	nodes := BuildNodes(events)
	assert.Empty(t, nodes)
}

func TestBuildNodesPendingStaysInFlight(t *testing.T) {
	events := []eventstore.RawEvent{
		ev("DelegationStart", map[string]any{"run_id": "r1", "agent_name": "a", "depth": float64(0), "timestamp": "2026-01-01T00:00:00Z"}),
	}
	nodes := BuildNodes(events)
	require.Len(t, nodes, 1)
	assert.True(t, nodes[0].InFlight())
}

func TestBuildNodesIsIdempotent(t *testing.T) {
	events := []eventstore.RawEvent{
		ev("DelegationStart", map[string]any{"run_id": "r1", "agent_name": "a", "depth": float64(0), "timestamp": "2026-01-01T00:00:00Z"}),
		ev("DelegationEnd", map[string]any{"run_id": "r1", "agent_name": "a", "depth": float64(0), "duration_ms": float64(10), "success": true, "timestamp": "2026-01-01T00:00:01Z"}),
	}
	first := BuildNodes(events)
	second := BuildNodes(events)
	require.Equal(t, len(first), len(second))
	assert.Equal(t, first[0].AgentName, second[0].AgentName)
	assert.Equal(t, *first[0].Success, *second[0].Success)
}
