package report

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cuemby/delegator/internal/eventstore"
)

func TestAgentCostRankRespectsLimit(t *testing.T) {
	tokens := float64(10)
	cost := float64(0.01)
	var events []eventstore.RawEvent
	for _, agent := range []string{"a", "b", "c"} {
		events = append(events, endNode(agent, "m", 100, &tokens, &cost, true)...)
	}
	nodes := BuildNodes(events)

	table := AgentCostRank(nodes, 2)
	require.Len(t, table.Rows, 2)

	unlimited := AgentCostRank(nodes, 0)
	require.Len(t, unlimited.Rows, 3)
}
