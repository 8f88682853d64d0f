package report

import (
	"fmt"
	"sort"

	"github.com/cuemby/delegator/internal/eventstore"
)

// Summary renders the overall cross-run summary: runs stored, total
// delegations, total tokens, total cost, and the most recent run's
// start time.
func Summary(runs []eventstore.RunInfo) Table {
	if len(runs) == 0 {
		return noData("no delegation data recorded yet")
	}

	var delegations, tokens uint64
	var cost float64
	for _, r := range runs {
		delegations += r.DelegationCount
		tokens += r.TotalTokens
		cost += r.TotalCostUSD
	}

	latest := "—"
	if runs[0].HasStartTime {
		latest = runs[0].StartTime.Format("2006-01-02T15:04:05Z")
	}

	return Table{
		Header: []string{"METRIC", "VALUE"},
		Rows: [][]string{
			{"Runs stored", uitoa(uint64(len(runs)))},
			{"Delegations", uitoa(delegations)},
			{"Total tokens", uitoa(tokens)},
			{"Total cost", money(cost)},
			{"Latest run", latest},
		},
	}
}

// RunsList renders every run, newest first, with its summary stats.
func RunsList(runs []eventstore.RunInfo) Table {
	if len(runs) == 0 {
		return noData("no runs recorded yet")
	}
	rows := make([][]string, len(runs))
	for i, r := range runs {
		start := "—"
		if r.HasStartTime {
			start = r.StartTime.Format("2006-01-02T15:04:05Z")
		}
		rows[i] = []string{r.RunID, start, uitoa(r.DelegationCount), uitoa(r.TotalTokens), money(r.TotalCostUSD)}
	}
	return Table{
		Header: []string{"RUN_ID", "START_TIME", "DELEGATIONS", "TOKENS", "COST"},
		Rows:   rows,
	}
}

// Tree renders a single run's delegation nodes as a depth-indented
// chronological report, one row per node.
func Tree(nodes []Node) Table {
	if len(nodes) == 0 {
		return noData("no delegations recorded for this run")
	}

	rows := make([][]string, len(nodes))
	var delegations, tokens uint64
	var cost float64
	for i, n := range nodes {
		indent := ""
		for d := uint32(0); d < n.Depth; d++ {
			indent += "  "
		}
		status := statusOf(n)
		rows[i] = []string{
			indent + n.AgentName,
			n.Model,
			durationMs(n.DurationMs),
			uitoaPtr(n.TokensUsed),
			moneyPtr(n.CostUSD),
			status,
		}
		delegations++
		if n.TokensUsed != nil {
			tokens += *n.TokensUsed
		}
		if n.CostUSD != nil {
			cost += *n.CostUSD
		}
	}

	return Table{
		Header: []string{"AGENT", "MODEL", "DURATION", "TOKENS", "COST", "STATUS"},
		Rows:   rows,
		Footer: []string{"TOTAL", "", "", uitoa(tokens), money(cost), fmt.Sprintf("%d delegations", delegations)},
	}
}

func statusOf(n Node) string {
	if n.InFlight() {
		return "running"
	}
	if *n.Success {
		return "OK"
	}
	return "FAILED"
}

// sortedByStart returns nodes ordered by their start timestamp, oldest
// first, used by every "history" / "chronological" view.
func sortedByStart(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	copy(out, nodes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Time().Before(out[j].StartTime.Time())
	})
	return out
}
