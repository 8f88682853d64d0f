package report

import (
	"sort"

	"github.com/cuemby/delegator/internal/report/format"
)

// Failed renders every completed-but-unsuccessful delegation, newest
// first, with its truncated error message.
func Failed(nodes []Node) Table {
	var rows [][]string
	for _, n := range sortedByStart(nodes) {
		if n.InFlight() || *n.Success {
			continue
		}
		rows = append(rows, []string{n.AgentName, n.Model, durationMs(n.DurationMs), errMsg(n.ErrorMessage)})
	}
	reverse(rows)
	if len(rows) == 0 {
		return noData("no failed delegations recorded")
	}
	return Table{Header: []string{"AGENT", "MODEL", "DURATION", "ERROR"}, Rows: rows}
}

func errMsg(msg *string) string {
	if msg == nil {
		return format.Missing
	}
	return format.TruncateError(*msg)
}

// Slowest renders the limit slowest completed delegations by duration.
func Slowest(nodes []Node, limit int) Table {
	completed := completedOnly(nodes)
	sort.SliceStable(completed, func(i, j int) bool { return completed[i].DurationMs > completed[j].DurationMs })
	completed = limitNodes(completed, limit)
	return renderNodeList(completed, []string{"AGENT", "MODEL", "DURATION", "TOKENS", "COST", "STATUS"}, func(n Node) []string {
		return []string{n.AgentName, n.Model, durationMs(n.DurationMs), uitoaPtr(n.TokensUsed), moneyPtr(n.CostUSD), statusOf(n)}
	})
}

// MostRecent renders the limit most recently started delegations.
func MostRecent(nodes []Node, limit int) Table {
	all := sortedByStart(nodes)
	reverseNodes(all)
	all = limitNodes(all, limit)
	return renderNodeList(all, []string{"AGENT", "MODEL", "DURATION", "TOKENS", "COST", "STATUS"}, func(n Node) []string {
		return []string{n.AgentName, n.Model, durationMs(n.DurationMs), uitoaPtr(n.TokensUsed), moneyPtr(n.CostUSD), statusOf(n)}
	})
}

// Active renders every in-flight delegation, oldest start first.
func Active(nodes []Node) Table {
	var active []Node
	for _, n := range sortedByStart(nodes) {
		if n.InFlight() {
			active = append(active, n)
		}
	}
	if len(active) == 0 {
		return noData("no active delegations")
	}
	return renderNodeList(active, []string{"AGENT", "MODEL", "DEPTH", "STATUS"}, func(n Node) []string {
		return []string{n.AgentName, n.Model, uitoa(uint64(n.Depth)), "running"}
	})
}

// SuccessBreakdown renders the ok-vs-failed split across all completed
// delegations in scope.
func SuccessBreakdown(nodes []Node) Table {
	var ok, failed uint64
	for _, n := range nodes {
		if n.InFlight() {
			continue
		}
		if *n.Success {
			ok++
		} else {
			failed++
		}
	}
	total := ok + failed
	if total == 0 {
		return noData("no completed delegations recorded")
	}
	return Table{
		Header: []string{"OUTCOME", "COUNT", "PERCENT"},
		Rows: [][]string{
			{"success", uitoa(ok), percent(float64(ok) / float64(total))},
			{"failed", uitoa(failed), percent(float64(failed) / float64(total))},
		},
		Footer: []string{"TOTAL", uitoa(total), "100.0%"},
	}
}

// CostBreakdown renders the cost table broken out per run, sorted by run_id
// ascending — distinct from RunCostRank, which sorts the same grouping by
// cost desc.
func CostBreakdown(nodes []Node) Table {
	g := groupByKey(nodes, runKey)
	sortByKeyAsc(g)
	return renderGrouped(g)
}

// TokenEfficiency renders cost-per-1k-tokens, bucketed.
func TokenEfficiency(nodes []Node) Table {
	g := groupByKey(nodes, func(n Node) (string, bool) {
		if n.TokensUsed == nil || *n.TokensUsed == 0 || n.CostUSD == nil {
			return "", false
		}
		perK := (*n.CostUSD / float64(*n.TokensUsed)) * 1000
		return costBucket(perK), true
	})
	sortByFixedOrder(g, costBucketOrder)
	return renderGrouped(g)
}

// HistoryByAgent, HistoryByModel, and HistoryByProvider render every
// delegation matching an exact name, newest first.
func HistoryByAgent(nodes []Node, name string) Table {
	return history(nodes, func(n Node) bool { return n.AgentName == name })
}

func HistoryByModel(nodes []Node, name string) Table {
	return history(nodes, func(n Node) bool { return n.Model == name })
}

func HistoryByProvider(nodes []Node, name string) Table {
	return history(nodes, func(n Node) bool { return n.Provider == name })
}

func history(nodes []Node, match func(Node) bool) Table {
	var matched []Node
	for _, n := range sortedByStart(nodes) {
		if match(n) {
			matched = append(matched, n)
		}
	}
	reverseNodes(matched)
	if len(matched) == 0 {
		return noData("no matching delegations recorded")
	}
	return renderNodeList(matched, []string{"AGENT", "MODEL", "DURATION", "TOKENS", "COST", "STATUS"}, func(n Node) []string {
		return []string{n.AgentName, n.Model, durationMs(n.DurationMs), uitoaPtr(n.TokensUsed), moneyPtr(n.CostUSD), statusOf(n)}
	})
}

// DepthLevel renders every delegation at exactly the given depth,
// newest first.
func DepthLevel(nodes []Node, depth uint32) Table {
	return history(nodes, func(n Node) bool { return n.Depth == depth })
}

func completedOnly(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if !n.InFlight() {
			out = append(out, n)
		}
	}
	return out
}

func limitNodes(nodes []Node, limit int) []Node {
	if limit <= 0 || limit >= len(nodes) {
		return nodes
	}
	return nodes[:limit]
}

func reverseNodes(nodes []Node) {
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
}

func reverse(rows [][]string) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}

func renderNodeList(nodes []Node, header []string, rowFn func(Node) []string) Table {
	if len(nodes) == 0 {
		return noData("no data")
	}
	rows := make([][]string, len(nodes))
	for i, n := range nodes {
		rows[i] = rowFn(n)
	}
	return Table{Header: header, Rows: rows}
}
