// Package report builds the per-run delegation tree and every aggregation
// view the CLI exposes, grounded on the matcher and table rules in the
// spec this module implements; internal/report/format renders the results.
package report

import (
	"sort"

	"github.com/cuemby/delegator/internal/eventstore"
)

// Node is one delegation: a matched DelegationStart/DelegationEnd pair, or
// a DelegationStart still waiting for its end (Pending, Success == nil).
type Node struct {
	RunID     string
	AgentName string
	Provider  string
	Model     string
	Depth     uint32
	Agentic   bool

	StartTime    eventstore.RawEvent
	StartSeq     int
	DurationMs   uint64
	Success      *bool
	ErrorMessage *string
	TokensUsed   *uint64
	CostUSD      *float64
}

// InFlight reports whether this node has no matching end event yet.
func (n *Node) InFlight() bool { return n.Success == nil }

// BuildNodes matches DelegationStart/DelegationEnd events from a single
// run into a chronological node list, following the FIFO (agent_name,
// depth) pairing rule: the first unmatched start for a given
// (agent_name, depth) pair is matched against the next end event that
// shares that pair, in file order.
func BuildNodes(events []eventstore.RawEvent) []Node {
	type pending struct {
		node *Node
		seq  int
	}

	nodes := make([]*Node, 0, len(events))
	queues := map[[2]any][]*pending{}

	key := func(agent string, depth uint32) [2]any { return [2]any{agent, depth} }

	for i, e := range events {
		switch e.Str("event_type") {
		case "DelegationStart":
			agentic, _ := e["agentic"].(bool)
			n := &Node{
				RunID:     e.Str("run_id"),
				AgentName: e.Str("agent_name"),
				Provider:  e.Str("provider"),
				Model:     e.Str("model"),
				Depth:     uint32(e.U64("depth")),
				Agentic:   agentic,
				StartTime: e,
				StartSeq:  i,
			}
			nodes = append(nodes, n)
			k := key(n.AgentName, n.Depth)
			queues[k] = append(queues[k], &pending{node: n, seq: i})

		case "DelegationEnd":
			agent := e.Str("agent_name")
			depth := uint32(e.U64("depth"))
			k := key(agent, depth)
			q := queues[k]
			if len(q) == 0 {
				continue // orphan end: no matching start, never underflows in-flight
			}
			p := q[0]
			queues[k] = q[1:]

			success := e.Bool("success")
			p.node.DurationMs = e.U64("duration_ms")
			p.node.Success = &success
			p.node.ErrorMessage = e.StrPtr("error_message")
			p.node.TokensUsed = e.U64Ptr("tokens_used")
			p.node.CostUSD = e.F64Ptr("cost_usd")
		}
	}

	sort.SliceStable(nodes, func(i, j int) bool {
		ti, tj := nodes[i].StartTime.Time(), nodes[j].StartTime.Time()
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return nodes[i].StartSeq < nodes[j].StartSeq
	})

	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = *n
	}
	return out
}

// BuildAllNodes matches events spanning any number of runs. Matching is
// performed separately per run_id before the results are concatenated,
// so two runs can never pair a start in one against an end in another —
// the cross-run collision the FIFO matcher rule explicitly excludes.
func BuildAllNodes(events []eventstore.RawEvent) []Node {
	byRun := map[string][]eventstore.RawEvent{}
	order := []string{}
	for _, e := range events {
		runID := e.Str("run_id")
		if runID == "" {
			continue
		}
		if _, ok := byRun[runID]; !ok {
			order = append(order, runID)
		}
		byRun[runID] = append(byRun[runID], e)
	}

	var all []Node
	for _, runID := range order {
		all = append(all, BuildNodes(byRun[runID])...)
	}
	return all
}
