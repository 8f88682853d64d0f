package report

import "github.com/cuemby/delegator/internal/report/format"

// Diff renders a side-by-side per-agent comparison of two runs' nodes:
// delegation count, tokens, and cost in each run plus the deltas.
func Diff(nodesA, nodesB []Node) Table {
	a := groupByKey(nodesA, agentKey)
	b := groupByKey(nodesB, agentKey)

	byAgent := map[string]*groupStat{}
	order := []string{}
	for _, g := range a {
		byAgent[g.Key] = g
		order = append(order, g.Key)
	}
	for _, g := range b {
		if _, ok := byAgent[g.Key]; !ok {
			order = append(order, g.Key)
		}
	}

	bByKey := map[string]*groupStat{}
	for _, g := range b {
		bByKey[g.Key] = g
	}

	if len(order) == 0 {
		return noData("no delegations recorded in either run")
	}

	rows := make([][]string, 0, len(order))
	for _, key := range order {
		ga := a0(byAgent[key])
		gb := a0(bByKey[key])
		deltaTok := int64(gb.TokensSum) - int64(ga.TokensSum)
		deltaCost := gb.CostSum - ga.CostSum
		rows = append(rows, []string{
			key,
			uitoa(ga.Count), uitoa(gb.Count),
			uitoa(ga.TokensSum), uitoa(gb.TokensSum), format.Signed(deltaTok),
			money(ga.CostSum), money(gb.CostSum), format.SignedMoney(deltaCost),
		})
	}

	return Table{
		Header: []string{"AGENT", "DEL_A", "DEL_B", "TOK_A", "TOK_B", "Δ_TOK", "COST_A", "COST_B", "Δ_COST"},
		Rows:   rows,
	}
}

func a0(g *groupStat) *groupStat {
	if g == nil {
		return &groupStat{}
	}
	return g
}
