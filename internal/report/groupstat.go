package report

// groupStat accumulates the uniform {count, ok_count, tokens_sum,
// cost_sum} aggregate every grouped view computes, plus the duration sum
// needed to report an average.
type groupStat struct {
	Key             string
	Count           uint64
	OkCount         uint64
	TokensSum       uint64
	CostSum         float64
	DurationSumMs   uint64
	DurationSamples uint64
}

func (g *groupStat) SuccessRate() float64 {
	if g.Count == 0 {
		return 0
	}
	return float64(g.OkCount) / float64(g.Count)
}

func (g *groupStat) AvgDurationMs() uint64 {
	if g.DurationSamples == 0 {
		return 0
	}
	return g.DurationSumMs / g.DurationSamples
}

// groupByKey groups completed (non-in-flight) nodes by keyFn, skipping
// nodes for which keyFn's second return is false. Insertion order of
// first appearance is preserved in the returned slice so callers can
// re-sort deterministically.
func groupByKey(nodes []Node, keyFn func(Node) (string, bool)) []*groupStat {
	order := []string{}
	byKey := map[string]*groupStat{}

	for _, n := range nodes {
		if n.InFlight() {
			continue
		}
		key, ok := keyFn(n)
		if !ok {
			continue
		}
		g, exists := byKey[key]
		if !exists {
			g = &groupStat{Key: key}
			byKey[key] = g
			order = append(order, key)
		}
		g.Count++
		if *n.Success {
			g.OkCount++
		}
		if n.TokensUsed != nil {
			g.TokensSum += *n.TokensUsed
		}
		if n.CostUSD != nil {
			g.CostSum += *n.CostUSD
		}
		g.DurationSumMs += n.DurationMs
		g.DurationSamples++
	}

	out := make([]*groupStat, 0, len(order))
	for _, k := range order {
		out = append(out, byKey[k])
	}
	return out
}

// statsRow renders one groupStat as the standard column set: key, count,
// ok_count, success rate, tokens sum, cost sum, avg duration.
func statsRow(g *groupStat) []string {
	return []string{
		g.Key,
		uitoa(g.Count),
		uitoa(g.OkCount),
		percent(g.SuccessRate()),
		uitoa(g.TokensSum),
		money(g.CostSum),
		durationMs(g.AvgDurationMs()),
	}
}

var statsHeader = []string{"KEY", "COUNT", "OK", "SUCCESS%", "TOKENS", "COST", "AVG_DURATION"}

func statsFooter(groups []*groupStat) []string {
	var count, ok, tokens uint64
	var cost float64
	for _, g := range groups {
		count += g.Count
		ok += g.OkCount
		tokens += g.TokensSum
		cost += g.CostSum
	}
	rate := 0.0
	if count > 0 {
		rate = float64(ok) / float64(count)
	}
	return []string{"TOTAL", uitoa(count), uitoa(ok), percent(rate), uitoa(tokens), money(cost), ""}
}
