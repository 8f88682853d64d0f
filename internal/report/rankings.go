package report

import "sort"

// TopByTokens and TopByCost are the global leaderboards: every completed
// delegation (across all runs, when nodes come from BuildAllNodes),
// ranked by tokens or cost descending and capped at limit.
func TopByTokens(nodes []Node, limit int) Table {
	return topIndividual(nodes, limit, func(n Node) uint64 {
		if n.TokensUsed == nil {
			return 0
		}
		return *n.TokensUsed
	})
}

func TopByCost(nodes []Node, limit int) Table {
	completed := completedOnly(nodes)
	less := func(i, j int) bool { return costOf(completed[i]) > costOf(completed[j]) }
	sortNodesBy(completed, less)
	completed = limitNodes(completed, limit)
	return renderNodeList(completed, []string{"AGENT", "MODEL", "RUN_ID", "TOKENS", "COST", "STATUS"}, func(n Node) []string {
		return []string{n.AgentName, n.Model, n.RunID, uitoaPtr(n.TokensUsed), moneyPtr(n.CostUSD), statusOf(n)}
	})
}

func topIndividual(nodes []Node, limit int, valueOf func(Node) uint64) Table {
	completed := completedOnly(nodes)
	less := func(i, j int) bool { return valueOf(completed[i]) > valueOf(completed[j]) }
	sortNodesBy(completed, less)
	completed = limitNodes(completed, limit)
	return renderNodeList(completed, []string{"AGENT", "MODEL", "RUN_ID", "TOKENS", "COST", "STATUS"}, func(n Node) []string {
		return []string{n.AgentName, n.Model, n.RunID, uitoaPtr(n.TokensUsed), moneyPtr(n.CostUSD), statusOf(n)}
	})
}

func costOf(n Node) float64 {
	if n.CostUSD == nil {
		return 0
	}
	return *n.CostUSD
}

func sortNodesBy(nodes []Node, less func(i, j int) bool) {
	sort.SliceStable(nodes, less)
}

// AgentCostRank, ModelCostRank, ProviderCostRank, and RunCostRank rank
// their respective key by total cost descending, capped at limit (0 or
// >= the group count means "no cap").
func AgentCostRank(nodes []Node, limit int) Table {
	return rankBy(nodes, agentKey, sortByCostDesc, limit)
}
func ModelCostRank(nodes []Node, limit int) Table {
	return rankBy(nodes, modelKey, sortByCostDesc, limit)
}
func ProviderCostRank(nodes []Node, limit int) Table {
	return rankBy(nodes, providerKey, sortByCostDesc, limit)
}
func RunCostRank(nodes []Node, limit int) Table {
	return rankBy(nodes, runKey, sortByCostDesc, limit)
}

// AgentSuccessRank, ModelSuccessRank, ProviderSuccessRank, and
// RunSuccessRank rank by success rate descending, capped at limit.
func AgentSuccessRank(nodes []Node, limit int) Table {
	return rankBy(nodes, agentKey, sortBySuccessRateDesc, limit)
}
func ModelSuccessRank(nodes []Node, limit int) Table {
	return rankBy(nodes, modelKey, sortBySuccessRateDesc, limit)
}
func ProviderSuccessRank(nodes []Node, limit int) Table {
	return rankBy(nodes, providerKey, sortBySuccessRateDesc, limit)
}
func RunSuccessRank(nodes []Node, limit int) Table {
	return rankBy(nodes, runKey, sortBySuccessRateDesc, limit)
}

// AgentTokenRank, ModelTokenRank, ProviderTokenRank, and RunTokenRank
// rank by total tokens descending, capped at limit.
func AgentTokenRank(nodes []Node, limit int) Table {
	return rankBy(nodes, agentKey, sortByTokensDesc, limit)
}
func ModelTokenRank(nodes []Node, limit int) Table {
	return rankBy(nodes, modelKey, sortByTokensDesc, limit)
}
func ProviderTokenRank(nodes []Node, limit int) Table {
	return rankBy(nodes, providerKey, sortByTokensDesc, limit)
}
func RunTokenRank(nodes []Node, limit int) Table {
	return rankBy(nodes, runKey, sortByTokensDesc, limit)
}

// AgentDurationRank ranks agents by average duration descending, capped
// at limit.
func AgentDurationRank(nodes []Node, limit int) Table {
	return rankBy(nodes, agentKey, sortByAvgDurationDesc, limit)
}

func agentKey(n Node) (string, bool)    { return n.AgentName, true }
func modelKey(n Node) (string, bool)    { return n.Model, true }
func providerKey(n Node) (string, bool) { return n.Provider, true }
func runKey(n Node) (string, bool) {
	if n.RunID == "" {
		return "", false
	}
	return n.RunID, true
}

func rankBy(nodes []Node, keyFn func(Node) (string, bool), sortFn func([]*groupStat), limit int) Table {
	g := groupByKey(nodes, keyFn)
	sortFn(g)
	g = limitGroups(g, limit)
	return renderGrouped(g)
}
