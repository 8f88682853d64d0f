package report

// ByAgent, ByModel, and ByProvider group completed delegations by their
// respective key, ranked by tokens descending — the per-key stats views
// behind the `stats`, `models`, and `providers` commands.
func ByAgent(nodes []Node) Table {
	g := groupByKey(nodes, func(n Node) (string, bool) { return n.AgentName, true })
	sortByTokensDesc(g)
	return renderGrouped(g)
}

func ByModel(nodes []Node) Table {
	g := groupByKey(nodes, func(n Node) (string, bool) { return n.Model, true })
	sortByTokensDesc(g)
	return renderGrouped(g)
}

func ByProvider(nodes []Node) Table {
	g := groupByKey(nodes, func(n Node) (string, bool) { return n.Provider, true })
	sortByTokensDesc(g)
	return renderGrouped(g)
}

// ByDepth groups completed delegations by nesting depth.
func ByDepth(nodes []Node) Table {
	g := groupByKey(nodes, func(n Node) (string, bool) { return uitoa(uint64(n.Depth)), true })
	sortByKeyAsc(g)
	return renderGrouped(g)
}

// AgentModel, ProviderModel, and AgentProvider are the cross-product
// views, ranked by tokens descending.
func AgentModel(nodes []Node) Table {
	g := groupByKey(nodes, func(n Node) (string, bool) { return n.AgentName + " × " + n.Model, true })
	sortByTokensDesc(g)
	return renderGrouped(g)
}

func ProviderModel(nodes []Node) Table {
	g := groupByKey(nodes, func(n Node) (string, bool) { return n.Provider + " × " + n.Model, true })
	sortByTokensDesc(g)
	return renderGrouped(g)
}

func AgentProvider(nodes []Node) Table {
	g := groupByKey(nodes, func(n Node) (string, bool) { return n.AgentName + " × " + n.Provider, true })
	sortByTokensDesc(g)
	return renderGrouped(g)
}
