package report

import "sort"

func sortByTokensDesc(groups []*groupStat) {
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].TokensSum > groups[j].TokensSum })
}

func sortByCostDesc(groups []*groupStat) {
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].CostSum > groups[j].CostSum })
}

func sortBySuccessRateDesc(groups []*groupStat) {
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].SuccessRate() > groups[j].SuccessRate() })
}

func sortByAvgDurationDesc(groups []*groupStat) {
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].AvgDurationMs() > groups[j].AvgDurationMs() })
}

func sortByKeyAsc(groups []*groupStat) {
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
}

func sortByFixedOrder(groups []*groupStat, order map[string]int) {
	sort.SliceStable(groups, func(i, j int) bool { return order[groups[i].Key] < order[groups[j].Key] })
}

func limitGroups(groups []*groupStat, limit int) []*groupStat {
	if limit <= 0 || limit >= len(groups) {
		return groups
	}
	return groups[:limit]
}

func renderGrouped(groups []*groupStat) Table {
	if len(groups) == 0 {
		return noData("no data")
	}
	rows := make([][]string, len(groups))
	for i, g := range groups {
		rows[i] = statsRow(g)
	}
	return Table{Header: statsHeader, Rows: rows, Footer: statsFooter(groups)}
}
