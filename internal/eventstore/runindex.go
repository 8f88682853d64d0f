package eventstore

import (
	"sort"
	"time"
)

// RunInfo summarizes one run (one writer process's run_id) for the run
// list / run picker views.
type RunInfo struct {
	RunID           string
	StartTime       time.Time
	HasStartTime    bool
	DelegationCount uint64
	TotalTokens     uint64
	TotalCostUSD    float64
}

// BuildRunIndex groups events by run_id and summarizes each run. Events
// with an empty run_id are dropped — they cannot be attributed to any run.
// Runs are returned newest-first by StartTime; runs with no derivable
// StartTime (no event in the run parsed a timestamp) sort last.
func BuildRunIndex(events []RawEvent) []RunInfo {
	order := []string{}
	byRun := map[string]*RunInfo{}

	for _, e := range events {
		runID := e.Str("run_id")
		if runID == "" {
			continue
		}
		info, ok := byRun[runID]
		if !ok {
			info = &RunInfo{RunID: runID}
			byRun[runID] = info
			order = append(order, runID)
		}

		if ts := e.Time(); !ts.IsZero() {
			if !info.HasStartTime || ts.Before(info.StartTime) {
				info.StartTime = ts
				info.HasStartTime = true
			}
		}

		switch e.Str("event_type") {
		case "DelegationStart":
			info.DelegationCount++
		case "DelegationEnd":
			info.TotalTokens += e.U64("tokens_used")
			info.TotalCostUSD += floatOrZero(e.F64Ptr("cost_usd"))
		}
	}

	runs := make([]RunInfo, 0, len(order))
	for _, id := range order {
		runs = append(runs, *byRun[id])
	}

	sort.SliceStable(runs, func(i, j int) bool {
		a, b := runs[i], runs[j]
		if a.HasStartTime != b.HasStartTime {
			return a.HasStartTime
		}
		if !a.HasStartTime {
			return false
		}
		return a.StartTime.After(b.StartTime)
	})

	return runs
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
