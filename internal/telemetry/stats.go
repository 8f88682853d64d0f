package telemetry

import "sync"

// Snapshot is a point-in-time copy of cumulative delegation statistics. All
// fields are cumulative since the StatsObserver was created, except InFlight
// which reflects the current number of started-but-not-yet-ended
// delegations.
type Snapshot struct {
	Total        uint64
	Successful   uint64
	Failed       uint64
	InFlight     uint64
	TotalTokens  uint64
	TotalCostUSD float64
	MaxDepth     uint32
}

// StatsObserver accumulates in-memory delegation statistics behind a mutex.
// Snapshot() takes a value copy under lock, so callers never see a partially
// updated Snapshot regardless of how many goroutines call RecordEvent
// concurrently.
type StatsObserver struct {
	mu   sync.Mutex
	snap Snapshot
}

// NewStatsObserver returns an observer with all counters at zero.
func NewStatsObserver() *StatsObserver {
	return &StatsObserver{}
}

func (s *StatsObserver) RecordEvent(e Event) {
	switch e.Type {
	case EventDelegationStart:
		s.mu.Lock()
		s.snap.Total++
		s.snap.InFlight++
		if e.Depth > s.snap.MaxDepth {
			s.snap.MaxDepth = e.Depth
		}
		s.mu.Unlock()
	case EventDelegationEnd:
		s.mu.Lock()
		if s.snap.InFlight > 0 {
			s.snap.InFlight--
		}
		if e.Success {
			s.snap.Successful++
		} else {
			s.snap.Failed++
		}
		if e.TokensUsed != nil {
			s.snap.TotalTokens += *e.TokensUsed
		}
		if e.CostUSD != nil {
			s.snap.TotalCostUSD += *e.CostUSD
		}
		s.mu.Unlock()
	}
}

func (s *StatsObserver) RecordMetric(Metric) {
	// The stats observer tracks only delegation lifecycle counters.
}

func (s *StatsObserver) Name() string { return "delegation-stats" }

// Snapshot returns a consistent point-in-time copy of the current
// statistics. Safe to call from any goroutine at any time.
func (s *StatsObserver) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}
