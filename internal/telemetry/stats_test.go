package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatsObserverAccumulatesAcrossDelegations(t *testing.T) {
	s := NewStatsObserver()

	s.RecordEvent(DelegationStart("a", "anthropic", "claude", 0, true))
	s.RecordEvent(DelegationStart("b", "openai", "gpt", 1, true))

	tokens := uint64(10)
	cost := 0.01
	s.RecordEvent(DelegationEnd("a", "anthropic", "claude", 0, time.Second, true, nil, &tokens, &cost))
	s.RecordEvent(DelegationEnd("b", "openai", "gpt", 1, time.Second, false, nil, nil, nil))

	snap := s.Snapshot()
	assert.Equal(t, uint64(2), snap.Total)
	assert.Equal(t, uint64(1), snap.Successful)
	assert.Equal(t, uint64(1), snap.Failed)
	assert.Equal(t, uint64(0), snap.InFlight)
	assert.Equal(t, uint64(10), snap.TotalTokens)
	assert.Equal(t, 0.01, snap.TotalCostUSD)
	assert.Equal(t, uint32(1), snap.MaxDepth)
}

func TestStatsObserverOrphanEndDoesNotUnderflowInFlight(t *testing.T) {
	s := NewStatsObserver()

	// No matching start: InFlight must saturate at zero, not wrap.
	s.RecordEvent(DelegationEnd("a", "anthropic", "claude", 0, time.Second, true, nil, nil, nil))

	snap := s.Snapshot()
	assert.Equal(t, uint64(0), snap.InFlight)
	assert.Equal(t, uint64(1), snap.Successful)
}

func TestStatsObserverTotalEqualsSuccessfulPlusFailedPlusInFlight(t *testing.T) {
	s := NewStatsObserver()

	s.RecordEvent(DelegationStart("a", "anthropic", "claude", 0, true))
	s.RecordEvent(DelegationStart("b", "anthropic", "claude", 0, true))
	s.RecordEvent(DelegationEnd("a", "anthropic", "claude", 0, time.Second, true, nil, nil, nil))

	snap := s.Snapshot()
	assert.Equal(t, snap.Total, snap.Successful+snap.Failed+snap.InFlight)
}

func TestStatsObserverIgnoresNonDelegationEvents(t *testing.T) {
	s := NewStatsObserver()
	s.RecordEvent(Event{Type: EventHeartbeatTick})
	s.RecordMetric(Metric{Name: "ignored", Value: 1})

	assert.Equal(t, Snapshot{}, s.Snapshot())
}

func TestStatsObserverName(t *testing.T) {
	assert.Equal(t, "delegation-stats", NewStatsObserver().Name())
}
