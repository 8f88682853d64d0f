package metricsink

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/cuemby/delegator/internal/telemetry"
)

func TestSinkRecordsDelegationEnd(t *testing.T) {
	before := testutil.ToFloat64(delegationsTotal.WithLabelValues("anthropic", "claude", "2", "true"))

	s := NewSink()
	tokens := uint64(5)
	cost := 0.02
	s.RecordEvent(telemetry.DelegationEnd("researcher", "anthropic", "claude", 2, 10*time.Millisecond, true, nil, &tokens, &cost))

	after := testutil.ToFloat64(delegationsTotal.WithLabelValues("anthropic", "claude", "2", "true"))
	if after != before+1 {
		t.Errorf("delegationsTotal = %v, want %v", after, before+1)
	}
}

func TestSinkIgnoresUnknownMetricNames(t *testing.T) {
	s := NewSink()
	// Must not panic on an unrecognized family name.
	s.RecordMetric(telemetry.Metric{Name: "not_a_real_family", Value: 1})
}

func TestSinkAppliesQueueDepthMetric(t *testing.T) {
	s := NewSink()
	s.RecordMetric(telemetry.Metric{Name: "delegator_queue_depth", Value: 7})

	if got := testutil.ToFloat64(queueDepth); got != 7 {
		t.Errorf("queueDepth = %v, want 7", got)
	}
}

func TestSinkName(t *testing.T) {
	if NewSink().Name() != "prometheus" {
		t.Errorf("Name() = %q, want %q", NewSink().Name(), "prometheus")
	}
}
