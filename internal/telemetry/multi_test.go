package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingObserver records every event/metric it receives, in order, and
// optionally its name into a shared slice so callers can assert dispatch
// order across multiple observers.
type recordingObserver struct {
	name    string
	order   *[]string
	events  []EventType
	metrics []string
}

func (r *recordingObserver) RecordEvent(e Event) {
	r.events = append(r.events, e.Type)
	if r.order != nil {
		*r.order = append(*r.order, r.name)
	}
}

func (r *recordingObserver) RecordMetric(m Metric) {
	r.metrics = append(r.metrics, m.Name)
	if r.order != nil {
		*r.order = append(*r.order, r.name)
	}
}

func (r *recordingObserver) Name() string { return r.name }

// panickingObserver always panics, simulating a misbehaving observer.
type panickingObserver struct{}

func (panickingObserver) RecordEvent(Event)   { panic("boom") }
func (panickingObserver) RecordMetric(Metric) { panic("boom") }
func (panickingObserver) Name() string        { return "panicking" }

func TestMultiObserverDeliversToAllInRegistrationOrder(t *testing.T) {
	var order []string
	first := &recordingObserver{name: "first", order: &order}
	second := &recordingObserver{name: "second", order: &order}

	m := NewMultiObserver(first, second)
	m.RecordEvent(Event{Type: EventDelegationStart})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestMultiObserverSurvivesPanickingObserverRecordEvent(t *testing.T) {
	normal := &recordingObserver{name: "normal"}
	m := NewMultiObserver(panickingObserver{}, normal)

	require.NotPanics(t, func() {
		m.RecordEvent(Event{Type: EventDelegationStart})
	})

	assert.Equal(t, []EventType{EventDelegationStart}, normal.events)
}

func TestMultiObserverSurvivesPanickingObserverRecordMetric(t *testing.T) {
	normal := &recordingObserver{name: "normal"}
	m := NewMultiObserver(panickingObserver{}, normal)

	require.NotPanics(t, func() {
		m.RecordMetric(Metric{Name: "queue_depth", Value: 1})
	})

	assert.Equal(t, []string{"queue_depth"}, normal.metrics)
}

func TestMultiObserverDeliversExactlyOncePerObserver(t *testing.T) {
	normal := &recordingObserver{name: "normal"}
	m := NewMultiObserver(normal)

	m.RecordEvent(Event{Type: EventDelegationStart})
	m.RecordEvent(Event{Type: EventDelegationEnd})

	assert.Equal(t, []EventType{EventDelegationStart, EventDelegationEnd}, normal.events)
}

func TestMultiObserverName(t *testing.T) {
	assert.Equal(t, "multi", NewMultiObserver().Name())
}
