package telemetry

import "github.com/cuemby/delegator/internal/telemetrylog"

// MultiObserver fans a single event stream out to an ordered list of
// observers with synchronous, in-order, exactly-once delivery: the agent
// runtime calls RecordEvent once per lifecycle event and every registered
// observer sees it, in registration order, before the call returns.
//
// A panic inside one observer is recovered and logged; it never prevents
// delivery to the observers registered after it.
type MultiObserver struct {
	observers []Observer
}

// NewMultiObserver registers observers in dispatch order.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	return &MultiObserver{observers: observers}
}

func (m *MultiObserver) RecordEvent(e Event) {
	for _, o := range m.observers {
		m.dispatchEvent(o, e)
	}
}

func (m *MultiObserver) dispatchEvent(o Observer, e Event) {
	defer func() {
		if r := recover(); r != nil {
			telemetrylog.Logger.Error().
				Str("observer", o.Name()).
				Interface("panic", r).
				Msg("observer panicked recording event, continuing fan-out")
		}
	}()
	o.RecordEvent(e)
}

func (m *MultiObserver) RecordMetric(met Metric) {
	for _, o := range m.observers {
		m.dispatchMetric(o, met)
	}
}

func (m *MultiObserver) dispatchMetric(o Observer, met Metric) {
	defer func() {
		if r := recover(); r != nil {
			telemetrylog.Logger.Error().
				Str("observer", o.Name()).
				Interface("panic", r).
				Msg("observer panicked recording metric, continuing fan-out")
		}
	}()
	o.RecordMetric(met)
}

func (m *MultiObserver) Name() string { return "multi" }
