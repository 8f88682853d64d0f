package metricsink

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cuemby/delegator/internal/telemetry"
)

// Sink is the Observer that projects delegation telemetry events onto the
// package's Prometheus metric families. It holds no state of its own; all
// state lives in the metric families themselves, which is safe for
// concurrent use because every prometheus.*Vec method already is.
type Sink struct{}

// NewSink returns a metrics Observer. Family registration happens once,
// at package init, regardless of how many Sinks are constructed.
func NewSink() *Sink { return &Sink{} }

func (s *Sink) RecordEvent(e telemetry.Event) {
	depth := strconv.FormatUint(uint64(e.Depth), 10)

	switch e.Type {
	case telemetry.EventDelegationStart:
		activeSessions.Inc()

	case telemetry.EventDelegationEnd:
		activeSessions.Dec()
		success := strconv.FormatBool(e.Success)
		delegationsTotal.WithLabelValues(e.Provider, e.Model, depth, success).Inc()
		delegationDuration.WithLabelValues(e.Provider, e.Model, depth).Observe(e.Duration.Seconds())
		if e.TokensUsed != nil {
			delegationTokensTotal.WithLabelValues(e.Provider, e.Model, depth).Add(float64(*e.TokensUsed))
			tokensUsedLast.Set(float64(*e.TokensUsed))
		}
		if e.CostUSD != nil {
			delegationCostTotal.WithLabelValues(e.Provider, e.Model, depth).Add(*e.CostUSD)
		}

	case telemetry.EventAgentStart:
		agentStartsTotal.Inc()

	case telemetry.EventToolCall:
		toolCallsTotal.WithLabelValues(e.Tool, strconv.FormatBool(e.ToolSuccess)).Inc()

	case telemetry.EventChannelMessage:
		channelMessagesTotal.WithLabelValues(e.Channel, e.Direction).Inc()

	case telemetry.EventHeartbeatTick:
		heartbeatTicksTotal.Inc()

	case telemetry.EventError:
		errorsTotal.WithLabelValues(e.Component).Inc()

	case telemetry.EventLlmResponse:
		requestLatency.Observe(e.Duration.Seconds())

	case telemetry.EventTurnComplete:
		agentDuration.Observe(e.Duration.Seconds())
	}
}

// RecordMetric applies a free-form Metric to the matching family by name,
// for producers that compute their own observation (e.g. queue depth)
// rather than deriving it from a telemetry.Event.
func (s *Sink) RecordMetric(m telemetry.Metric) {
	switch m.Name {
	case "delegator_queue_depth":
		queueDepth.Set(m.Value)
	case "delegator_active_sessions":
		activeSessions.Set(m.Value)
	}
}

func (s *Sink) Name() string { return "prometheus" }

// Handler exposes the registered families on the conventional /metrics
// endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer times an in-flight operation and reports it to a histogram.
type Timer struct {
	start time.Time
}

// NewTimer starts a timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the elapsed time to histogram.
func (t *Timer) ObserveDuration(histogram prometheus.Histogram) {
	histogram.Observe(time.Since(t.start).Seconds())
}

// ObserveDurationVec records the elapsed time to a labeled histogram vec.
func (t *Timer) ObserveDurationVec(histogram prometheus.ObserverVec, labels ...string) {
	histogram.WithLabelValues(labels...).Observe(time.Since(t.start).Seconds())
}

// Duration returns the elapsed time since the timer started.
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
