// Package metricsink projects delegation telemetry events onto Prometheus
// metric families, registered as package-level vars in init.
package metricsink

import "github.com/prometheus/client_golang/prometheus"

var (
	delegationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delegator_delegations_total",
			Help: "Total number of completed delegations by provider, model, depth, and success",
		},
		[]string{"provider", "model", "depth", "success"},
	)

	delegationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "delegator_delegation_duration_seconds",
			Help:    "Delegation wall-clock duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"provider", "model", "depth"},
	)

	delegationTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delegator_delegation_tokens_total",
			Help: "Total tokens consumed by completed delegations",
		},
		[]string{"provider", "model", "depth"},
	)

	delegationCostTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delegator_delegation_cost_usd_total",
			Help: "Total cost in USD accrued by completed delegations",
		},
		[]string{"provider", "model", "depth"},
	)

	agentStartsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "delegator_agent_starts_total",
			Help: "Total number of agent turns started",
		},
	)

	agentDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "delegator_agent_duration_seconds",
			Help:    "Agent turn duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	toolCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delegator_tool_calls_total",
			Help: "Total number of tool invocations by tool and outcome",
		},
		[]string{"tool", "success"},
	)

	toolDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "delegator_tool_duration_seconds",
			Help:    "Tool invocation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"tool"},
	)

	channelMessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delegator_channel_messages_total",
			Help: "Total number of inter-agent channel messages by channel and direction",
		},
		[]string{"channel", "direction"},
	)

	heartbeatTicksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "delegator_heartbeat_ticks_total",
			Help: "Total number of runtime heartbeat ticks observed",
		},
	)

	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delegator_errors_total",
			Help: "Total number of errors observed by originating component",
		},
		[]string{"component"},
	)

	requestLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "delegator_request_latency_seconds",
			Help:    "LLM request-to-response latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	tokensUsedLast = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "delegator_tokens_used_last",
			Help: "Token count of the most recently completed delegation",
		},
	)

	activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "delegator_active_sessions",
			Help: "Current number of in-flight delegations",
		},
	)

	queueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "delegator_queue_depth",
			Help: "Current depth of the delegation work queue",
		},
	)
)

func init() {
	prometheus.MustRegister(delegationsTotal)
	prometheus.MustRegister(delegationDuration)
	prometheus.MustRegister(delegationTokensTotal)
	prometheus.MustRegister(delegationCostTotal)
	prometheus.MustRegister(agentStartsTotal)
	prometheus.MustRegister(agentDuration)
	prometheus.MustRegister(toolCallsTotal)
	prometheus.MustRegister(toolDuration)
	prometheus.MustRegister(channelMessagesTotal)
	prometheus.MustRegister(heartbeatTicksTotal)
	prometheus.MustRegister(errorsTotal)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(tokensUsedLast)
	prometheus.MustRegister(activeSessions)
	prometheus.MustRegister(queueDepth)
}
