// Package telemetry defines the event model and observer contract shared by
// every delegation telemetry consumer: the JSONL writer, the in-memory stats
// aggregator, and the Prometheus metrics sink.
package telemetry

import "time"

// EventType tags the kind of lifecycle event carried by an Event.
type EventType string

const (
	EventDelegationStart EventType = "DelegationStart"
	EventDelegationEnd   EventType = "DelegationEnd"
	EventAgentStart      EventType = "AgentStart"
	EventAgentEnd        EventType = "AgentEnd"
	EventToolCall        EventType = "ToolCall"
	EventChannelMessage  EventType = "ChannelMessage"
	EventHeartbeatTick   EventType = "HeartbeatTick"
	EventError           EventType = "Error"
	EventLlmRequest      EventType = "LlmRequest"
	EventLlmResponse     EventType = "LlmResponse"
	EventTurnComplete    EventType = "TurnComplete"
)

// Event is the closed tagged variant for every lifecycle event the agent
// runtime may emit. Only Type selects which of the other fields are
// meaningful; unused fields are left at their zero value. Fields are typed
// rather than a string-keyed Metadata bag, since DelegationEnd needs optional
// numeric fields (TokensUsed, CostUSD) that a string map can't carry without
// a parse step at every consumer.
type Event struct {
	Type EventType

	// DelegationStart / DelegationEnd shared fields.
	AgentName string
	Provider  string
	Model     string
	Depth     uint32

	// DelegationStart only.
	Agentic bool

	// DelegationEnd only.
	Duration     time.Duration
	Success      bool
	ErrorMessage *string
	TokensUsed   *uint64
	CostUSD      *float64

	// ToolCall.
	Tool        string
	ToolSuccess bool

	// ChannelMessage.
	Channel   string
	Direction string

	// Error.
	Component string
	Message   string
}

// DelegationStart builds an Event carrying a delegation-start payload.
func DelegationStart(agentName, provider, model string, depth uint32, agentic bool) Event {
	return Event{
		Type:      EventDelegationStart,
		AgentName: agentName,
		Provider:  provider,
		Model:     model,
		Depth:     depth,
		Agentic:   agentic,
	}
}

// DelegationEnd builds an Event carrying a delegation-end payload.
func DelegationEnd(agentName, provider, model string, depth uint32, duration time.Duration, success bool, errMsg *string, tokensUsed *uint64, costUSD *float64) Event {
	return Event{
		Type:         EventDelegationEnd,
		AgentName:    agentName,
		Provider:     provider,
		Model:        model,
		Depth:        depth,
		Duration:     duration,
		Success:      success,
		ErrorMessage: errMsg,
		TokensUsed:   tokensUsed,
		CostUSD:      costUSD,
	}
}

// Metric is the payload passed to Observer.RecordMetric for the counter/
// gauge/histogram projection in internal/metricsink. Name identifies the
// metric family; Labels carries the label set; Value is the observation
// (a delta for counters, a point value for gauges and histogram samples).
type Metric struct {
	Name   string
	Labels map[string]string
	Value  float64
}
