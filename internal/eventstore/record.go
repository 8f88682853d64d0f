// Package eventstore implements the durable append-only JSONL event log:
// the writer that stamps every record with a per-process run_id, the reader
// that tolerates a malformed or missing file, the run index built by
// grouping records by run_id, and the atomic prune-by-count rewrite.
package eventstore

import "encoding/json"

func marshalLine(v any) ([]byte, error) {
	return json.Marshal(v)
}

// startRecord is the exact on-disk field set for a DelegationStart event.
type startRecord struct {
	EventType string `json:"event_type"`
	RunID     string `json:"run_id"`
	AgentName string `json:"agent_name"`
	Provider  string `json:"provider"`
	Model     string `json:"model"`
	Depth     uint32 `json:"depth"`
	Agentic   bool   `json:"agentic"`
	Timestamp string `json:"timestamp"`
}

// endRecord is the exact on-disk field set for a DelegationEnd event.
// TokensUsed and CostUSD are plain pointers (no omitempty) so a nil value
// serializes as JSON null rather than being dropped — readers must be able
// to distinguish "unknown" from "absent key".
type endRecord struct {
	EventType    string   `json:"event_type"`
	RunID        string   `json:"run_id"`
	AgentName    string   `json:"agent_name"`
	Provider     string   `json:"provider"`
	Model        string   `json:"model"`
	Depth        uint32   `json:"depth"`
	DurationMs   uint64   `json:"duration_ms"`
	Success      bool     `json:"success"`
	ErrorMessage *string  `json:"error_message"`
	TokensUsed   *uint64  `json:"tokens_used"`
	CostUSD      *float64 `json:"cost_usd"`
	Timestamp    string   `json:"timestamp"`
}
