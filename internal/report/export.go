package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cuemby/delegator/internal/eventstore"
)

// ExportJSONL writes every raw event in events to w, one JSON object per
// line. Each object is re-encoded from the decoded field map: every key and
// value read from the log is kept, but keys are written in sorted order and
// the original line bytes are not reproduced.
func ExportJSONL(w io.Writer, events []eventstore.RawEvent) error {
	enc := json.NewEncoder(w)
	for _, e := range events {
		if err := enc.Encode(map[string]any(e)); err != nil {
			return fmt.Errorf("encode event: %w", err)
		}
	}
	return nil
}

var csvHeader = []string{
	"event_type", "run_id", "agent_name", "provider", "model", "depth",
	"duration_ms", "success", "error_message", "tokens_used", "cost_usd", "timestamp",
}

// ExportCSV writes one row per DelegationEnd event in events to w, RFC
// 4180 quoted, with a header row.
func ExportCSV(w io.Writer, events []eventstore.RawEvent) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range events {
		if e.Str("event_type") != "DelegationEnd" {
			continue
		}
		row := []string{
			e.Str("event_type"),
			e.Str("run_id"),
			e.Str("agent_name"),
			e.Str("provider"),
			e.Str("model"),
			uitoa(e.U64("depth")),
			uitoa(e.U64("duration_ms")),
			fmt.Sprintf("%t", e.Bool("success")),
			errCSV(e),
			uitoaPtr(e.U64Ptr("tokens_used")),
			moneyCSV(e.F64Ptr("cost_usd")),
			e.Str("timestamp"),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func errCSV(e eventstore.RawEvent) string {
	if p := e.StrPtr("error_message"); p != nil {
		return *p
	}
	return ""
}

func moneyCSV(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.4f", *v)
}
