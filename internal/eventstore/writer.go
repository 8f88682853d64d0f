package eventstore

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cuemby/delegator/internal/telemetry"
	"github.com/cuemby/delegator/internal/telemetrylog"
)

// Writer is the Observer that appends DelegationStart/DelegationEnd events
// to the process's JSONL log, tagging every line with the run_id assigned
// at construction. All other event types are silently ignored — the log is
// a delegation history, not a general event trace.
type Writer struct {
	runID string
	path  string

	mu sync.Mutex
}

// NewWriter creates a Writer bound to path, assigning it a fresh run_id.
// The parent directory is created best-effort; a failure here is only
// logged, and RecordEvent logs any real problem opening path.
func NewWriter(path string) *Writer {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			telemetrylog.Logger.Warn().
				Err(err).
				Str("dir", dir).
				Msg("could not create delegation log directory")
		}
	}
	return &Writer{
		runID: uuid.New().String(),
		path:  path,
	}
}

// RunID returns the run_id stamped on every record this Writer produces.
func (w *Writer) RunID() string { return w.runID }

func (w *Writer) RecordEvent(e telemetry.Event) {
	var line []byte
	var err error

	switch e.Type {
	case telemetry.EventDelegationStart:
		line, err = marshalLine(startRecord{
			EventType: string(e.Type),
			RunID:     w.runID,
			AgentName: e.AgentName,
			Provider:  e.Provider,
			Model:     e.Model,
			Depth:     e.Depth,
			Agentic:   e.Agentic,
			Timestamp: nowRFC3339(),
		})
	case telemetry.EventDelegationEnd:
		line, err = marshalLine(endRecord{
			EventType:    string(e.Type),
			RunID:        w.runID,
			AgentName:    e.AgentName,
			Provider:     e.Provider,
			Model:        e.Model,
			Depth:        e.Depth,
			DurationMs:   uint64(e.Duration.Milliseconds()),
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			TokensUsed:   e.TokensUsed,
			CostUSD:      e.CostUSD,
			Timestamp:    nowRFC3339(),
		})
	default:
		return
	}
	if err != nil {
		telemetrylog.Logger.Error().Err(err).Msg("failed to encode delegation event")
		return
	}

	if err := w.append(line); err != nil {
		telemetrylog.Logger.Error().
			Err(err).
			Str("path", w.path).
			Msg("failed to append delegation event")
	}
}

func (w *Writer) append(line []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open delegation log: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if _, err := bw.Write(line); err != nil {
		return fmt.Errorf("write delegation event: %w", err)
	}
	if err := bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("write delegation event: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush delegation event: %w", err)
	}
	return nil
}

func (w *Writer) RecordMetric(telemetry.Metric) {
	// The durable log records delegation lifecycle events only.
}

func (w *Writer) Name() string { return "jsonl-writer" }

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}
