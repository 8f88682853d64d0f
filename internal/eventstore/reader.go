package eventstore

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"os"
	"time"

	"github.com/cuemby/delegator/internal/telemetrylog"
)

// RawEvent is one decoded JSONL line, kept as a generic field map rather
// than a fixed struct. The log mixes two field sets (start vs end) and
// tolerates unknown extra keys on read, so dynamic lookup — the same
// approach the original reporting tool takes against its parsed JSON
// values — is a better fit here than a single over-wide struct.
type RawEvent map[string]any

// Str returns the string value of key, or "" if absent or not a string.
func (r RawEvent) Str(key string) string {
	v, _ := r[key].(string)
	return v
}

// U64 returns the numeric value of key truncated to uint64, or 0 if absent,
// null, or not a number. JSON numbers decode as float64, matching the
// encoding/json default.
func (r RawEvent) U64(key string) uint64 {
	v, ok := r[key].(float64)
	if !ok || v < 0 {
		return 0
	}
	return uint64(v)
}

// F64Ptr returns a pointer to the numeric value of key, or nil if the key
// is absent, JSON null, or not a number.
func (r RawEvent) F64Ptr(key string) *float64 {
	v, ok := r[key].(float64)
	if !ok {
		return nil
	}
	return &v
}

// U64Ptr returns a pointer to the numeric value of key, or nil if the key
// is absent, JSON null, or not a number.
func (r RawEvent) U64Ptr(key string) *uint64 {
	v, ok := r[key].(float64)
	if !ok {
		return nil
	}
	u := uint64(v)
	return &u
}

// Bool returns the boolean value of key, or false if absent or not a bool.
func (r RawEvent) Bool(key string) bool {
	v, _ := r[key].(bool)
	return v
}

// StrPtr returns a pointer to the string value of key, or nil if absent,
// null, or not a string.
func (r RawEvent) StrPtr(key string) *string {
	v, ok := r[key].(string)
	if !ok {
		return nil
	}
	return &v
}

// Time parses the "timestamp" field as RFC 3339, returning the zero time
// on any parse failure — a malformed timestamp degrades the record's sort
// position rather than aborting the whole read.
func (r RawEvent) Time() time.Time {
	t, err := time.Parse(time.RFC3339, r.Str("timestamp"))
	if err != nil {
		return time.Time{}
	}
	return t
}

// ReadAll reads every line of the delegation log at path, skipping lines
// that fail to parse as a JSON object and logging each skip. A missing
// file is not an error — it reads as an empty log, matching the original
// reporting tool's behavior before any delegation has ever run.
func ReadAll(path string) ([]RawEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var events []RawEvent
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var raw RawEvent
		if err := json.Unmarshal(line, &raw); err != nil {
			telemetrylog.Logger.Warn().
				Err(err).
				Int("line", lineNo).
				Str("path", path).
				Msg("skipping malformed delegation log line")
			continue
		}
		events = append(events, raw)
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		return events, err
	}
	return events, nil
}
