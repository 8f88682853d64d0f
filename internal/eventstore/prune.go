package eventstore

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Prune truncates the log at path to the events belonging to the keep
// newest runs (by start_time), writing the result via a sibling temp file
// that is fsynced and then renamed over the original. A crash before the
// rename leaves the original file untouched; a crash after it leaves the
// truncated file. keep == 0 removes every event. A missing log is left
// missing.
//
// Unlike the writer and reader, Prune surfaces every error to the caller:
// an administrator-invoked truncation that silently loses data is worse
// than a visible failure.
func Prune(path string, keep int) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	lines, events, err := readLinesWithEvents(path)
	if err != nil {
		return fmt.Errorf("read delegation log for prune: %w", err)
	}

	runs := BuildRunIndex(events)
	if keep < len(runs) {
		runs = runs[:max(keep, 0)]
	}
	retained := make(map[string]bool, len(runs))
	for _, r := range runs {
		retained[r.RunID] = true
	}

	kept := make([][]byte, 0, len(lines))
	for i, line := range lines {
		runID := events[i].Str("run_id")
		if runID != "" && retained[runID] {
			kept = append(kept, line)
		}
	}

	return atomicRewrite(path, kept)
}

// readLinesWithEvents re-reads path line by line, returning the raw bytes
// of each parseable line alongside its decoded RawEvent (same index in
// both slices), so the retained output can reuse the original line bytes
// verbatim rather than re-encoding them.
func readLinesWithEvents(path string) ([][]byte, []RawEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	defer f.Close()

	var lines [][]byte
	var events []RawEvent
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var ev RawEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			continue
		}
		line := make([]byte, len(raw))
		copy(line, raw)
		lines = append(lines, line)
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return lines, events, nil
}

func atomicRewrite(path string, lines [][]byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".delegation-prune-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp prune file: %w", err)
	}
	tmpPath := tmp.Name()
	// Owner-only permissions where the platform honors chmod.
	_ = tmp.Chmod(0o600)

	success := false
	defer func() {
		if !success {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("write prune temp file: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("write prune temp file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush prune temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("fsync prune temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close prune temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename prune temp file over log: %w", err)
	}
	success = true
	return nil
}
