package report

import (
	"fmt"
	"strings"

	"github.com/cuemby/delegator/internal/eventstore"
)

// ErrUnknownRun and ErrAmbiguousRun are the two user-error outcomes of
// ResolveRunID; both map to CLI exit code 1.
type ErrUnknownRun struct{ Query string }

func (e ErrUnknownRun) Error() string { return fmt.Sprintf("no run matches %q", e.Query) }

type ErrAmbiguousRun struct {
	Query   string
	Matches []string
}

func (e ErrAmbiguousRun) Error() string {
	return fmt.Sprintf("run id %q is ambiguous, matches: %s", e.Query, strings.Join(e.Matches, ", "))
}

// ResolveRunID finds the run_id referenced by query among runs: an exact
// match wins outright, otherwise query is treated as a unique prefix. No
// match is ErrUnknownRun; more than one prefix match is ErrAmbiguousRun.
func ResolveRunID(runs []eventstore.RunInfo, query string) (string, error) {
	for _, r := range runs {
		if r.RunID == query {
			return r.RunID, nil
		}
	}

	var matches []string
	for _, r := range runs {
		if strings.HasPrefix(r.RunID, query) {
			matches = append(matches, r.RunID)
		}
	}
	switch len(matches) {
	case 0:
		return "", ErrUnknownRun{Query: query}
	case 1:
		return matches[0], nil
	default:
		return "", ErrAmbiguousRun{Query: query, Matches: matches}
	}
}

// FilterByRun returns only the events whose run_id equals runID. An empty
// runID means "no scope" and returns events unchanged.
func FilterByRun(events []eventstore.RawEvent, runID string) []eventstore.RawEvent {
	if runID == "" {
		return events
	}
	out := make([]eventstore.RawEvent, 0, len(events))
	for _, e := range events {
		if e.Str("run_id") == runID {
			out = append(out, e)
		}
	}
	return out
}
