// Package statedir resolves the default location of the delegation event
// log: an explicit path always wins, then XDG_STATE_HOME, then the
// conventional ~/.zeroclaw/state fallback. No other platform-specific state
// directory variable is consulted. Resolution
// happens once at CLI startup and the result is passed explicitly to every
// function that needs it — no hidden global state directory singleton.
package statedir

import (
	"os"
	"path/filepath"
)

const (
	defaultStateDirName = ".zeroclaw/state"
	defaultLogFileName  = "delegation.jsonl"
)

// ResolveLogPath returns the delegation event log path. If explicit is
// non-empty it is returned unchanged (after expanding a leading "~").
// Otherwise XDG_STATE_HOME/zeroclaw/delegation.jsonl is used when
// XDG_STATE_HOME is set, falling back to ~/.zeroclaw/state/delegation.jsonl.
func ResolveLogPath(explicit string) (string, error) {
	if explicit != "" {
		return expandTilde(explicit)
	}
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "zeroclaw", defaultLogFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, defaultStateDirName, defaultLogFileName), nil
}

func expandTilde(path string) (string, error) {
	if path == "~" || (len(path) > 1 && path[:2] == "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
