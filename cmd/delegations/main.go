package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cuemby/delegator/internal/statedir"
	"github.com/cuemby/delegator/internal/telemetrylog"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "delegations",
	Short: "Inspect and report on recorded agent delegation telemetry",
	Long: `delegations reads the append-only JSONL delegation log written by
the agent runtime and renders summaries, leaderboards, time-bucketed
breakdowns, and diffs across one or more runs.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().String("log-path", "", "Path to the delegation log (default: $XDG_STATE_HOME/zeroclaw/delegation.jsonl or ~/.zeroclaw/state/delegation.jsonl)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Output logs in JSON format")

	cobra.OnInitialize(initLogging)

	rootCmd.RunE = runSummary

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(slowCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(agentCmd)
	rootCmd.AddCommand(modelCmd)
	rootCmd.AddCommand(providerCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(depthViewCmd)
	rootCmd.AddCommand(diffCmd)

	for _, v := range simpleScopedViews {
		rootCmd.AddCommand(v.command())
	}
	for _, v := range rankedScopedViews {
		rootCmd.AddCommand(v.command())
	}
}

func initLogging() {
	logLevel, _ := rootCmd.PersistentFlags().GetString("log-level")
	logJSON, _ := rootCmd.PersistentFlags().GetBool("log-json")

	telemetrylog.Init(telemetrylog.Config{
		Level:      telemetrylog.Level(logLevel),
		JSONOutput: logJSON,
	})
}

func resolveLogPath(cmd *cobra.Command) (string, error) {
	explicit, _ := cmd.Flags().GetString("log-path")
	return statedir.ResolveLogPath(explicit)
}

// exitCodeFor maps a returned error to the contract in the command
// surface: 0 on success (no error at all), 1 on user error, 2 on I/O
// failure surfaced by prune.
func exitCodeFor(err error) int {
	if _, ok := err.(ioFailure); ok {
		return 2
	}
	return 1
}

// ioFailure wraps an error that must exit 2 rather than the default 1 —
// used only by the prune command, the sole operation whose I/O failures
// are surfaced rather than degraded.
type ioFailure struct{ err error }

func (e ioFailure) Error() string { return e.err.Error() }
func (e ioFailure) Unwrap() error { return e.err }
