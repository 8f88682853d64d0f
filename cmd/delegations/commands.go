package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cuemby/delegator/internal/eventstore"
	"github.com/cuemby/delegator/internal/report"
	"github.com/cuemby/delegator/internal/report/format"
)

// scopeContext is what every view command needs after resolving its
// optional --run flag: the events restricted to the scope (or every
// event, when unscoped), the run index over the whole log, and the
// matched nodes for that scope.
type scopeContext struct {
	events []eventstore.RawEvent
	runs   []eventstore.RunInfo
	nodes  []report.Node
}

// loadScoped reads the log, resolves the --run flag (if present) against
// the run index, and builds the matched node list for that scope. An
// empty --run means "all runs" and nodes are built per-run internally to
// avoid cross-run FIFO collisions.
func loadScoped(cmd *cobra.Command) (scopeContext, error) {
	path, err := resolveLogPath(cmd)
	if err != nil {
		return scopeContext{}, err
	}
	events, err := eventstore.ReadAll(path)
	if err != nil {
		return scopeContext{}, err
	}
	runs := eventstore.BuildRunIndex(events)

	runQuery, _ := cmd.Flags().GetString("run")
	if runQuery == "" {
		return scopeContext{events: events, runs: runs, nodes: report.BuildAllNodes(events)}, nil
	}

	runID, err := report.ResolveRunID(runs, runQuery)
	if err != nil {
		return scopeContext{}, err
	}
	scoped := report.FilterByRun(events, runID)
	return scopeContext{events: scoped, runs: runs, nodes: report.BuildNodes(scoped)}, nil
}

func printTable(t format.Table) {
	format.Print(os.Stdout, t)
}

func withRunFlag(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().String("run", "", "Restrict to one run (full id or unique prefix)")
	return cmd
}

func runSummary(cmd *cobra.Command, args []string) error {
	sc, err := loadScoped(cmd)
	if err != nil {
		return err
	}
	printTable(report.Summary(sc.runs))
	return nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all runs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScoped(cmd)
		if err != nil {
			return err
		}
		printTable(report.RunsList(sc.runs))
		return nil
	},
}

var showCmd = withRunFlag(&cobra.Command{
	Use:   "show",
	Short: "Show the delegation tree for one run (default: newest)",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := scopedOrNewest(cmd)
		if err != nil {
			return err
		}
		printTable(report.Tree(sc.nodes))
		return nil
	},
})

// scopedOrNewest defaults --run to the newest run when no --run was given,
// matching "show (default: newest)" in the CLI surface contract.
func scopedOrNewest(cmd *cobra.Command) (scopeContext, error) {
	runQuery, _ := cmd.Flags().GetString("run")
	if runQuery != "" {
		return loadScoped(cmd)
	}
	path, err := resolveLogPath(cmd)
	if err != nil {
		return scopeContext{}, err
	}
	events, err := eventstore.ReadAll(path)
	if err != nil {
		return scopeContext{}, err
	}
	runs := eventstore.BuildRunIndex(events)
	if len(runs) == 0 {
		return scopeContext{events: events, runs: runs, nodes: nil}, nil
	}
	scoped := report.FilterByRun(events, runs[0].RunID)
	return scopeContext{events: scoped, runs: runs, nodes: report.BuildNodes(scoped)}, nil
}

var exportCmd = withRunFlag(&cobra.Command{
	Use:   "export",
	Short: "Export raw events to stdout as JSONL or CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScoped(cmd)
		if err != nil {
			return err
		}
		exportFormat, _ := cmd.Flags().GetString("format")
		switch exportFormat {
		case "csv":
			return report.ExportCSV(os.Stdout, sc.events)
		default:
			return report.ExportJSONL(os.Stdout, sc.events)
		}
	},
})

func init() {
	exportCmd.Flags().String("format", "jsonl", "Export format: jsonl or csv")
}

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Global leaderboard by tokens or cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScoped(cmd)
		if err != nil {
			return err
		}
		by, _ := cmd.Flags().GetString("by")
		limit, _ := cmd.Flags().GetInt("limit")
		if by == "cost" {
			printTable(report.TopByCost(sc.nodes, limit))
		} else {
			printTable(report.TopByTokens(sc.nodes, limit))
		}
		return nil
	},
}

func init() {
	topCmd.Flags().String("by", "tokens", "Rank by tokens or cost")
	topCmd.Flags().Int("limit", 10, "Maximum rows to print")
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Truncate the log to the N newest runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		keep, _ := cmd.Flags().GetInt("keep")
		path, err := resolveLogPath(cmd)
		if err != nil {
			return ioFailure{err}
		}
		if err := eventstore.Prune(path, keep); err != nil {
			return ioFailure{err}
		}
		fmt.Println("prune complete")
		return nil
	},
}

func init() {
	pruneCmd.Flags().Int("keep", 10, "Number of newest runs to retain")
}

var slowCmd = withLimitAndRun(&cobra.Command{
	Use:   "slow",
	Short: "Slowest completed delegations",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScoped(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")
		printTable(report.Slowest(sc.nodes, limit))
		return nil
	},
})

var recentCmd = withLimitAndRun(&cobra.Command{
	Use:   "recent",
	Short: "Most recently started delegations",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScoped(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")
		printTable(report.MostRecent(sc.nodes, limit))
		return nil
	},
})

func withLimitAndRun(cmd *cobra.Command) *cobra.Command {
	withRunFlag(cmd)
	cmd.Flags().Int("limit", 20, "Maximum rows to print")
	return cmd
}

var agentCmd = withRunFlag(&cobra.Command{
	Use:   "agent NAME",
	Short: "History for one agent by exact name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScoped(cmd)
		if err != nil {
			return err
		}
		printTable(report.HistoryByAgent(sc.nodes, args[0]))
		return nil
	},
})

var modelCmd = withRunFlag(&cobra.Command{
	Use:   "model NAME",
	Short: "History for one model by exact name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScoped(cmd)
		if err != nil {
			return err
		}
		printTable(report.HistoryByModel(sc.nodes, args[0]))
		return nil
	},
})

var providerCmd = withRunFlag(&cobra.Command{
	Use:   "provider NAME",
	Short: "History for one provider by exact name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScoped(cmd)
		if err != nil {
			return err
		}
		printTable(report.HistoryByProvider(sc.nodes, args[0]))
		return nil
	},
})

var runCmd = &cobra.Command{
	Use:   "run RUN_ID",
	Short: "Chronological report for one run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveLogPath(cmd)
		if err != nil {
			return err
		}
		events, err := eventstore.ReadAll(path)
		if err != nil {
			return err
		}
		runs := eventstore.BuildRunIndex(events)
		runID, err := report.ResolveRunID(runs, args[0])
		if err != nil {
			return err
		}
		nodes := report.BuildNodes(report.FilterByRun(events, runID))
		printTable(report.Tree(nodes))
		return nil
	},
}

var depthViewCmd = withRunFlag(&cobra.Command{
	Use:   "depth-view LEVEL",
	Short: "All delegations at exactly the given depth",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid depth %q: %w", args[0], err)
		}
		sc, err := loadScoped(cmd)
		if err != nil {
			return err
		}
		printTable(report.DepthLevel(sc.nodes, uint32(level)))
		return nil
	},
})

var diffCmd = &cobra.Command{
	Use:   "diff RUN_A [RUN_B]",
	Short: "Per-agent diff between two runs (default RUN_B: newest)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveLogPath(cmd)
		if err != nil {
			return err
		}
		events, err := eventstore.ReadAll(path)
		if err != nil {
			return err
		}
		runs := eventstore.BuildRunIndex(events)

		runAID, err := report.ResolveRunID(runs, args[0])
		if err != nil {
			return err
		}
		runBID := ""
		if len(args) == 2 {
			runBID, err = report.ResolveRunID(runs, args[1])
			if err != nil {
				return err
			}
		} else if len(runs) > 0 {
			runBID = runs[0].RunID
		}

		nodesA := report.BuildNodes(report.FilterByRun(events, runAID))
		nodesB := report.BuildNodes(report.FilterByRun(events, runBID))
		printTable(report.Diff(nodesA, nodesB))
		return nil
	},
}
