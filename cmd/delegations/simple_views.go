package main

import (
	"github.com/spf13/cobra"

	"github.com/cuemby/delegator/internal/report"
)

// simpleView is every view command whose only input is the optional
// --run scope: a thin RunE wrapper around one report.* function. Data-
// driven registration keeps this long but uniform command list from
// turning into twenty-six near-identical cobra.Command literals.
type simpleView struct {
	use   string
	short string
	fn    func(nodes []report.Node) report.Table
}

func (v simpleView) command() *cobra.Command {
	return withRunFlag(&cobra.Command{
		Use:   v.use,
		Short: v.short,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScoped(cmd)
			if err != nil {
				return err
			}
			printTable(v.fn(sc.nodes))
			return nil
		},
	})
}

var simpleScopedViews = []simpleView{
	{"stats", "Per-agent delegation stats", report.ByAgent},
	{"models", "Per-model delegation stats", report.ByModel},
	{"providers", "Per-provider delegation stats", report.ByProvider},
	{"depth", "Per-depth delegation stats", report.ByDepth},
	{"errors", "Failed delegations", report.Failed},
	{"active", "Currently in-flight delegations", report.Active},
	{"cost", "Per-run cost table", report.CostBreakdown},
	{"success-breakdown", "Success vs. failure split", report.SuccessBreakdown},
	{"token-efficiency", "Cost per 1k tokens, bucketed", report.TokenEfficiency},

	{"daily", "Delegations bucketed by UTC day", report.Daily},
	{"hourly", "Delegations bucketed by UTC hour", report.Hourly},
	{"monthly", "Delegations bucketed by UTC month", report.Monthly},
	{"quarterly", "Delegations bucketed by UTC quarter", report.Quarterly},
	{"weekly", "Delegations bucketed by ISO week", report.Weekly},
	{"weekday", "Delegations bucketed by ISO weekday", report.Weekday},
	{"time-of-day", "Delegations bucketed by time of day", report.TimeOfDay},
	{"day-of-month", "Delegations bucketed by day of month", report.DayOfMonth},

	{"duration-bucket", "Duration histogram", report.DurationBucket},
	{"token-bucket", "Token-count histogram", report.TokenBucket},
	{"cost-bucket", "Cost histogram", report.CostBucket},
	{"depth-bucket", "Nesting-depth histogram", report.DepthBucket},

	{"model-tier", "Delegations grouped by model tier", report.ModelTier},
	{"provider-tier", "Delegations grouped by provider tier", report.ProviderTier},

	{"agent-model", "Agent × model cross-product", report.AgentModel},
	{"provider-model", "Provider × model cross-product", report.ProviderModel},
	{"agent-provider", "Agent × provider cross-product", report.AgentProvider},
}

// rankedView is a ranking leaf that honors --limit the same way top/slow/
// recent do at the node level, capping the number of ranked groups printed.
type rankedView struct {
	use   string
	short string
	fn    func(nodes []report.Node, limit int) report.Table
}

func (v rankedView) command() *cobra.Command {
	return withLimitAndRun(&cobra.Command{
		Use:   v.use,
		Short: v.short,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScoped(cmd)
			if err != nil {
				return err
			}
			limit, _ := cmd.Flags().GetInt("limit")
			printTable(v.fn(sc.nodes, limit))
			return nil
		},
	})
}

var rankedScopedViews = []rankedView{
	{"agent-cost-rank", "Agents ranked by total cost", report.AgentCostRank},
	{"model-cost-rank", "Models ranked by total cost", report.ModelCostRank},
	{"provider-cost-rank", "Providers ranked by total cost", report.ProviderCostRank},
	{"run-cost-rank", "Runs ranked by total cost", report.RunCostRank},

	{"agent-success-rank", "Agents ranked by success rate", report.AgentSuccessRank},
	{"model-success-rank", "Models ranked by success rate", report.ModelSuccessRank},
	{"provider-success-rank", "Providers ranked by success rate", report.ProviderSuccessRank},
	{"run-success-rank", "Runs ranked by success rate", report.RunSuccessRank},

	{"agent-token-rank", "Agents ranked by total tokens", report.AgentTokenRank},
	{"model-token-rank", "Models ranked by total tokens", report.ModelTokenRank},
	{"provider-token-rank", "Providers ranked by total tokens", report.ProviderTokenRank},
	{"run-token-rank", "Runs ranked by total tokens", report.RunTokenRank},

	{"agent-duration-rank", "Agents ranked by average duration", report.AgentDurationRank},
}
