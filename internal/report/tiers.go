package report

import "strings"

// modelTier classifies a model name by case-insensitive substring match,
// in priority order haiku > sonnet > opus > other.
func modelTier(model string) string {
	lower := strings.ToLower(model)
	switch {
	case strings.Contains(lower, "haiku"):
		return "haiku"
	case strings.Contains(lower, "sonnet"):
		return "sonnet"
	case strings.Contains(lower, "opus"):
		return "opus"
	default:
		return "other"
	}
}

// providerTier classifies a provider name the same way, over the
// well-known provider substrings.
func providerTier(provider string) string {
	lower := strings.ToLower(provider)
	switch {
	case strings.Contains(lower, "anthropic"):
		return "anthropic"
	case strings.Contains(lower, "openai"):
		return "openai"
	case strings.Contains(lower, "google"):
		return "google"
	default:
		return "other"
	}
}

// ModelTier and ProviderTier group completed delegations into the named
// tiers above, ranked by tokens descending.
func ModelTier(nodes []Node) Table {
	g := groupByKey(nodes, func(n Node) (string, bool) { return modelTier(n.Model), true })
	sortByTokensDesc(g)
	return renderGrouped(g)
}

func ProviderTier(nodes []Node) Table {
	g := groupByKey(nodes, func(n Node) (string, bool) { return providerTier(n.Provider), true })
	sortByTokensDesc(g)
	return renderGrouped(g)
}
