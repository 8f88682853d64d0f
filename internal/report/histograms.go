package report

// Bucket boundaries are half-open below: a value equal to the lower bound
// falls into the higher bucket (e.g. exactly 500ms is "fast", not
// "instant").

func durationBucket(ms uint64) string {
	switch {
	case ms < 500:
		return "instant (<500ms)"
	case ms < 2000:
		return "fast (500ms-2s)"
	case ms < 10000:
		return "normal (2-10s)"
	case ms < 60000:
		return "slow (10-60s)"
	default:
		return "very slow (>=60s)"
	}
}

var durationBucketOrder = map[string]int{
	"instant (<500ms)": 0, "fast (500ms-2s)": 1, "normal (2-10s)": 2,
	"slow (10-60s)": 3, "very slow (>=60s)": 4,
}

func tokenBucket(tokens uint64) string {
	switch {
	case tokens < 100:
		return "0-99"
	case tokens < 1000:
		return "100-999"
	case tokens < 10000:
		return "1,000-9,999"
	case tokens < 100000:
		return "10,000-99,999"
	default:
		return ">=100,000"
	}
}

var tokenBucketOrder = map[string]int{
	"0-99": 0, "100-999": 1, "1,000-9,999": 2, "10,000-99,999": 3, ">=100,000": 4,
}

func costBucket(cost float64) string {
	switch {
	case cost < 0.001:
		return "<$0.001"
	case cost < 0.01:
		return "$0.001-$0.01"
	case cost < 0.10:
		return "$0.01-$0.10"
	case cost < 1.00:
		return "$0.10-$1.00"
	default:
		return ">=$1.00"
	}
}

var costBucketOrder = map[string]int{
	"<$0.001": 0, "$0.001-$0.01": 1, "$0.01-$0.10": 2, "$0.10-$1.00": 3, ">=$1.00": 4,
}

func depthBucket(depth uint32) string {
	switch {
	case depth == 0:
		return "root"
	case depth == 1:
		return "sub"
	case depth == 2:
		return "deep"
	case depth == 3:
		return "deeper"
	default:
		return "very-deep"
	}
}

var depthBucketOrder = map[string]int{
	"root": 0, "sub": 1, "deep": 2, "deeper": 3, "very-deep": 4,
}

// DurationBucket, TokenBucket, CostBucket, and DepthBucket render the
// histogram views. Empty buckets are omitted.
func DurationBucket(nodes []Node) Table {
	g := groupByKey(nodes, func(n Node) (string, bool) { return durationBucket(n.DurationMs), true })
	sortByFixedOrder(g, durationBucketOrder)
	return renderGrouped(g)
}

func TokenBucket(nodes []Node) Table {
	g := groupByKey(nodes, func(n Node) (string, bool) {
		if n.TokensUsed == nil {
			return "", false
		}
		return tokenBucket(*n.TokensUsed), true
	})
	sortByFixedOrder(g, tokenBucketOrder)
	return renderGrouped(g)
}

func CostBucket(nodes []Node) Table {
	g := groupByKey(nodes, func(n Node) (string, bool) {
		if n.CostUSD == nil {
			return "", false
		}
		return costBucket(*n.CostUSD), true
	})
	sortByFixedOrder(g, costBucketOrder)
	return renderGrouped(g)
}

func DepthBucket(nodes []Node) Table {
	g := groupByKey(nodes, func(n Node) (string, bool) { return depthBucket(n.Depth), true })
	sortByFixedOrder(g, depthBucketOrder)
	return renderGrouped(g)
}
