package engine

import (
	"github.com/ramandeep-singh77/glassbox/frontier"
)

// strategy is one row of the closed algorithm table: the frontier
// discipline, the metric selections are judged by, and the cost rule.
// The driver is generic over this table; adding a fifth algorithm means
// adding a row, not threading a new branch through the loop.
type strategy struct {
	kind          frontier.Kind
	metric        Metric
	policy        Policy
	costAware     bool
	usesHeuristic bool
}

var strategies = map[Algorithm]strategy{
	AlgoBFS:      {kind: frontier.KindQueue, metric: MetricDepth, policy: PolicyFIFO},
	AlgoDFS:      {kind: frontier.KindStack, metric: MetricDepth, policy: PolicyLIFO},
	AlgoDijkstra: {kind: frontier.KindHeap, metric: MetricG, policy: PolicyMin, costAware: true},
	AlgoAStar:    {kind: frontier.KindHeap, metric: MetricF, policy: PolicyMin, costAware: true, usesHeuristic: true},
}

// priority is the number the heap orders by: f for A*, g for Dijkstra.
func (s strategy) priority(it frontier.Item) float64 {
	if s.metric == MetricF {
		return it.F
	}

	return it.G
}

// metricValue reads the strategy-relevant comparison number off an item.
func metricValue(it frontier.Item, m Metric) float64 {
	switch m {
	case MetricG:
		return it.G
	case MetricF:
		return it.F
	default:
		return float64(it.Depth)
	}
}
