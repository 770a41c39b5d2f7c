package engine

import (
	"sort"

	"github.com/ramandeep-singh77/glassbox/frontier"
)

// maxRejections caps how many near-miss alternatives a selection explains.
const maxRejections = 4

// Rejections answers "why not these?" for one selection: given the
// remaining frontier and the chosen item, it returns up to four
// alternatives ranked ascending by metric, each paired with the chosen
// value for direct comparison.
//
// Exact ties with the chosen value are excluded: reporting a tie as a
// rejection would imply a discriminator that did not exist. Entries for
// the chosen item's own key are excluded too; a dominated duplicate of
// the same node is not an alternative.
//
// The function is pure and stable: inputs are never mutated, and
// candidates with equal metric values keep their frontier order.
func Rejections(items []frontier.Item, chosen frontier.Item, metric Metric) []RejectionReason {
	chosenValue := metricValue(chosen, metric)
	candidates := make([]frontier.Item, 0, len(items))
	for _, it := range items {
		if it.Key == chosen.Key {
			continue
		}
		if metricValue(it, metric) == chosenValue {
			continue
		}
		candidates = append(candidates, it)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return metricValue(candidates[i], metric) < metricValue(candidates[j], metric)
	})
	if len(candidates) > maxRejections {
		candidates = candidates[:maxRejections]
	}
	if len(candidates) == 0 {
		return nil
	}

	out := make([]RejectionReason, len(candidates))
	for i, c := range candidates {
		out[i] = RejectionReason{
			Candidate:      c,
			Chosen:         chosen,
			Metric:         metric,
			CandidateValue: metricValue(c, metric),
			ChosenValue:    chosenValue,
		}
	}

	return out
}
