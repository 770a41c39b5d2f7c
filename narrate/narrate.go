// Package narrate turns trace snapshots into plain sentences.
//
// Rule: codes are for machines, words are for humans. The engine's
// phases, policies, and metrics stay terse on the wire; this package is
// where they become something a learner can read aloud. Pure functions,
// no state, unknown codes pass through as-is.
package narrate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ramandeep-singh77/glassbox/engine"
	"github.com/ramandeep-singh77/glassbox/frontier"
)

var algorithms = map[engine.Algorithm]string{
	engine.AlgoBFS:      "Breadth-first search sweeps outward one ring at a time; the fewest hops win.",
	engine.AlgoDFS:      "Depth-first search commits to a single branch and backtracks only when forced.",
	engine.AlgoDijkstra: "Dijkstra always expands the cheapest known node, so recorded costs only ever improve.",
	engine.AlgoAStar:    "A* is Dijkstra with a compass: cost paid so far plus an estimate of what remains.",
}

// Algorithm returns a one-line description of the search strategy.
// Unknown algorithms are returned as-is.
func Algorithm(a engine.Algorithm) string {
	if d, ok := algorithms[a]; ok {
		return d
	}

	return string(a)
}

var phaseLabels = map[engine.Phase]string{
	engine.PhaseInit:      "Init",
	engine.PhaseSelect:    "Select",
	engine.PhaseExpand:    "Expand",
	engine.PhaseRelax:     "Relax",
	engine.PhaseEnqueue:   "Enqueue",
	engine.PhaseFound:     "Found",
	engine.PhaseExhausted: "Exhausted",
}

// PhaseLabel returns the display label for a phase. Unknown phases are
// returned as-is.
func PhaseLabel(p engine.Phase) string {
	if l, ok := phaseLabels[p]; ok {
		return l
	}

	return string(p)
}

var metricWords = map[engine.Metric]string{
	engine.MetricDepth: "depth",
	engine.MetricG:     "g",
	engine.MetricF:     "f",
}

var kindWords = map[frontier.Kind]string{
	frontier.KindQueue: "queue",
	frontier.KindStack: "stack",
	frontier.KindHeap:  "priority heap",
}

// Step renders one snapshot as one sentence. Selection snapshots carry
// the reason and the why-nots, relaxations distinguish first discoveries
// from improvements, and warnings are appended verbatim.
func Step(s engine.StepSnapshot) string {
	switch s.Phase {
	case engine.PhaseInit:
		return fmt.Sprintf("search begins at %s; the frontier holds only the start", s.Key)
	case engine.PhaseSelect:
		return selectSentence(s)
	case engine.PhaseExpand:
		return withWarnings(fmt.Sprintf("%s is expanded and will not be visited again", s.Key), s.Warnings)
	case engine.PhaseRelax:
		return relaxSentence(s)
	case engine.PhaseEnqueue:
		return enqueueSentence(s)
	case engine.PhaseFound:
		base := fmt.Sprintf("the goal %s is reached; the path spans %d cells", s.Key, len(s.Path))
		return withWarnings(base+rejectionClauses(s.Rejections), s.Warnings)
	case engine.PhaseExhausted:
		return withWarnings("the search stops before reaching the goal", s.Warnings)
	}

	return string(s.Phase)
}

func selectSentence(s engine.StepSnapshot) string {
	var base string
	switch {
	case s.Reason == nil:
		base = fmt.Sprintf("%s is selected", s.Key)
	case s.Reason.Policy == engine.PolicyFIFO:
		base = fmt.Sprintf("%s leaves the front of the queue, first in and first out", s.Key)
	case s.Reason.Policy == engine.PolicyLIFO:
		base = fmt.Sprintf("%s comes off the top of the stack, last in and first out", s.Key)
	case s.Reason.Policy == engine.PolicyMin:
		base = fmt.Sprintf("%s wins selection with the lowest %s of %s",
			s.Key, metricWord(s.Reason.Metric), num(s.Reason.Value))
	default:
		base = fmt.Sprintf("%s is selected by %s", s.Key, s.Reason.Policy)
	}

	return base + rejectionClauses(s.Rejections)
}

func rejectionClauses(rejections []engine.RejectionReason) string {
	if len(rejections) == 0 {
		return ""
	}
	var b strings.Builder
	for _, r := range rejections {
		fmt.Fprintf(&b, "; considered %s but its %s=%s exceeds %s",
			r.Candidate.Key, metricWord(r.Metric), num(r.CandidateValue), num(r.ChosenValue))
	}

	return b.String()
}

func relaxSentence(s engine.StepSnapshot) string {
	e := s.Relaxation
	if e == nil {
		return fmt.Sprintf("%s is relaxed", s.Key)
	}
	if e.OldG == nil {
		return fmt.Sprintf("%s is reached for the first time through %s at cost %s",
			e.To, e.From, num(e.NewG))
	}

	return fmt.Sprintf("the cost of %s improves from %s to %s through %s",
		e.To, num(*e.OldG), num(e.NewG), e.From)
}

func enqueueSentence(s engine.StepSnapshot) string {
	if e := s.Relaxation; e != nil {
		return fmt.Sprintf("%s is discovered through %s and heads for the %s",
			e.To, e.From, kindWord(s.FrontierKind))
	}
	others := len(s.Frontier) - 1
	if others < 0 {
		others = 0
	}

	return fmt.Sprintf("%s now waits in the %s with %d others", s.Key, kindWord(s.FrontierKind), others)
}

func withWarnings(base string, warnings []string) string {
	if len(warnings) == 0 {
		return base
	}

	return base + " (warning: " + strings.Join(warnings, "; ") + ")"
}

func metricWord(m engine.Metric) string {
	if w, ok := metricWords[m]; ok {
		return w
	}

	return string(m)
}

func kindWord(k frontier.Kind) string {
	if w, ok := kindWords[k]; ok {
		return w
	}

	return string(k)
}

// num trims a float for prose: 4 stays 4, 2.5 stays 2.5.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
