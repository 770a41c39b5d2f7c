package narrate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramandeep-singh77/glassbox/engine"
	"github.com/ramandeep-singh77/glassbox/env"
	"github.com/ramandeep-singh77/glassbox/frontier"
	"github.com/ramandeep-singh77/glassbox/narrate"
)

func TestAlgorithm_KnownAndUnknown(t *testing.T) {
	for _, a := range engine.Algorithms() {
		assert.NotEqual(t, string(a), narrate.Algorithm(a), "every shipped algorithm gets real words")
	}
	assert.Equal(t, "simulated-annealing", narrate.Algorithm(engine.Algorithm("simulated-annealing")))
}

func TestPhaseLabel(t *testing.T) {
	assert.Equal(t, "Select", narrate.PhaseLabel(engine.PhaseSelect))
	assert.Equal(t, "Exhausted", narrate.PhaseLabel(engine.PhaseExhausted))
	assert.Equal(t, "warp", narrate.PhaseLabel(engine.Phase("warp")))
}

func TestStep_InitAndExpand(t *testing.T) {
	init := engine.StepSnapshot{Phase: engine.PhaseInit, Key: "0,0"}
	assert.Equal(t, "search begins at 0,0; the frontier holds only the start", narrate.Step(init))

	expand := engine.StepSnapshot{Phase: engine.PhaseExpand, Key: "2,1"}
	assert.Equal(t, "2,1 is expanded and will not be visited again", narrate.Step(expand))

	expand.Warnings = []string{"memory is growing fast"}
	assert.Equal(t,
		"2,1 is expanded and will not be visited again (warning: memory is growing fast)",
		narrate.Step(expand))
}

func TestStep_SelectionByPolicy(t *testing.T) {
	fifo := engine.StepSnapshot{
		Phase:  engine.PhaseSelect,
		Key:    "1,0",
		Reason: &engine.SelectionReason{Policy: engine.PolicyFIFO},
	}
	assert.Equal(t, "1,0 leaves the front of the queue, first in and first out", narrate.Step(fifo))

	lifo := engine.StepSnapshot{
		Phase:  engine.PhaseSelect,
		Key:    "1,0",
		Reason: &engine.SelectionReason{Policy: engine.PolicyLIFO},
	}
	assert.Equal(t, "1,0 comes off the top of the stack, last in and first out", narrate.Step(lifo))

	minSel := engine.StepSnapshot{
		Phase:  engine.PhaseSelect,
		Key:    "B",
		Reason: &engine.SelectionReason{Policy: engine.PolicyMin, Metric: engine.MetricF, Value: 5},
		Rejections: []engine.RejectionReason{{
			Candidate:      frontier.Item{Key: "C"},
			Chosen:         frontier.Item{Key: "B"},
			Metric:         engine.MetricF,
			CandidateValue: 7,
			ChosenValue:    5,
		}},
	}
	assert.Equal(t,
		"B wins selection with the lowest f of 5; considered C but its f=7 exceeds 5",
		narrate.Step(minSel))
}

func TestStep_RelaxationWording(t *testing.T) {
	first := engine.StepSnapshot{
		Phase:      engine.PhaseRelax,
		Key:        "C",
		Relaxation: &engine.RelaxationEvent{From: "A", To: "C", NewG: 5, Improved: true},
	}
	assert.Equal(t, "C is reached for the first time through A at cost 5", narrate.Step(first))

	old := 5.0
	better := engine.StepSnapshot{
		Phase:      engine.PhaseRelax,
		Key:        "C",
		Relaxation: &engine.RelaxationEvent{From: "B", To: "C", OldG: &old, NewG: 2.5, Improved: true},
	}
	assert.Equal(t, "the cost of C improves from 5 to 2.5 through B", narrate.Step(better))
}

func TestStep_EnqueuePair(t *testing.T) {
	discovery := engine.StepSnapshot{
		Phase:        engine.PhaseEnqueue,
		Key:          "1,1",
		FrontierKind: frontier.KindStack,
		Relaxation:   &engine.RelaxationEvent{From: "1,0", To: "1,1", NewG: 2, Improved: true},
	}
	assert.Equal(t, "1,1 is discovered through 1,0 and heads for the stack", narrate.Step(discovery))

	settled := engine.StepSnapshot{
		Phase:        engine.PhaseEnqueue,
		Key:          "1,1",
		FrontierKind: frontier.KindQueue,
		Frontier:     []frontier.Item{{Key: "0,1"}, {Key: "1,1"}},
	}
	assert.Equal(t, "1,1 now waits in the queue with 1 others", narrate.Step(settled))
}

func TestStep_TerminalPhases(t *testing.T) {
	found := engine.StepSnapshot{
		Phase: engine.PhaseFound,
		Key:   "2,2",
		Path:  []env.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}},
	}
	assert.Equal(t, "the goal 2,2 is reached; the path spans 5 cells", narrate.Step(found))

	exhausted := engine.StepSnapshot{
		Phase:    engine.PhaseExhausted,
		Warnings: []string{"iteration cap 100 reached before the search completed; exploration truncated"},
	}
	assert.Equal(t,
		"the search stops before reaching the goal (warning: iteration cap 100 reached before the search completed; exploration truncated)",
		narrate.Step(exhausted))
}

// Every snapshot of a real run must narrate to something readable; a
// blank or raw-code sentence means a phase slipped through the maps.
func TestStep_CoversWholeTraces(t *testing.T) {
	grid, err := env.NewGrid(6, 6, []string{"3,0", "3,1", "3,2", "3,3"})
	require.NoError(t, err)

	for _, alg := range engine.Algorithms() {
		tr, err := engine.BuildTrace(grid, "0,0", "5,5", engine.WithAlgorithm(alg))
		require.NoError(t, err)
		for _, step := range tr.Steps {
			sentence := narrate.Step(step)
			assert.NotEmpty(t, sentence)
			assert.False(t, strings.HasPrefix(sentence, string(step.Phase)),
				"%s/%d: raw phase leaked into narration", alg, step.Index)
		}
	}
}
