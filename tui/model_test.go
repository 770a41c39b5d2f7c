package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramandeep-singh77/glassbox/engine"
	"github.com/ramandeep-singh77/glassbox/env"
)

func playbackFixture(t *testing.T) (Model, *engine.Trace) {
	t.Helper()
	g, err := env.NewGrid(3, 3, []string{"1,1"})
	require.NoError(t, err)
	tr, err := engine.BuildTrace(g, "0,0", "2,2")
	require.NoError(t, err)
	m := New(tr, g, DefaultConfig())

	// The event loop normally delivers the first WindowSizeMsg.
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return sized.(Model), tr
}

func key(k string) tea.KeyMsg {
	switch k {
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModel_StartsAtStepZero(t *testing.T) {
	m, tr := playbackFixture(t)
	assert.Equal(t, 0, m.Index())
	assert.False(t, m.Playing())

	view := m.View()
	assert.Contains(t, view, string(tr.Algorithm))
	assert.Contains(t, view, "step 0/")
	assert.Contains(t, view, "S", "board view shows the start cell")
}

func TestModel_ArrowsStepAndClamp(t *testing.T) {
	m, tr := playbackFixture(t)

	m, _ = step(t, m, key("right"))
	m, _ = step(t, m, key("right"))
	assert.Equal(t, 2, m.Index())

	m, _ = step(t, m, key("left"))
	assert.Equal(t, 1, m.Index())

	m, _ = step(t, m, key("home"))
	assert.Equal(t, 0, m.Index())
	m, _ = step(t, m, key("left"))
	assert.Equal(t, 0, m.Index(), "stepping before the first snapshot clamps")

	m, _ = step(t, m, key("end"))
	assert.Equal(t, len(tr.Steps)-1, m.Index())
	m, _ = step(t, m, key("right"))
	assert.Equal(t, len(tr.Steps)-1, m.Index(), "stepping past the last snapshot clamps")
}

func TestModel_AutoplayAdvancesOnTicks(t *testing.T) {
	m, tr := playbackFixture(t)

	m, cmd := step(t, m, key("space"))
	assert.True(t, m.Playing())
	require.NotNil(t, cmd, "autoplay schedules its first tick")

	m, cmd = step(t, m, tickMsg(time.Now()))
	assert.Equal(t, 1, m.Index())
	require.NotNil(t, cmd, "each tick schedules the next")

	// Pause: ticks in flight no longer move the head.
	m, _ = step(t, m, key("space"))
	assert.False(t, m.Playing())
	m, _ = step(t, m, tickMsg(time.Now()))
	assert.Equal(t, 1, m.Index())

	// At the end a tick stops the player instead of wrapping.
	m, _ = step(t, m, key("end"))
	m.playing = true
	m, _ = step(t, m, tickMsg(time.Now()))
	assert.False(t, m.Playing())
	assert.Equal(t, len(tr.Steps)-1, m.Index())
}

func TestModel_SpaceAtEndRestartsFromTheTop(t *testing.T) {
	m, _ := playbackFixture(t)
	m, _ = step(t, m, key("end"))

	m, cmd := step(t, m, key("space"))
	assert.True(t, m.Playing())
	assert.Equal(t, 0, m.Index())
	assert.NotNil(t, cmd)
}

func TestModel_NarrationToggle(t *testing.T) {
	m, _ := playbackFixture(t)
	assert.Contains(t, m.View(), "search begins", "narration is on by default")

	m, _ = step(t, m, key("n"))
	assert.NotContains(t, m.View(), "search begins")

	m, _ = step(t, m, key("n"))
	assert.Contains(t, m.View(), "search begins")
}

func TestModel_HelpOverlay(t *testing.T) {
	m, _ := playbackFixture(t)

	m, _ = step(t, m, key("?"))
	assert.Contains(t, m.View(), "Playback keys")

	// Keys other than the closers are ignored while help is up.
	m, _ = step(t, m, key("right"))
	assert.Equal(t, 0, m.Index())

	m, _ = step(t, m, key("?"))
	assert.NotContains(t, m.View(), "Playback keys")
}

func TestModel_QuitRendersFarewell(t *testing.T) {
	m, _ := playbackFixture(t)
	m, cmd := step(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, "Playback closed.\n", m.View())
}

func TestModel_GraphWorldUsesTextPanel(t *testing.T) {
	graph, err := env.NewGraph(false,
		[]env.Node{{ID: "A"}, {ID: "B", X: 1}, {ID: "C", X: 2}},
		[]env.Edge{{From: "A", To: "B", Cost: 1}, {From: "B", To: "C", Cost: 1}},
	)
	require.NoError(t, err)
	tr, err := engine.BuildTrace(graph, "A", "C", engine.WithAlgorithm(engine.AlgoDijkstra))
	require.NoError(t, err)

	m := New(tr, graph, DefaultConfig())
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = sized.(Model)

	view := m.View()
	assert.Contains(t, view, "frontier")
	assert.Contains(t, view, "at A")
}
