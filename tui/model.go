// Package tui plays a completed trace back in the terminal. Playback is
// pure indexing into the recorded steps; nothing is ever recomputed, so
// stepping backward is as cheap as stepping forward.
//
// The model is single-threaded inside the bubbletea event loop. Do not
// touch it from other goroutines.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ramandeep-singh77/glassbox/engine"
	"github.com/ramandeep-singh77/glassbox/env"
	"github.com/ramandeep-singh77/glassbox/narrate"
	"github.com/ramandeep-singh77/glassbox/render"
)

// Config tunes playback behavior.
type Config struct {
	// AutoplayInterval is the delay between steps while autoplay runs.
	AutoplayInterval time.Duration

	// ShowNarration starts with the narration panel visible.
	ShowNarration bool
}

// DefaultConfig returns the playback defaults.
func DefaultConfig() Config {
	return Config{
		AutoplayInterval: 400 * time.Millisecond,
		ShowNarration:    true,
	}
}

// tickMsg drives autoplay.
type tickMsg time.Time

// Model is the bubbletea model for trace playback.
type Model struct {
	cfg   Config
	trace *engine.Trace

	// grid is non-nil when the world is a board; graph worlds fall back
	// to the textual step panel.
	grid     *env.Grid
	startKey string
	goalKey  string

	index    int
	playing  bool
	narrated bool
	showHelp bool

	viewport viewport.Model
	ready    bool
	width    int
	height   int
	quitting bool
}

// New builds a playback model over a completed trace. The world the
// trace was recorded on is passed alongside so board runs can be drawn
// cell by cell.
func New(tr *engine.Trace, world env.Environment, cfg Config) Model {
	grid, _ := world.(*env.Grid)
	if cfg.AutoplayInterval <= 0 {
		cfg.AutoplayInterval = DefaultConfig().AutoplayInterval
	}

	return Model{
		cfg:      cfg,
		trace:    tr,
		grid:     grid,
		startKey: tr.Start,
		goalKey:  tr.Goal,
		narrated: cfg.ShowNarration,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4
		footerHeight := 2
		viewportHeight := m.height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = viewportHeight
		}
		m.refreshViewport()
		return m, nil

	case tickMsg:
		if !m.playing {
			return m, nil
		}
		if m.index >= m.lastIndex() {
			m.playing = false
			return m, nil
		}
		m.index++
		m.refreshViewport()
		return m, m.tick()

	case tea.KeyMsg:
		if m.showHelp {
			switch msg.String() {
			case "q", "?", "esc":
				m.showHelp = false
				m.refreshViewport()
			}
			return m, nil
		}

		switch msg.String() {
		case "right", "l":
			m.playing = false
			m.seek(m.index + 1)

		case "left", "h":
			m.playing = false
			m.seek(m.index - 1)

		case " ", "space":
			m.playing = !m.playing
			if m.playing {
				if m.index >= m.lastIndex() {
					m.seek(0)
				}
				return m, m.tick()
			}

		case "home", "g":
			m.playing = false
			m.seek(0)

		case "end", "G":
			m.playing = false
			m.seek(m.lastIndex())

		case "n":
			m.narrated = !m.narrated
			m.refreshViewport()

		case "?":
			m.showHelp = true
			m.refreshViewport()

		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "j", "down":
			m.viewport.LineDown(1)

		case "k", "up":
			m.viewport.LineUp(1)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return "Playback closed.\n"
	}
	if !m.ready {
		return "Loading...\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// Index returns the step the playback currently points at.
func (m Model) Index() int { return m.index }

// Playing reports whether autoplay is running.
func (m Model) Playing() bool { return m.playing }

func (m Model) lastIndex() int {
	return len(m.trace.Steps) - 1
}

func (m *Model) seek(i int) {
	if i < 0 {
		i = 0
	}
	if i > m.lastIndex() {
		i = m.lastIndex()
	}
	m.index = i
	m.refreshViewport()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.AutoplayInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	if m.showHelp {
		m.viewport.SetContent(m.renderHelp())
		return
	}
	m.viewport.SetContent(m.renderStep())
}

func (m Model) current() engine.StepSnapshot {
	return m.trace.Steps[m.index]
}

func (m Model) renderHeader() string {
	snap := m.current()
	title := titleStyle.Render(fmt.Sprintf("%s  %s -> %s", m.trace.Algorithm, m.trace.Start, m.trace.Goal))
	about := aboutStyle.Render(narrate.Algorithm(m.trace.Algorithm))
	position := fmt.Sprintf("step %d/%d  %s",
		m.index, m.lastIndex(), phaseBadge(snap.Phase))

	return strings.Join([]string{title, about, position}, "\n")
}

func (m Model) renderStep() string {
	snap := m.current()
	var parts []string

	if m.grid != nil {
		parts = append(parts, render.Grid(snap, m.grid, m.startKey, m.goalKey))
		parts = append(parts, legendStyle.Render("S start  G goal  @ current  * path  + frontier  . closed  # wall"))
	} else {
		parts = append(parts, m.renderGraphPanel(snap))
	}

	if m.narrated {
		parts = append(parts, narrationStyle.Render(narrate.Step(snap)))
	}
	if len(snap.Warnings) > 0 && !m.narrated {
		// Narration embeds warnings; with the panel off they still must show.
		parts = append(parts, warningStyle.Render(strings.Join(snap.Warnings, "\n")))
	}

	return strings.Join(parts, "\n\n")
}

// renderGraphPanel is the board-less view: the head of the search plus
// the live frontier with its metric values.
func (m Model) renderGraphPanel(snap engine.StepSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "at %s\n", snap.Key)
	fmt.Fprintf(&b, "frontier (%d):\n", len(snap.Frontier))
	for i, it := range snap.Frontier {
		if i == frontierPanelRows {
			fmt.Fprintf(&b, "  ... %d more\n", len(snap.Frontier)-frontierPanelRows)
			break
		}
		fmt.Fprintf(&b, "  %-12s g=%-8.4g f=%-8.4g\n", it.Key, it.G, it.F)
	}
	fmt.Fprintf(&b, "closed %d of %d known nodes", countTrue(snap.Closed), len(snap.Visited))

	return b.String()
}

// frontierPanelRows caps the frontier listing so huge frontiers do not
// flood the panel.
const frontierPanelRows = 10

func countTrue(m map[string]bool) int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}

func (m Model) renderFooter() string {
	state := "paused"
	if m.playing {
		state = "playing"
	}

	return footerStyle.Render(
		fmt.Sprintf("[%s]  left/right step  space play  home/end jump  n narration  ? help  q quit", state))
}

func (m Model) renderHelp() string {
	rows := []struct{ key, desc string }{
		{"left, h", "one step back"},
		{"right, l", "one step forward"},
		{"space", "toggle autoplay (restarts from the top when finished)"},
		{"home, g", "jump to the first step"},
		{"end, G", "jump to the last step"},
		{"n", "toggle the narration panel"},
		{"j/k", "scroll the view"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Playback keys"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(helpKeyStyle.Render(fmt.Sprintf("%-10s", r.key)))
		b.WriteString("  ")
		b.WriteString(helpDescStyle.Render(r.desc))
		b.WriteString("\n")
	}

	return b.String()
}

func phaseBadge(p engine.Phase) string {
	style, ok := phaseStyles[p]
	if !ok {
		return string(p)
	}

	return style.Render(narrate.PhaseLabel(p))
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	aboutStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	legendStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	narrationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	phaseStyles = map[engine.Phase]lipgloss.Style{
		engine.PhaseInit:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		engine.PhaseSelect:    lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		engine.PhaseExpand:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		engine.PhaseRelax:     lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
		engine.PhaseEnqueue:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		engine.PhaseFound:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		engine.PhaseExhausted: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
)
