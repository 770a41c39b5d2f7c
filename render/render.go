// Package render draws snapshots and run summaries for terminals and
// markdown reports. The grid view is one glyph per cell; the metrics
// table compares whole runs side by side.
package render

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ramandeep-singh77/glassbox/engine"
	"github.com/ramandeep-singh77/glassbox/env"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// Cell glyphs, in precedence order. Walls and the endpoints always show;
// the rest layer current over path over frontier over closed.
const (
	GlyphWall     = '#'
	GlyphStart    = 'S'
	GlyphGoal     = 'G'
	GlyphCurrent  = '@'
	GlyphPath     = '*'
	GlyphFrontier = '+'
	GlyphClosed   = '.'
	GlyphOpen     = ' '
)

// Grid renders one snapshot of a board as rows of glyphs, y ascending,
// cells separated by single spaces.
func Grid(snap engine.StepSnapshot, g *env.Grid, startKey, goalKey string) string {
	inFrontier := make(map[string]struct{}, len(snap.Frontier))
	for _, it := range snap.Frontier {
		inFrontier[it.Key] = struct{}{}
	}
	onPath := make(map[string]struct{}, len(snap.Path))
	for _, c := range snap.Path {
		onPath[env.GridKey(int(c.X), int(c.Y))] = struct{}{}
	}

	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.Width(); x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(glyphAt(x, y, g, snap, startKey, goalKey, inFrontier, onPath))
		}
	}

	return b.String()
}

func glyphAt(
	x, y int,
	g *env.Grid,
	snap engine.StepSnapshot,
	startKey, goalKey string,
	inFrontier, onPath map[string]struct{},
) rune {
	key := env.GridKey(x, y)
	switch {
	case g.Wall(x, y):
		return GlyphWall
	case key == startKey:
		return GlyphStart
	case key == goalKey:
		return GlyphGoal
	case key == snap.Key:
		return GlyphCurrent
	}
	if _, ok := onPath[key]; ok {
		return GlyphPath
	}
	if _, ok := inFrontier[key]; ok {
		return GlyphFrontier
	}
	if snap.Closed[key] {
		return GlyphClosed
	}

	return GlyphOpen
}

// MetricsTable compares completed runs, one row per trace. Numeric
// columns are right-aligned; cost is the recorded cost of the goal, or
// "-" when the run never reached it.
func MetricsTable(mode Mode, traces ...*engine.Trace) string {
	w := table.NewWriter()
	if mode == ASCII {
		w.SetStyle(table.StyleLight)
	}
	w.AppendHeader(table.Row{"Algorithm", "Found", "Path", "Cost", "Explored", "Relaxations", "Peak frontier", "Steps"})
	for _, tr := range traces {
		w.AppendRow(table.Row{
			string(tr.Algorithm),
			tr.Found,
			len(tr.Path),
			goalCost(tr),
			tr.Metrics.Explored,
			tr.Metrics.Relaxations,
			tr.Metrics.PeakFrontier,
			tr.Metrics.Steps,
		})
	}
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
	})
	if mode == Markdown {
		return w.RenderMarkdown()
	}

	return w.Render()
}

func goalCost(tr *engine.Trace) string {
	if !tr.Found || len(tr.Steps) == 0 {
		return "-"
	}
	final := tr.Steps[len(tr.Steps)-1]
	cost, known := final.CostSoFar[tr.Goal]
	if !known {
		return "-"
	}

	return trimFloat(cost)
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
