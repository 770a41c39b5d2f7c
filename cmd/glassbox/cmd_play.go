package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/ramandeep-singh77/glassbox/catalog"
	"github.com/ramandeep-singh77/glassbox/tui"
)

var playFlags struct {
	search   searchFlags
	interval time.Duration
	narrate  bool
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Replay a search interactively in the terminal",
	Long: `Step through a trace in a terminal player: arrow keys to move, space
to autoplay, n to toggle narration, ? for help.

With no --scenario, an interactive picker lists the presets.`,
	RunE: runPlay,
}

func init() {
	registerSearchFlags(playCmd, &playFlags.search)
	registerAlgorithmFlag(playCmd, &playFlags.search)
	f := playCmd.Flags()
	f.DurationVar(&playFlags.interval, "interval", 400*time.Millisecond, "Autoplay delay between steps")
	f.BoolVar(&playFlags.narrate, "narrate", true, "Start with the narration panel visible")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if playFlags.search.scenario == "" {
		name, err := pickScenario()
		if err != nil {
			return err
		}
		playFlags.search.scenario = name
	}

	tr, world, _, err := buildTrace(cmd, playFlags.search)
	if err != nil {
		return err
	}

	cfg := tui.DefaultConfig()
	cfg.AutoplayInterval = playFlags.interval
	cfg.ShowNarration = playFlags.narrate

	p := tea.NewProgram(tui.New(tr, world, cfg), tea.WithAltScreen())
	_, err = p.Run()

	return err
}

// pickScenario offers the embedded presets in a terminal form.
func pickScenario() (string, error) {
	all, err := catalog.All()
	if err != nil {
		return "", err
	}
	options := make([]huh.Option[string], len(all))
	for i, s := range all {
		options[i] = huh.NewOption(fmt.Sprintf("%-14s %s", s.Name, s.Title), s.Name)
	}

	var name string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Pick a scenario").
			Options(options...).
			Value(&name),
	))
	if err := form.Run(); err != nil {
		return "", err
	}

	return name, nil
}
