package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-whack/internal/config"
	"github.com/vovakirdan/tui-whack/internal/core"
	"github.com/vovakirdan/tui-whack/internal/games/whack"
	"github.com/vovakirdan/tui-whack/internal/platform/tui"
	"github.com/vovakirdan/tui-whack/internal/registry"
)

func runMenu(_ *cobra.Command, _ []string) {
	e := setup()
	defer e.close()

	sel := tui.Selection{
		Duration:   e.cfg.Session.Duration,
		Difficulty: config.DifficultyEasy,
	}
	menuLoop(e, sel, runtimeConfig())
}

// menuLoop shows the setup menu, plays the chosen round and comes back
// until the player quits.
func menuLoop(e *env, sel tui.Selection, cfg core.RuntimeConfig) {
	for {
		menuResult, err := tui.RunMenu(e.cfg.Session.Durations, sel, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config
		sel = menuResult.Selection

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(e.store, whack.ID, whack.Title, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		back, err := playRound(sel, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !back {
			return
		}
	}
}

// playRound runs one game with sel and reports whether the player went
// back to the menu.
func playRound(sel tui.Selection, cfg core.RuntimeConfig) (bool, error) {
	whack.SetSelection(sel)
	game, err := registry.Create(whack.ID)
	if err != nil {
		return false, err
	}
	return tui.Run(game, cfg)
}
