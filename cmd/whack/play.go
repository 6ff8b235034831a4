package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-whack/internal/config"
	"github.com/vovakirdan/tui-whack/internal/platform/tui"
)

var (
	flagDifficulty string
	flagDuration   int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a round directly",
	Long: `Start a round without the setup menu.

Controls:
  1-9            - Whack that cell
  Mouse click    - Whack the clicked cell
  Arrows/WASD    - Move the cursor
  Enter/Space    - Whack the cell under the cursor
  Tab            - Cycle difficulty
  R              - Restart (after game over)
  B/Esc          - Back to the setup menu
  Q/Ctrl+C       - Quit
  Ctrl+S         - Save a screenshot to ~/.whack/screenshots

Difficulty options:
  easy    - Plants every 2s, no decoys
  medium  - Plants every 1.5s, some moles are decoys
  hard    - Plants every 0.5s, more decoys

Examples:
  whack play
  whack play --difficulty hard
  whack play --duration 30
  whack play --config ./my-whack.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "easy", "Difficulty: easy, medium, hard (or 1-3)")
	playCmd.Flags().IntVar(&flagDuration, "duration", 0, "Round length in seconds (0 = config default)")
}

func runPlay(_ *cobra.Command, _ []string) {
	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	e := setup()
	defer e.close()

	sel := tui.Selection{Duration: flagDuration, Difficulty: difficulty}
	if sel.Duration <= 0 {
		sel.Duration = e.cfg.Session.Duration
	}

	cfg := runtimeConfig()
	back, err := playRound(sel, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		return
	}
	if back {
		menuLoop(e, sel, cfg)
	}
}
