package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-whack/internal/games/whack"
	"github.com/vovakirdan/tui-whack/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
	flagYes    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best rounds",
	Long: `Display the best recorded rounds, or the latest ones with --recent.

Examples:
  whack scores
  whack scores --recent --limit 20
  whack scores clear --yes`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

var clearScoresCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete recorded rounds and the high score",
	Args:  cobra.NoArgs,
	Run:   runClearScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest rounds instead of the best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
	clearScoresCmd.Flags().BoolVar(&flagYes, "yes", false, "Confirm deletion")
	scoresCmd.AddCommand(clearScoresCmd)
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var sessions []storage.SessionRecord
	if flagRecent {
		sessions, err = store.RecentSessions(whack.ID, flagLimit)
	} else {
		sessions, err = store.TopSessions(whack.ID, flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	heading := "High Scores"
	if flagRecent {
		heading = "Recent Rounds"
	}
	fmt.Printf("%s - %s\n", heading, whack.Title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Run 'whack play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-7s  %-5s  %-4s  %-4s  %-8s  %s\n", "Rank", "Score", "Level", "Time", "Hits", "Miss", "End", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %-5s  %-4s  %-4s  %-8s  %s\n", "----", "-----", "-----", "----", "----", "----", "---", "----")
	for i, s := range sessions {
		fmt.Printf("  %-4d  %-6d  %-7s  %-5s  %-4d  %-4d  %-8s  %s\n",
			i+1, s.Score, s.Difficulty, fmt.Sprintf("%ds", s.Duration), s.Hits, s.Misses, s.EndReason,
			s.CreatedAt.Local().Format("2006-01-02 15:04"))
		if len(s.Achievements) > 0 {
			fmt.Printf("        %s\n", strings.Join(s.Achievements, ", "))
		}
	}

	stats, err := store.GetGameStats(whack.ID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Rounds: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}

func runClearScores(_ *cobra.Command, _ []string) {
	if !flagYes {
		fmt.Fprintln(os.Stderr, "Refusing to delete scores without --yes")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.ClearScores(whack.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
		return
	}
	fmt.Println("Scores cleared.")
}
