package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-whack/internal/engine"
	"github.com/vovakirdan/tui-whack/internal/games/whack"
	"github.com/vovakirdan/tui-whack/internal/storage"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List achievements and how often they were unlocked",
	Args:  cobra.NoArgs,
	Run:   runAchievements,
}

func runAchievements(_ *cobra.Command, _ []string) {
	counts := map[string]int{}
	if store, err := storage.Open(flagDBPath); err == nil {
		if stats, err := store.GetGameStats(whack.ID); err == nil {
			counts = stats.Achievements
		}
		store.Close()
	}

	// Calculate column widths
	maxNameLen := len("Achievement")
	for _, a := range engine.Achievements() {
		maxNameLen = max(maxNameLen, len(a))
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxNameLen, "Achievement", "Unlocked", "Condition")
	fmt.Printf("  %-*s  %-8s  %s\n", maxNameLen, "-----------", "--------", "---------")
	for _, a := range engine.Achievements() {
		fmt.Printf("  %-*s  %-8d  %s\n", maxNameLen, a, counts[string(a)], a.Description())
	}
}
