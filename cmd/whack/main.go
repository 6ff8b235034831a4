// whack is a timed Whack-a-Mole reaction game for the terminal.
//
// Usage:
//
//	whack                    - Start the setup menu
//	whack play               - Start a round directly
//	whack serve              - Start SSH server for remote play
//	whack scores             - Show the best rounds
//	whack scores clear       - Delete recorded rounds and the high score
//	whack achievements       - List achievements and unlock counts
//	whack config             - Print the default configuration
//
// Global flags:
//
//	--fps <rate>       - Set frame rate (default: 30)
//	--seed <value>     - Set RNG seed for reproducible rounds
//	--db <path>        - Set database path (default: ~/.whack/scores.db)
//	--config <path>    - Load settings from a YAML file
//	--log-file <path>  - Write logs to a file
//	--mute             - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagMute    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "whack",
	Short: "Whack-a-Mole - a timed reaction game for your terminal",
	Long: `Whack moles as they pop out of a 3x3 board before the clock runs out.
Hitting a plant ends the round at once; golden moles are worth a bonus.

Available commands:
  play          - Start a round directly
  serve         - Start SSH server for remote play
  scores        - View the best rounds
  achievements  - List achievements
  config        - Print the default configuration

Run without a command to open the setup menu.

Examples:
  whack
  whack play --difficulty hard --duration 30
  whack serve --ssh :2222
  whack scores --recent`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.whack/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(configCmd)
}
