// scroller is an ASCII side-scrolling runner for the terminal.
//
// Usage:
//
//	scroller                 - Play with the default settings
//	scroller play            - Play a game
//	scroller scores          - Show the top 10 high scores
//	scroller serve           - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--scores <path>    - Set the score file (default: high_scores.txt)
//	--db <path>        - Keep scores in SQLite instead of the score file
//	--config <path>    - Load a custom game config YAML
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagScoresPath string
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scroller",
	Short: "ASCII Scroller - a side-scrolling runner for your terminal",
	Long: `ASCII Scroller is a side-scrolling runner played in the terminal.
Jump over rocks, cacti and trees, climb onto structures and survive
as the world speeds up level after level.

Running scroller without a command starts a game.

Available commands:
  play     - Play a game
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  scroller
  scroller play --difficulty hard
  scroller play --classic --sound
  scroller scores --db ~/.scroller/scores.db
  scroller serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagScoresPath, "scores", "high_scores.txt", "Path to the high score file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to a SQLite scores database (overrides --scores)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	addPlayFlags(rootCmd)
	addPlayFlags(playCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
