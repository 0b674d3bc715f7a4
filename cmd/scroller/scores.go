package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scroller/internal/games/scroller"
	"github.com/vovakirdan/tui-scroller/internal/storage"
)

// recentRuns is how many history rows the scores command lists.
const recentRuns = 5

// runHistory is implemented by stores that keep every finished run.
type runHistory interface {
	Stats() (storage.Stats, error)
	RecentRuns(limit int) ([]storage.Run, error)
}

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the top 10 high scores.

With --db the SQLite store is read, and a summary of every finished run
is printed below the table.

Examples:
  scroller scores
  scroller scores --scores ./high_scores.txt
  scroller scores --db ~/.scroller/scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(io.Discard, "scroller")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := openStore(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening score storage: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	records, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Top 10 High Scores")
	fmt.Fprintln(out)

	if len(records) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'scroller' to set the first high score!")
		return
	}

	for _, line := range scroller.BoardLines(records) {
		fmt.Fprintf(out, "  %s\n", line)
	}

	history, ok := store.(runHistory)
	if !ok {
		return
	}
	s, err := history.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run history: %v\n", err)
		return
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Runs played:  %d\n", s.Runs)
	if s.Runs > 0 {
		fmt.Fprintf(out, "Best:         %d\n", s.HighScore)
		fmt.Fprintf(out, "Average:      %.1f\n", s.AvgScore)
		fmt.Fprintf(out, "Deepest:      level %d\n", s.MaxLevel)
		fmt.Fprintf(out, "Last played:  %s\n", s.LastPlayed.Format("2006-01-02 15:04"))
	}

	runs, err := history.RecentRuns(recentRuns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving recent runs: %v\n", err)
		return
	}
	if len(runs) == 0 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Recent runs")
	for _, r := range runs {
		name := r.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(out, "  %-19s  %6d  level %-3d  %s\n", name, r.Score, r.Level, r.Duration.Round(time.Second))
	}
}
