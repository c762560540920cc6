package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alert-rush/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run leaderboard",
	Long: `Display the top recorded runs and aggregate session statistics.

Examples:
  alertrush scores
  alertrush scores --limit 20
  alertrush scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the entire run history")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Alert Rush - Top Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'alertrush play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %-5s  %-6s  %s\n",
		"Rank", "Score", "Resolved", "Streak", "Tier", "Shift", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %-5s  %-6s  %s\n",
		"----", "-----", "--------", "------", "----", "-----", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8d  %-6d  %-5d  %4ds  %s\n",
			i+1, r.Score, r.CompletedTasks, r.MaxStreak, r.Tier, r.DurationSecs, dateStr)
	}

	stats, err := store.Stats()
	if err != nil {
		return
	}

	fmt.Println()
	fmt.Printf("Shifts played: %d   High score: %d   Best streak: %d   Avg score: %.0f\n",
		stats.GamesPlayed, stats.HighScore, stats.BestStreak, stats.AvgScore)
}
