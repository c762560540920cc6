// alertrush is a terminal alert-triage arcade: resolve incoming alerts
// before the grid destabilizes.
//
// Usage:
//
//	alertrush play           - Start a shift in your terminal
//	alertrush serve          - Start SSH server for remote play
//	alertrush scores         - Show the run leaderboard
//	alertrush config         - Print the default engine tuning
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible spawns
//	--db <path>     - Set database path (default: ~/.alertrush/runs.db)
//	--config <path> - Path to a custom tuning YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "alertrush",
	Short: "Alert Rush - triage the alert storm in your terminal",
	Long: `Alert Rush puts you on shift at a failing control grid. Alerts pour
in faster and faster; resolve their tasks before they expire or the grid
goes down.

Available commands:
  play     - Start a shift
  serve    - Start SSH server for remote play
  scores   - View the run leaderboard
  config   - Print the default engine tuning YAML

Examples:
  alertrush play
  alertrush play --preset relaxed
  alertrush serve --ssh :2222
  alertrush scores --limit 20`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.alertrush/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom engine tuning YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
