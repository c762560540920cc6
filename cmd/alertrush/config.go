package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alert-rush/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default engine tuning YAML",
	Long: `Print the embedded default tuning file to stdout. Redirect it to
~/.alertrush/config.yaml to customize pacing.

Example:
  mkdir -p ~/.alertrush && alertrush config > ~/.alertrush/config.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		os.Stdout.Write(config.DefaultYAML())
		fmt.Println()
	},
}
