package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/alert-rush/internal/config"
	"github.com/vovakirdan/alert-rush/internal/engine"
	"github.com/vovakirdan/alert-rush/internal/loop"
	"github.com/vovakirdan/alert-rush/internal/platform/tui"
	"github.com/vovakirdan/alert-rush/internal/storage"
)

var flagPreset string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a shift",
	Long: `Start an interactive triage shift in the current terminal.

Controls:
  Up/Down, 1-9 - Select an alert
  Enter        - Resolve the selected alert
  F            - Abandon the selected alert
  P/Esc        - Pause
  M            - Mute
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Pacing presets:
  relaxed  - Slower spawns, later escalation
  standard - Stock tuning
  overrun  - Faster spawns, earlier escalation
  fixed    - No timed difficulty escalation

Examples:
  alertrush play
  alertrush play --preset overrun
  alertrush play --config ./my-tuning.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Pacing preset: relaxed, standard, overrun, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play requires an interactive terminal")
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagPreset != "" {
		config.ApplyPreset(&cfg, config.Preset(flagPreset))
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Open run storage
	runs, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the shift still works
		runs = nil
	}

	store := engine.NewStore(engine.NewReducer(cfg.Rules()))
	ctrl := loop.New(store, cfg, seed, nil)

	runErr := tui.Run(ctrl, runs)

	ctrl.Close()
	if runs != nil {
		runs.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
