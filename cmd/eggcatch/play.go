package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggcatch/internal/platform/tui"
	"github.com/vovakirdan/eggcatch/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [classic|marathon]",
	Short: "Play a round",
	Long: `Start playing Egg Catch. The mode defaults to classic, which lasts
round.duration_secs (15 seconds by default); marathon rounds last
round.marathon_secs (60 seconds by default).

Controls:
  Left/A, Right/D  - Move the basket
  Enter/Space      - Start the round
  R                - Play again after the round ends
  B/Esc            - Leave after the round ends
  Q/Ctrl+C         - Quit

Examples:
  eggcatch play
  eggcatch play marathon
  eggcatch play --seed 42
  eggcatch play --config ./my-eggcatch.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	mode, err := modeFromArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'eggcatch list' to see available modes.")
		os.Exit(1)
	}
	mustValidConfig(mode)

	game, err := registry.Create(gameID(mode))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	_, runErr := tui.Run(game, store, runtimeConfig(), appLogger)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
