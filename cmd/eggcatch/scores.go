package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggcatch/internal/registry"
	"github.com/vovakirdan/eggcatch/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [classic|marathon]",
	Short: "Show recorded rounds",
	Long: `Display the best rounds and the best score for a mode.

Examples:
  eggcatch scores
  eggcatch scores marathon
  eggcatch scores --recent --limit 20
  eggcatch scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent rounds instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the history and best score for the mode")
}

func runScores(_ *cobra.Command, args []string) {
	mode, err := modeFromArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	id := gameID(mode)

	game, ok := registry.Lookup(id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: game %q is not registered\n", id)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRounds(id); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title)
		return
	}

	var rounds []storage.RoundRecord
	heading := "Best Rounds"
	if flagScoresRecent {
		heading = "Recent Rounds"
		rounds, err = store.RecentRounds(id, flagScoresLimit)
	} else {
		rounds, err = store.TopRounds(id, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - %s\n", heading, game.Title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'eggcatch play %s' to set the first score!\n", mode)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %s\n", "Rank", "Score", "Ending", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %s\n", "----", "-----", "------", "----")
	for i, r := range rounds {
		ending := "time up"
		if r.EndReason == "game_over_color" {
			ending = "game over"
		}
		fmt.Printf("  %-4d  %-8d  %-10s  %s\n", i+1, r.Score, ending, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(id); err == nil {
		fmt.Printf("Best: %d  Rounds: %d  Average: %.1f\n", stats.Best, stats.Rounds, stats.AvgScore)
	}
}
