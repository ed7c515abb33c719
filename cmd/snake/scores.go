package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arcade/internal/logging"
	"github.com/vovakirdan/snake-arcade/internal/registry"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

var flagReset bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and stats for a mode",
	Long: `Display the top 10 games and the lifetime stats of a mode
(default: snake).

Examples:
  snake scores
  snake scores snake_classic
  snake scores --reset`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Erase the history and stats of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "snake"
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available modes.")
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	records := storage.NewRecords(store, gameID, logging.Discard())

	if flagReset {
		records.ResetAllStats()
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Erased all records for %s.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-7s  %-5s  %-5s  %-10s  %s\n", "Rank", "Score", "Level", "Food", "Difficulty", "Date")
		fmt.Printf("  %-4s  %-7s  %-5s  %-5s  %-10s  %s\n", "----", "-----", "-----", "----", "----------", "----")
		for i, e := range scores {
			fmt.Printf("  %-4d  %-7d  %-5d  %-5d  %-10s  %s\n",
				i+1, e.Score, e.Level, e.FoodEaten, e.Difficulty, e.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	stats := records.AllStats()
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Food eaten: %d  Best streak: %d\n",
		stats.HighScore, stats.GamesPlayed, stats.TotalFoodEaten, stats.BestStreak)
}
