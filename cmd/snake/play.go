package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arcade/internal/platform/tui"
	"github.com/vovakirdan/snake-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode (default: snake).

Modes:
  snake          - Typed food and power-ups
  snake_classic  - Plain 10-point food, no power-ups

Controls:
  Arrows/WASD  - Steer
  Space/P      - Pause
  R            - Restart (after game over)
  Esc/B        - Leave
  Q/Ctrl+C     - Quit

Difficulty options:
  easy    - 200ms ticks, slow speed-up, 0.8x points
  medium  - 150ms ticks, 1.0x points
  hard    - 100ms ticks, fast speed-up, 1.5x points

Examples:
  snake play
  snake play snake_classic
  snake play --difficulty hard
  snake play --config ./my-snake.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "snake"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available modes.")
		os.Exit(1)
	}

	difficulty, err := parseDifficultyFlag()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	sess, cleanup := openSession()
	sess.Difficulty = difficulty

	var (
		lastScore  int
		lastRecord bool
		finished   bool
	)
	sess.OnGameOver = func(score int, isNewRecord bool) {
		lastScore, lastRecord, finished = score, isNewRecord, true
	}

	_, runErr := tui.Run(game, sess, runtimeConfig())
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if finished {
		fmt.Printf("Last game: %d points", lastScore)
		if lastRecord {
			fmt.Print(" - new high score!")
		}
		fmt.Println()
	}
}
