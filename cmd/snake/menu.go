package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arcade/internal/platform/tui"
	"github.com/vovakirdan/snake-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start snake with the interactive menu",
	Long: `Start snake in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Leaving a game with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change a setting
  Enter/Space  - Select
  Q            - Quit

Examples:
  snake menu
  snake menu --fps 30
  snake menu --db ./snake.db`,
	Run: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	difficulty, err := parseDifficultyFlag()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sess, cleanup := openSession()
	defer cleanup()
	sess.Difficulty = difficulty

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(sess, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Keep any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		var goBack bool
		switch menuResult.Entry {
		case tui.EntryScores:
			goBack, err = tui.RunScoreboard(sess, cfg.ScreenW, cfg.ScreenH)

		case tui.EntrySettings:
			goBack, err = tui.RunSettings(sess, cfg.ScreenW, cfg.ScreenH)
			// A difficulty picked in settings wins over the flag from now on
			sess.Difficulty = ""

		case tui.EntryGame:
			game, createErr := registry.Create(menuResult.GameID)
			if createErr != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", createErr)
				continue
			}
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			goBack, err = tui.Run(game, sess, cfg)
		}

		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if !goBack {
			return
		}
	}
}
