// snake is a terminal snake game with typed food, combos and power-ups.
//
// Usage:
//
//	snake list              - List available game modes
//	snake play [mode]       - Play a mode (default: snake)
//	snake menu              - Start the interactive menu
//	snake scores [mode]     - Show high scores and lifetime stats
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.snake/snake.db)
//	--log-file <path>   - Set log file (default: ~/.snake/snake.log)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
	_ "github.com/vovakirdan/snake-arcade/internal/games/snake" // Registers the snake modes
	"github.com/vovakirdan/snake-arcade/internal/logging"
	"github.com/vovakirdan/snake-arcade/internal/platform/tui"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string

	// Game flags shared by play and menu
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic, with typed food and power-ups",
	Long: `Snake in your terminal.

Eat food to grow and score. Golden apples and diamonds are worth more,
eating quickly builds a combo, and special food grants timed power-ups:
double points, a shield, slow motion or a speed boost.

Available commands:
  list     - Show the game modes
  play     - Play a mode directly
  menu     - Interactive menu with settings and scores
  scores   - View high scores and stats

Examples:
  snake play
  snake play snake_classic --difficulty hard
  snake menu
  snake scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/snake.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", logging.DefaultPath, "Path to log file (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard (default: saved setting)")
}

// openSession sets up logging and storage for a command. Storage failures
// fall back to in-memory records so the game still runs.
func openSession() (tui.Session, func()) {
	logger, logCloser, err := logging.New(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger, logCloser = logging.Discard(), nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("running without database", "path", flagDBPath, "err", err)
		store = nil
	}

	sess := tui.NewSession(store, logger)
	sess.ConfigPath = flagConfig

	cleanup := func() {
		if store != nil {
			store.Close()
		}
		if logCloser != nil {
			logCloser.Close()
		}
	}
	return sess, cleanup
}

// parseDifficultyFlag validates --difficulty. Empty keeps the saved setting.
func parseDifficultyFlag() (config.DifficultyPreset, error) {
	if flagDifficulty == "" {
		return "", nil
	}
	return config.ParseDifficulty(flagDifficulty)
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
