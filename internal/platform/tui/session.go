package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
	"github.com/vovakirdan/snake-arcade/internal/logging"
	"github.com/vovakirdan/snake-arcade/internal/registry"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

// settingsOwner is the records namespace holding the shared settings.
const settingsOwner = "snake"

// Session is what every screen of one program run shares.
type Session struct {
	Store      *storage.Store // Score history; nil when the database is unavailable
	KV         storage.KV     // Records and settings
	Logger     *log.Logger
	ConfigPath string
	Difficulty config.DifficultyPreset // Overrides the saved setting when set
	OnGameOver snake.GameOverFunc
}

// NewSession builds a session over store. Without a store, records and
// settings live in memory for the run.
func NewSession(store *storage.Store, logger *log.Logger) Session {
	s := Session{Store: store, Logger: logger}
	if store != nil {
		s.KV = store
	} else {
		s.KV = storage.NewMemoryKV()
	}
	return s
}

func (s Session) logger() *log.Logger {
	if s.Logger == nil {
		return logging.Discard()
	}
	return s.Logger
}

// Records returns the lifetime records of a game.
func (s Session) Records(gameID string) *storage.Records {
	return storage.NewRecords(s.KV, gameID, s.logger())
}

// Settings returns the saved player settings.
func (s Session) Settings() storage.Settings {
	return s.Records(settingsOwner).Settings()
}

// difficulty picks the session override, then the saved setting.
func (s Session) difficulty() config.DifficultyPreset {
	if s.Difficulty != "" {
		return s.Difficulty
	}
	preset, err := config.ParseDifficulty(s.Settings().Difficulty)
	if err != nil {
		s.logger().Warn("ignoring saved difficulty", "err", err)
		return config.DefaultDifficulty
	}
	return preset
}

// configure hands the session's options to games that take them.
func (s Session) configure(game registry.Game) {
	sg, ok := game.(*snake.Game)
	if !ok {
		return
	}
	sg.Configure(snake.Options{
		ConfigPath: s.ConfigPath,
		Difficulty: s.difficulty(),
		Repository: s.Records(game.ID()),
		Logger:     s.logger(),
		GridLines:  s.Settings().GridLinesEnabled,
		OnGameOver: s.OnGameOver,
	})
}
