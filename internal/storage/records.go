package storage

import (
	"encoding/json"
	"io"

	"github.com/charmbracelet/log"
)

// Record keys, stored as "<game id>_<key>".
const (
	keyHighScore      = "high_score"
	keyGamesPlayed    = "games_played"
	keyTotalFoodEaten = "total_food_eaten"
	keyBestStreak     = "best_streak"
	keySettings       = "settings"
)

// Settings are the player's preferences.
type Settings struct {
	Difficulty       string `json:"difficulty"`
	SoundEnabled     bool   `json:"sound_enabled"`
	GridLinesEnabled bool   `json:"grid_lines_enabled"`
}

// DefaultSettings returns the settings used before anything is saved.
func DefaultSettings() Settings {
	return Settings{
		Difficulty:       "medium",
		SoundEnabled:     false,
		GridLinesEnabled: true,
	}
}

// Stats are the lifetime records of one game.
type Stats struct {
	HighScore      int
	GamesPlayed    int
	TotalFoodEaten int
	BestStreak     int
}

// Records keeps a game's lifetime records and settings in a KV as JSON
// values. Every failure is logged and swallowed: reads fall back to
// defaults and writes are dropped.
type Records struct {
	kv     KV
	gameID string
	logger *log.Logger
}

// NewRecords creates the records of gameID backed by kv.
func NewRecords(kv KV, gameID string, logger *log.Logger) *Records {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Records{kv: kv, gameID: gameID, logger: logger}
}

func (r *Records) key(name string) string {
	return r.gameID + "_" + name
}

// load decodes the value under name into v. It reports false when the key
// is missing or unreadable, leaving v untouched.
func (r *Records) load(name string, v any) bool {
	raw, ok, err := r.kv.Get(r.key(name))
	if err != nil {
		r.logger.Error("failed to read record", "key", r.key(name), "err", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		r.logger.Error("failed to decode record", "key", r.key(name), "err", err)
		return false
	}
	return true
}

func (r *Records) store(name string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		r.logger.Error("failed to encode record", "key", r.key(name), "err", err)
		return
	}
	if err := r.kv.Set(r.key(name), string(raw)); err != nil {
		r.logger.Error("failed to write record", "key", r.key(name), "err", err)
	}
}

func (r *Records) loadInt(name string) int {
	var n int
	r.load(name, &n)
	return n
}

// HighScore returns the best score, or 0.
func (r *Records) HighScore() int {
	return r.loadInt(keyHighScore)
}

// SaveHighScore stores score if it beats the current record and reports
// whether it did.
func (r *Records) SaveHighScore(score int) bool {
	if score <= r.HighScore() {
		return false
	}
	r.store(keyHighScore, score)
	r.logger.Info("new high score", "game", r.gameID, "score", score)
	return true
}

// GamesPlayed returns the number of finished games.
func (r *Records) GamesPlayed() int {
	return r.loadInt(keyGamesPlayed)
}

// IncrementGamesPlayed counts one more finished game.
func (r *Records) IncrementGamesPlayed() {
	r.store(keyGamesPlayed, r.GamesPlayed()+1)
}

// TotalFoodEaten returns the lifetime number of food items eaten.
func (r *Records) TotalFoodEaten() int {
	return r.loadInt(keyTotalFoodEaten)
}

// AddFoodEaten adds n to the lifetime food count.
func (r *Records) AddFoodEaten(n int) {
	if n <= 0 {
		return
	}
	r.store(keyTotalFoodEaten, r.TotalFoodEaten()+n)
}

// BestStreak returns the longest combo ever reached.
func (r *Records) BestStreak() int {
	return r.loadInt(keyBestStreak)
}

// SaveBestStreak keeps streak if it is the longest so far.
func (r *Records) SaveBestStreak(streak int) {
	if streak > r.BestStreak() {
		r.store(keyBestStreak, streak)
	}
}

// AllStats returns every lifetime record.
func (r *Records) AllStats() Stats {
	return Stats{
		HighScore:      r.HighScore(),
		GamesPlayed:    r.GamesPlayed(),
		TotalFoodEaten: r.TotalFoodEaten(),
		BestStreak:     r.BestStreak(),
	}
}

// ResetAllStats deletes the lifetime records. Settings are kept.
func (r *Records) ResetAllStats() {
	for _, name := range []string{keyHighScore, keyGamesPlayed, keyTotalFoodEaten, keyBestStreak} {
		if err := r.kv.Delete(r.key(name)); err != nil {
			r.logger.Error("failed to delete record", "key", r.key(name), "err", err)
		}
	}
	r.logger.Info("stats reset", "game", r.gameID)
}

// Settings returns the saved settings. Fields missing from the stored
// value keep their defaults.
func (r *Records) Settings() Settings {
	s := DefaultSettings()
	if !r.load(keySettings, &s) {
		return DefaultSettings()
	}
	return s
}

// SaveSettings stores the settings.
func (r *Records) SaveSettings(s Settings) {
	r.store(keySettings, s)
}
