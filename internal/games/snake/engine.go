package snake

import (
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
)

// State is the engine lifecycle state.
type State int

const (
	StatePlaying State = iota
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Repository stores the player's records between sessions.
// Implementations are best-effort: failures are handled inside and reads
// fall back to zero values.
type Repository interface {
	HighScore() int
	// SaveHighScore stores score if it beats the current record and
	// reports whether it did.
	SaveHighScore(score int) bool
	IncrementGamesPlayed()
	AddFoodEaten(n int)
	SaveBestStreak(streak int)
}

// GameOverFunc is called once when a session ends.
type GameOverFunc func(score int, isNewRecord bool)

// EngineOptions configures a new engine.
type EngineOptions struct {
	Grid       Grid
	Difficulty Difficulty
	Catalog    *Catalog
	Rand       *rand.Rand
	Repository Repository // nil keeps nothing
	Logger     *log.Logger
	OnGameOver GameOverFunc
}

// Engine runs one snake session on a timer queue. All of its work happens
// inside timer callbacks or direct method calls on the queue's goroutine.
type Engine struct {
	timers     *core.TimerQueue
	grid       Grid
	catalog    *Catalog
	rng        *rand.Rand
	repo       Repository
	logger     *log.Logger
	onGameOver GameOverFunc

	snake    *Snake
	food     *Food
	score    *ScoreManager
	powerUps *PowerUpManager

	state     State
	stopped   bool
	tickTimer *core.Timer
	interval  time.Duration
	ticks     uint64
	highScore int
	newRecord bool
}

// NewEngine builds a session ready to Start.
func NewEngine(timers *core.TimerQueue, opts EngineOptions) *Engine {
	if opts.Catalog == nil {
		opts.Catalog = DefaultCatalog()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	if opts.Repository == nil {
		opts.Repository = noRepository{}
	}
	if opts.Grid.Size() == 0 {
		opts.Grid = NewGrid(config.DefaultSnakeConfig().Grid.Size)
	}
	if opts.Difficulty.BaseSpeed == 0 {
		opts.Difficulty = DifficultyFromConfig(config.DefaultDifficulty,
			config.DefaultSnakeConfig().Difficulty(config.DefaultDifficulty))
	}

	e := &Engine{
		timers:     timers,
		grid:       opts.Grid,
		catalog:    opts.Catalog,
		rng:        opts.Rand,
		repo:       opts.Repository,
		logger:     orDiscard(opts.Logger),
		onGameOver: opts.OnGameOver,
		snake:      NewSnake(opts.Grid),
		food:       NewFood(opts.Grid, opts.Catalog),
		score:      NewScoreManager(opts.Difficulty),
	}
	e.powerUps = NewPowerUpManager(opts.Catalog, timers, e.logger)
	e.powerUps.OnExpired(e.powerUpExpired)
	e.highScore = e.repo.HighScore()
	e.spawnFood()
	return e
}

// Start arms the tick timer. A paused session is resumed, and nothing
// happens once the game is over.
func (e *Engine) Start() {
	e.stopped = false
	switch e.state {
	case StateGameOver:
		return
	case StatePaused:
		e.Resume()
		return
	}
	e.state = StatePlaying
	e.rearm()
}

// Stop cancels the tick timer until the next Start or Restart.
// Power-up timers stay with the power-up manager.
func (e *Engine) Stop() {
	e.stopped = true
	e.cancelTick()
}

func (e *Engine) cancelTick() {
	e.tickTimer.Stop()
	e.tickTimer = nil
}

// Pause freezes the session and breaks the combo.
func (e *Engine) Pause() {
	if e.state != StatePlaying {
		return
	}
	e.state = StatePaused
	e.cancelTick()
	e.powerUps.Pause()
	e.score.ResetCombo()
	e.logger.Debug("paused", "score", e.score.Score())
}

// Resume continues a paused session.
func (e *Engine) Resume() {
	if e.state != StatePaused {
		return
	}
	e.state = StatePlaying
	e.powerUps.Resume()
	if !e.stopped {
		e.rearm()
	}
	e.logger.Debug("resumed")
}

// TogglePause switches between playing and paused.
func (e *Engine) TogglePause() {
	switch e.state {
	case StatePlaying:
		e.Pause()
	case StatePaused:
		e.Resume()
	}
}

// SetDirection steers the snake. Input is ignored unless playing.
func (e *Engine) SetDirection(d Direction) bool {
	if e.state != StatePlaying {
		return false
	}
	return e.snake.SetDirection(d)
}

// Restart begins a fresh session with the same options.
func (e *Engine) Restart() {
	e.cancelTick()
	e.stopped = false
	e.powerUps.ClearAll()
	e.snake.Reset()
	e.score.Reset()
	e.ticks = 0
	e.newRecord = false
	e.highScore = e.repo.HighScore()
	e.spawnFood()
	e.state = StatePlaying
	e.rearm()
	e.logger.Info("game restarted", "difficulty", e.score.Difficulty().Name)
}

// Interval returns the current tick interval.
func (e *Engine) Interval() time.Duration {
	return e.interval
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Score returns the session score.
func (e *Engine) Score() int {
	return e.score.Score()
}

// computeInterval combines the level speed with the power-up modifier,
// truncated to whole milliseconds.
func (e *Engine) computeInterval() time.Duration {
	ms := float64(e.score.Speed().Milliseconds()) * e.powerUps.SpeedModifier()
	return time.Duration(math.Floor(ms)) * time.Millisecond
}

// rearm replaces the tick timer with one at the current interval.
func (e *Engine) rearm() {
	e.interval = e.computeInterval()
	e.tickTimer.Stop()
	e.tickTimer = e.timers.AfterFunc(e.interval, e.onTick)
}

// onTick schedules the next tick from the previous deadline and then runs
// the update, which may replace that timer.
func (e *Engine) onTick() {
	if e.state != StatePlaying || e.stopped {
		return
	}
	next := e.tickTimer.Deadline().Add(e.interval)
	if now := e.timers.Clock().Now(); !next.After(now) {
		next = now.Add(e.interval)
	}
	e.tickTimer = e.timers.At(next, e.onTick)
	e.update()
}

// update runs one tick: move, collide, eat, score, power-up, level, respawn.
func (e *Engine) update() {
	e.ticks++
	e.snake.Move()

	if !e.powerUps.HasShield() && e.snake.CheckCollision() {
		e.gameOver()
		return
	}

	if !e.food.IsEaten(e.snake.Head()) {
		return
	}

	e.snake.Eat()
	kind := e.food.Type()
	res := e.score.EatFood(e.timers.Clock().Now(), kind, e.powerUps.HasDoublePoints())

	speedChanged := false
	if kind.PowerUp != "" {
		if _, ok := e.powerUps.Activate(kind.PowerUp); ok && AffectsSpeed(kind.PowerUp) {
			speedChanged = true
		}
	}
	if res.LeveledUp {
		e.logger.Info("level up", "level", res.Level, "score", res.TotalScore)
		speedChanged = true
	}
	if speedChanged {
		e.rearm()
	}

	e.spawnFood()
}

func (e *Engine) powerUpExpired(id PowerUpID) {
	if AffectsSpeed(id) && e.state == StatePlaying && !e.stopped {
		e.rearm()
	}
}

func (e *Engine) spawnFood() {
	if !e.food.Spawn(e.snake.Body(), e.rng, e.timers.Clock().Now()) {
		e.logger.Warn("no free cell found for food, placing it anyway",
			"attempts", maxSpawnAttempts, "snake_len", e.snake.Len())
	}
}

// gameOver ends the session once; later calls do nothing.
func (e *Engine) gameOver() {
	if e.state == StateGameOver {
		return
	}
	e.state = StateGameOver
	e.cancelTick()
	e.powerUps.ClearAll()

	score := e.score.Score()
	isNewRecord := e.repo.SaveHighScore(score)
	e.repo.IncrementGamesPlayed()
	e.repo.AddFoodEaten(e.score.FoodEaten())
	e.repo.SaveBestStreak(e.score.BestStreak())
	if isNewRecord {
		e.highScore = score
	}
	e.newRecord = isNewRecord

	e.logger.Info("game over", "score", score, "level", e.score.Level(),
		"food", e.score.FoodEaten(), "new_record", isNewRecord)

	if e.onGameOver != nil {
		e.onGameOver(score, isNewRecord)
	}
}

type noRepository struct{}

func (noRepository) HighScore() int         { return 0 }
func (noRepository) SaveHighScore(int) bool { return false }
func (noRepository) IncrementGamesPlayed()  {}
func (noRepository) AddFoodEaten(int)       {}
func (noRepository) SaveBestStreak(int)     {}
