// Package snake implements the snake game: board, food table, scoring,
// timed power-ups, and the tick engine that ties them together.
package snake

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/registry"
)

// Mode selects the food table.
type Mode string

const (
	ModeTyped   Mode = "typed"   // Weighted food types with power-ups
	ModeClassic Mode = "classic" // Plain 10-point food only
)

// epoch is where every session's frame clock starts, so runs with the same
// seed and input replay identically.
var epoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Options are the session settings supplied by the platform.
type Options struct {
	ConfigPath string
	Difficulty config.DifficultyPreset
	Repository Repository
	Logger     *log.Logger
	GridLines  bool
	OnGameOver GameOverFunc // Called after the engine has stored the records
}

// Game adapts the engine to the platform's fixed-frame loop.
// Each Step advances a manual clock by one frame and fires due timers, so
// the engine sees real durations while staying deterministic.
type Game struct {
	mode   Mode
	opts   Options
	cfg    config.SnakeConfig
	loaded bool

	clock  *core.ManualClock
	timers *core.TimerQueue
	engine *Engine
	frame  time.Duration
	frames uint64

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a snake game with typed food and power-ups.
func New() *Game {
	return &Game{mode: ModeTyped, opts: Options{GridLines: true}}
}

// NewClassic creates a snake game with plain food and no power-ups.
func NewClassic() *Game {
	return &Game{mode: ModeClassic, opts: Options{GridLines: true}}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_classic", func() registry.Game {
		return NewClassic()
	})
}

// Configure sets the session options used by the next Reset.
func (g *Game) Configure(opts Options) {
	if opts.ConfigPath != g.opts.ConfigPath {
		g.loaded = false
	}
	g.opts = opts
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "snake_classic"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Snake (Classic)"
	}
	return "Snake"
}

// Mode returns the food mode.
func (g *Game) Mode() Mode {
	return g.mode
}

func (g *Game) logger() *log.Logger {
	return orDiscard(g.opts.Logger)
}

// loadConfig reads the YAML config once per config path.
func (g *Game) loadConfig() {
	if g.loaded {
		return
	}
	cfg, err := config.LoadSnake(g.opts.ConfigPath)
	if err != nil {
		g.logger().Warn("using default config", "path", g.opts.ConfigPath, "err", err)
		cfg = config.DefaultSnakeConfig()
	}
	g.cfg = cfg
	g.loaded = true
}

func (g *Game) catalog() *Catalog {
	if g.mode == ModeClassic {
		return ClassicCatalog()
	}
	c, err := CatalogFromConfig(g.cfg)
	if err != nil {
		g.logger().Warn("invalid food table, using defaults", "err", err)
		return DefaultCatalog()
	}
	return c
}

// Reset starts a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.loadConfig()

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.frame = time.Second / time.Duration(tickRate)
	g.frames = 0

	preset := g.opts.Difficulty
	if preset == "" {
		preset = config.DefaultDifficulty
	}

	g.clock = core.NewManualClock(epoch)
	g.timers = core.NewTimerQueue(g.clock)
	g.engine = NewEngine(g.timers, EngineOptions{
		Grid:       NewGrid(g.cfg.Grid.Size),
		Difficulty: DifficultyFromConfig(preset, g.cfg.Difficulty(preset)),
		Catalog:    g.catalog(),
		Rand:       rand.New(rand.NewSource(cfg.Seed)),
		Repository: g.opts.Repository,
		Logger:     g.opts.Logger,
		OnGameOver: g.opts.OnGameOver,
	})
	g.engine.Start()

	g.logger().Info("game started", "mode", g.mode, "difficulty", preset,
		"grid", g.cfg.Grid.Size, "seed", cfg.Seed)

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts to a new terminal size. A board that no longer fits
// pauses the session.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height

	needW, needH := g.requiredSize()
	g.tooSmall = width < needW || height < needH
	if g.tooSmall && g.engine != nil {
		g.engine.Pause()
	}
}

// Step advances the game by one frame. It does nothing before Reset.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}
	g.frames++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionRestart) && g.engine.State() == StateGameOver {
		g.engine.Restart()
	}
	if input.Has(core.ActionPause) {
		g.engine.TogglePause()
	}
	for _, a := range input.Directions() {
		if d, ok := directionFor(a); ok {
			g.engine.SetDirection(d)
		}
	}

	g.clock.Advance(g.frame)
	g.timers.RunDue()

	return core.StepResult{State: g.State()}
}

func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	snap := g.engine.Snapshot()
	return core.GameState{
		Score:     snap.Score.Score,
		GameOver:  snap.State == StateGameOver,
		Paused:    snap.State == StatePaused,
		NewRecord: snap.NewRecord,
	}
}

// Engine exposes the running engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Snapshot returns the engine snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.engine.Snapshot()
}
