package snake

import "time"

// Snapshot is a read-only view of an engine for rendering and tests.
type Snapshot struct {
	Tick       uint64
	State      State
	GridSize   int
	Body       []Point // Head first
	Dir        Direction
	Food       Point
	FoodType   FoodType
	Score      ScoreStats
	HighScore  int
	NewRecord  bool
	Difficulty string
	Interval   time.Duration
	PowerUps   []ActivePowerUp
}

// Snapshot captures the current engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:       e.ticks,
		State:      e.state,
		GridSize:   e.grid.Size(),
		Body:       e.snake.Body(),
		Dir:        e.snake.Direction(),
		Food:       e.food.Position(),
		FoodType:   e.food.Type(),
		Score:      e.score.Stats(),
		HighScore:  max(e.highScore, e.score.Score()),
		NewRecord:  e.newRecord,
		Difficulty: e.score.Difficulty().Name,
		Interval:   e.interval,
		PowerUps:   e.powerUps.ActivePowerUps(),
	}
}
