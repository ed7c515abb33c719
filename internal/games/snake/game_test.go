package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/registry"
)

func newTestGame(t *testing.T, opts Options) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := New()
	g.Configure(opts)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 42})
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	input := core.NewInputFrame()
	for _, a := range actions {
		input.Set(a)
	}
	return g.Step(input)
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"snake", "snake_classic"} {
		if !registry.Exists(id) {
			t.Errorf("Game %q is not registered", id)
		}
	}

	g, err := registry.Create("snake_classic")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	sg, ok := g.(*Game)
	if !ok || sg.Mode() != ModeClassic || sg.ID() != "snake_classic" {
		t.Errorf("Unexpected classic game: %#v", g)
	}
}

func TestGameDeterministic(t *testing.T) {
	run := func() string {
		g := newTestGame(t, Options{GridLines: true})
		inputs := []core.Action{core.ActionDown, core.ActionLeft, core.ActionUp, core.ActionRight}
		for i := 0; i < 400; i++ {
			if i%40 == 0 {
				step(g, inputs[(i/40)%len(inputs)])
			} else {
				step(g)
			}
		}
		screen := core.NewScreen(80, 30)
		g.Render(screen)
		return screen.String()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("Same seed and input produced different games:\n%s\n---\n%s", a, b)
	}
}

func TestGameIgnoresReversal(t *testing.T) {
	g := newTestGame(t, Options{})

	step(g, core.ActionLeft)
	for i := 0; i < 20; i++ {
		step(g)
	}

	snap := g.Snapshot()
	if snap.Dir != DirRight || snap.Body[0].Y != 10 || snap.Body[0].X <= 10 {
		t.Errorf("Reverse input should be ignored, dir %v head %v", snap.Dir, snap.Body[0])
	}
}

func TestGameTurnsInOrder(t *testing.T) {
	g := newTestGame(t, Options{})

	// Both turns are legal from heading right; the later key wins.
	step(g, core.ActionUp, core.ActionDown)
	for i := 0; i < 10; i++ {
		step(g)
	}

	if d := g.Snapshot().Dir; d != DirDown {
		t.Errorf("Direction = %v, expected down", d)
	}
}

func TestGamePauseInput(t *testing.T) {
	g := newTestGame(t, Options{})

	res := step(g, core.ActionPause)
	if !res.State.Paused {
		t.Fatal("Pause input should pause the game")
	}
	before := g.Snapshot().Body[0]
	for i := 0; i < 120; i++ {
		step(g)
	}
	if g.Snapshot().Body[0] != before {
		t.Error("Snake moved while paused")
	}

	res = step(g, core.ActionPause)
	if res.State.Paused {
		t.Error("Second pause input should resume")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, Options{GridLines: true})
	screen := core.NewScreen(80, 30)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "SNAKE") || !strings.Contains(screen.Row(0), "Score 0") {
		t.Errorf("HUD missing title or score: %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(1), "medium") {
		t.Errorf("HUD missing difficulty: %q", screen.Row(1))
	}

	// 20x20 board, two columns per cell, centred under the HUD.
	if r := screen.Get(19, 2); r != '┌' {
		t.Errorf("Expected border corner at (19,2), got %q", r)
	}
	if r := screen.Get(40, 13); r != '█' {
		t.Errorf("Expected snake head at (40,13), got %q", r)
	}
	if c := screen.GetCell(40, 13).Color; c != core.ColorBrightGreen {
		t.Errorf("Head color = %v, expected bright green", c)
	}
}

func TestGameRenderPaused(t *testing.T) {
	g := newTestGame(t, Options{})
	step(g, core.ActionPause)

	screen := core.NewScreen(80, 30)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("Paused overlay not drawn")
	}
}

func TestGameTooSmall(t *testing.T) {
	g := newTestGame(t, Options{})
	g.Resize(30, 10)

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("Expected too-small message, got:\n%s", screen.String())
	}

	before := g.Snapshot().Tick
	for i := 0; i < 60; i++ {
		step(g)
	}
	if g.Snapshot().Tick != before {
		t.Error("Game advanced in a window that is too small")
	}

	g.Resize(80, 30)
	if !g.State().Paused {
		t.Error("Game should stay paused after the window grows back")
	}
}

func TestGameOverCallbackOnce(t *testing.T) {
	calls := 0
	var lastScore int
	g := newTestGame(t, Options{
		Difficulty: config.DifficultyHard,
		OnGameOver: func(score int, _ bool) {
			calls++
			lastScore = score
		},
	})

	over := false
	for i := 0; i < 2000 && !over; i++ {
		over = step(g).State.GameOver
	}
	if !over {
		t.Fatal("Snake running straight should hit a wall")
	}
	for i := 0; i < 100; i++ {
		step(g)
	}

	if calls != 1 {
		t.Errorf("OnGameOver called %d times, expected 1", calls)
	}
	if lastScore != g.State().Score {
		t.Errorf("Callback score %d, state score %d", lastScore, g.State().Score)
	}

	screen := core.NewScreen(80, 30)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("Game over overlay not drawn")
	}

	step(g, core.ActionRestart)
	if g.State().GameOver {
		t.Error("Restart input should start a new session")
	}
}

func TestGameDifficultyFromOptions(t *testing.T) {
	g := newTestGame(t, Options{Difficulty: config.DifficultyEasy})

	if d := g.Snapshot().Difficulty; d != "easy" {
		t.Errorf("Difficulty = %q, expected easy", d)
	}
	if iv := g.Snapshot().Interval; iv.Milliseconds() != 200 {
		t.Errorf("Interval = %v, expected 200ms", iv)
	}
}

func TestClassicGameFood(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := NewClassic()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 7})

	if id := g.Snapshot().FoodType.ID; id != "normal" {
		t.Errorf("Classic food = %q, expected normal", id)
	}
}

func TestGameStepBeforeReset(t *testing.T) {
	g := New()

	res := step(g, core.ActionDown)
	if res.State.GameOver || res.State.Score != 0 {
		t.Errorf("Step before Reset should be a no-op, got %+v", res.State)
	}
}
