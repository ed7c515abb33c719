package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
)

const (
	cellWidth   = 2 // Terminal columns per board cell
	hudHeight   = 2
	borderWidth = 1
	barWidth    = 10
)

func (g *Game) requiredSize() (int, int) {
	size := g.cfg.Grid.Size
	if size == 0 {
		size = config.DefaultSnakeConfig().Grid.Size
	}
	return size*cellWidth + 2*borderWidth, size + 2*borderWidth + hudHeight
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		needW, needH := g.requiredSize()
		renderOverlay(dst, core.ColorYellow,
			"Window too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()))
		return
	}
	if g.engine == nil {
		return
	}

	snap := g.engine.Snapshot()
	board := g.boardRect(dst, snap.GridSize)

	renderHUD(dst, g.Title(), snap)
	dst.DrawBox(board, borderColor(snap))
	if g.opts.GridLines {
		renderGridDots(dst, board.Inset(borderWidth))
	}
	renderFood(dst, board, snap)
	renderSnake(dst, board, snap)

	switch snap.State {
	case StateGameOver:
		lines := []string{"GAME OVER", fmt.Sprintf("Score: %d  Level: %d", snap.Score.Score, snap.Score.Level)}
		if snap.NewRecord {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		lines = append(lines, "R restart   Esc menu")
		renderOverlay(dst, core.ColorBrightRed, lines...)
	case StatePaused:
		renderOverlay(dst, core.ColorBrightYellow, "PAUSED", "Space to resume")
	}
}

func (g *Game) boardRect(dst *core.Screen, gridSize int) core.Rect {
	w := gridSize*cellWidth + 2*borderWidth
	h := gridSize + 2*borderWidth
	x := max((dst.Width()-w)/2, 0)
	return core.NewRect(x, hudHeight, w, h)
}

func borderColor(snap Snapshot) core.Color {
	for _, p := range snap.PowerUps {
		if p.ID == PowerUpShield {
			return p.Color
		}
	}
	return core.ColorGray
}

// cellOrigin maps a board cell to its screen column and row.
func cellOrigin(board core.Rect, p Point) (int, int) {
	return board.X + borderWidth + p.X*cellWidth, board.Y + borderWidth + p.Y
}

func renderGridDots(dst *core.Screen, inner core.Rect) {
	for y := inner.Y; y < inner.Bottom(); y++ {
		for x := inner.X; x < inner.Right(); x += cellWidth {
			dst.SetColor(x, y, '·', core.ColorGray)
		}
	}
}

func renderFood(dst *core.Screen, board core.Rect, snap Snapshot) {
	x, y := cellOrigin(board, snap.Food)
	dst.SetColor(x, y, snap.FoodType.Glyph, snap.FoodType.Color)
	dst.Set(x+1, y, ' ')
}

func renderSnake(dst *core.Screen, board core.Rect, snap Snapshot) {
	inner := board.Inset(borderWidth)
	shielded := borderColor(snap) != core.ColorGray

	// Tail first so the head wins on overlap.
	for i := len(snap.Body) - 1; i >= 0; i-- {
		x, y := cellOrigin(board, snap.Body[i])
		if !inner.Contains(x, y) {
			continue
		}
		glyph, color := '▓', core.ColorGreen
		if i == 0 {
			glyph, color = '█', core.ColorBrightGreen
			if shielded {
				color = core.ColorBrightCyan
			}
		}
		dst.SetColor(x, y, glyph, color)
		dst.SetColor(x+1, y, glyph, color)
	}
}

func renderHUD(dst *core.Screen, title string, snap Snapshot) {
	s := snap.Score
	levelInfo := fmt.Sprintf("Lv %d", s.Level)
	if s.MaxLevel {
		levelInfo += " MAX"
	} else {
		levelInfo += fmt.Sprintf(" %s %d to go", progressBar(s.LevelProgress, barWidth), s.PointsToNext)
	}
	top := fmt.Sprintf(" %s  Score %d  Best %d  %s", strings.ToUpper(title), s.Score, snap.HighScore, levelInfo)
	dst.DrawTextColor(0, 0, top, core.ColorBrightWhite)

	x := dst.DrawTextColor(1, 1, snap.Difficulty, core.ColorGray)
	if s.Streak > 1 {
		x = dst.DrawTextColor(x+2, 1, fmt.Sprintf("Combo x%d", s.Streak), core.ColorBrightYellow)
	}
	for _, p := range snap.PowerUps {
		label := fmt.Sprintf("%c %s %.1fs %s", p.Glyph, p.Name, p.Remaining.Seconds(), progressBar(1-p.Progress, 5))
		x = dst.DrawTextColor(x+2, 1, label, p.Color)
	}
}

// progressBar renders fraction in [0,1] as a fixed-width bar.
func progressBar(fraction float64, width int) string {
	filled := core.Clamp(int(fraction*float64(width)+0.5), 0, width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// renderOverlay draws a centered box with one line of text per row.
func renderOverlay(dst *core.Screen, color core.Color, lines ...string) {
	longest := 0
	for _, l := range lines {
		longest = max(longest, len([]rune(l)))
	}
	boxW := longest + 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)
	for i, l := range lines {
		lineColor := core.ColorWhite
		if i == 0 {
			lineColor = color
		}
		dst.DrawTextCentered(box.Y+2+i, l, lineColor)
	}
}
