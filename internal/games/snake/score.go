package snake

import (
	"math"
	"time"

	"github.com/vovakirdan/snake-arcade/internal/config"
)

// LevelThresholds lists the minimum score for each level, level 1 first.
var LevelThresholds = [...]int{0, 50, 120, 200, 300, 420, 560, 720, 900, 1100}

// MaxLevel is the last level of the ladder.
const MaxLevel = len(LevelThresholds)

const (
	// ComboWindow is the longest gap between two eats that keeps a streak.
	ComboWindow = 2 * time.Second

	// MinSpeed is the fastest tick interval the level curve can reach.
	MinSpeed = 50 * time.Millisecond

	comboBonusPerStreak = 2
	maxComboBonus       = 50
	levelBonus          = 5
)

// Difficulty is the immutable speed and scoring profile of a session.
type Difficulty struct {
	Name             string
	BaseSpeed        time.Duration
	SpeedIncrease    time.Duration
	PointsMultiplier float64
}

// DifficultyFromConfig converts a configured profile.
func DifficultyFromConfig(preset config.DifficultyPreset, d config.DifficultyConfig) Difficulty {
	return Difficulty{
		Name:             string(preset),
		BaseSpeed:        d.BaseSpeed(),
		SpeedIncrease:    d.SpeedIncrease(),
		PointsMultiplier: d.PointsMultiplier,
	}
}

// ComboBonus returns the extra points for a combo at the given streak.
func ComboBonus(streak int) int {
	return min(streak*comboBonusPerStreak, maxComboBonus)
}

// CalculateLevel returns the level reached with the given score.
func CalculateLevel(score int) int {
	level := 1
	for i, threshold := range LevelThresholds {
		if score >= threshold {
			level = i + 1
		}
	}
	return level
}

// EatResult describes the outcome of one eat.
type EatResult struct {
	Points      int
	TotalScore  int
	IsCombo     bool
	ComboStreak int
	LeveledUp   bool
	Level       int
}

// ScoreStats is a read-only summary of the session score state.
type ScoreStats struct {
	Score         int
	Level         int
	FoodEaten     int
	Streak        int
	BestStreak    int
	Speed         time.Duration
	LevelProgress float64
	PointsToNext  int
	MaxLevel      bool
}

// ScoreManager tracks score, combo streak and level for one session.
type ScoreManager struct {
	difficulty Difficulty
	score      int
	foodEaten  int
	streak     int
	bestStreak int
	level      int
	lastEat    time.Time
}

// NewScoreManager creates a score manager at level 1 with no points.
func NewScoreManager(d Difficulty) *ScoreManager {
	return &ScoreManager{difficulty: d, level: 1}
}

// EatFood scores one eaten food at time now.
// The food portion is doubled when doublePoints is set; the combo and
// level bonuses are not.
func (s *ScoreManager) EatFood(now time.Time, food FoodType, doublePoints bool) EatResult {
	s.foodEaten++
	s.streak++

	isCombo := !s.lastEat.IsZero() && now.Sub(s.lastEat) < ComboWindow

	points := food.BasePoints() * s.difficulty.PointsMultiplier
	if doublePoints {
		points *= 2
	}
	if isCombo {
		points += float64(ComboBonus(s.streak))
	} else {
		s.streak = 1
	}
	points += float64((s.level - 1) * levelBonus)

	earned := int(math.Floor(points))
	s.score += earned
	s.lastEat = now
	s.bestStreak = max(s.bestStreak, s.streak)

	leveledUp := s.checkLevelUp()

	return EatResult{
		Points:      earned,
		TotalScore:  s.score,
		IsCombo:     isCombo,
		ComboStreak: s.streak,
		LeveledUp:   leveledUp,
		Level:       s.level,
	}
}

// checkLevelUp raises the level if the score crossed a threshold.
// The level never goes down.
func (s *ScoreManager) checkLevelUp() bool {
	newLevel := CalculateLevel(s.score)
	if newLevel > s.level {
		s.level = newLevel
		return true
	}
	return false
}

// Speed returns the tick interval for the current level.
func (s *ScoreManager) Speed() time.Duration {
	speed := s.difficulty.BaseSpeed - time.Duration(s.level-1)*s.difficulty.SpeedIncrease
	return max(speed, MinSpeed)
}

// LevelProgress returns how far the score is from the current threshold
// to the next one, in [0,1]. At max level the span is taken as 200 points.
func (s *ScoreManager) LevelProgress() float64 {
	current := LevelThresholds[s.level-1]
	next := current + 200
	if s.level < MaxLevel {
		next = LevelThresholds[s.level]
	}
	progress := float64(s.score-current) / float64(next-current)
	return math.Max(0, math.Min(1, progress))
}

// PointsToNextLevel returns the points missing for the next level, or 0
// at max level.
func (s *ScoreManager) PointsToNextLevel() int {
	if s.IsMaxLevel() {
		return 0
	}
	return max(LevelThresholds[s.level]-s.score, 0)
}

// IsMaxLevel reports whether the ladder is complete.
func (s *ScoreManager) IsMaxLevel() bool {
	return s.level >= MaxLevel
}

// ResetCombo breaks the streak without touching score or level.
func (s *ScoreManager) ResetCombo() {
	s.streak = 0
	s.lastEat = time.Time{}
}

// Reset clears everything for a new game.
func (s *ScoreManager) Reset() {
	s.score = 0
	s.foodEaten = 0
	s.streak = 0
	s.bestStreak = 0
	s.level = 1
	s.lastEat = time.Time{}
}

// Score returns the total score.
func (s *ScoreManager) Score() int { return s.score }

// Level returns the current level.
func (s *ScoreManager) Level() int { return s.level }

// FoodEaten returns the number of foods eaten this session.
func (s *ScoreManager) FoodEaten() int { return s.foodEaten }

// Streak returns the current combo streak.
func (s *ScoreManager) Streak() int { return s.streak }

// BestStreak returns the longest streak of the session.
func (s *ScoreManager) BestStreak() int { return s.bestStreak }

// Difficulty returns the session's difficulty profile.
func (s *ScoreManager) Difficulty() Difficulty { return s.difficulty }

// Stats returns a snapshot of the score state.
func (s *ScoreManager) Stats() ScoreStats {
	return ScoreStats{
		Score:         s.score,
		Level:         s.level,
		FoodEaten:     s.foodEaten,
		Streak:        s.streak,
		BestStreak:    s.bestStreak,
		Speed:         s.Speed(),
		LevelProgress: s.LevelProgress(),
		PointsToNext:  s.PointsToNextLevel(),
		MaxLevel:      s.IsMaxLevel(),
	}
}
