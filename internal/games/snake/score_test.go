package snake

import (
	"testing"
	"time"
)

var (
	testStart = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	easy   = Difficulty{Name: "easy", BaseSpeed: 200 * time.Millisecond, SpeedIncrease: 5 * time.Millisecond, PointsMultiplier: 0.8}
	medium = Difficulty{Name: "medium", BaseSpeed: 150 * time.Millisecond, SpeedIncrease: 8 * time.Millisecond, PointsMultiplier: 1.0}
	hard   = Difficulty{Name: "hard", BaseSpeed: 100 * time.Millisecond, SpeedIncrease: 12 * time.Millisecond, PointsMultiplier: 1.5}

	plainFood = FoodType{ID: "normal", PointsBase: 10, PointsMultiplier: 1, Weight: 1}
)

func TestComboBonus(t *testing.T) {
	for s := 1; s <= 24; s++ {
		if got := ComboBonus(s); got != 2*s {
			t.Errorf("ComboBonus(%d) = %d, expected %d", s, got, 2*s)
		}
	}
	for s := 25; s <= 60; s++ {
		if got := ComboBonus(s); got != 50 {
			t.Errorf("ComboBonus(%d) = %d, expected cap 50", s, got)
		}
	}
}

func TestCalculateLevel(t *testing.T) {
	tests := []struct {
		score, level int
	}{
		{-5, 1},
		{0, 1},
		{49, 1},
		{50, 2},
		{119, 2},
		{120, 3},
		{200, 4},
		{899, 8},
		{900, 9},
		{1099, 9},
		{1100, 10},
		{99999, 10},
	}

	for _, tc := range tests {
		if got := CalculateLevel(tc.score); got != tc.level {
			t.Errorf("CalculateLevel(%d) = %d, expected %d", tc.score, got, tc.level)
		}
	}
}

func TestCalculateLevelMonotonic(t *testing.T) {
	prev := CalculateLevel(0)
	for score := 1; score <= 3000; score++ {
		level := CalculateLevel(score)
		if level < prev {
			t.Fatalf("Level dropped from %d to %d at score %d", prev, level, score)
		}
		if level > MaxLevel {
			t.Fatalf("Level %d exceeds max at score %d", level, score)
		}
		prev = level
	}
}

func TestComboScenarioMedium(t *testing.T) {
	s := NewScoreManager(medium)

	type step struct {
		points, total, streak, level int
		combo, levelUp               bool
	}
	expected := []step{
		{10, 10, 1, 1, false, false},
		{14, 24, 2, 1, true, false},
		{16, 40, 3, 1, true, false},
		{18, 58, 4, 2, true, true},
		{25, 83, 5, 2, true, false}, // 10 + combo 10 + level bonus 5
	}

	now := testStart
	for i, want := range expected {
		now = now.Add(500 * time.Millisecond)
		res := s.EatFood(now, plainFood, false)

		if res.Points != want.points || res.TotalScore != want.total {
			t.Errorf("eat %d: points %d total %d, expected %d/%d", i+1, res.Points, res.TotalScore, want.points, want.total)
		}
		if res.ComboStreak != want.streak || res.IsCombo != want.combo {
			t.Errorf("eat %d: streak %d combo %v, expected %d/%v", i+1, res.ComboStreak, res.IsCombo, want.streak, want.combo)
		}
		if res.Level != want.level || res.LeveledUp != want.levelUp {
			t.Errorf("eat %d: level %d leveledUp %v, expected %d/%v", i+1, res.Level, res.LeveledUp, want.level, want.levelUp)
		}
	}

	if s.Speed() != 142*time.Millisecond {
		t.Errorf("Speed at level 2 = %v, expected 142ms", s.Speed())
	}
	if s.FoodEaten() != 5 || s.BestStreak() != 5 {
		t.Errorf("FoodEaten %d BestStreak %d, expected 5/5", s.FoodEaten(), s.BestStreak())
	}
}

func TestComboWindowExpires(t *testing.T) {
	s := NewScoreManager(medium)

	s.EatFood(testStart, plainFood, false)
	s.EatFood(testStart.Add(time.Second), plainFood, false)

	// Exactly at the window edge the combo is broken.
	res := s.EatFood(testStart.Add(3*time.Second), plainFood, false)
	if res.IsCombo || res.ComboStreak != 1 {
		t.Errorf("Expected broken combo with streak 1, got combo=%v streak=%d", res.IsCombo, res.ComboStreak)
	}
	if res.Points != 10 {
		t.Errorf("Broken combo should score base only, got %d", res.Points)
	}
	if s.BestStreak() != 2 {
		t.Errorf("Best streak should remember 2, got %d", s.BestStreak())
	}
}

func TestResetComboKeepsScore(t *testing.T) {
	s := NewScoreManager(medium)
	s.EatFood(testStart, plainFood, false)
	s.EatFood(testStart.Add(100*time.Millisecond), plainFood, false)

	s.ResetCombo()
	if s.Streak() != 0 {
		t.Errorf("ResetCombo should zero the streak, got %d", s.Streak())
	}
	if s.Score() != 24 {
		t.Errorf("ResetCombo should keep the score, got %d", s.Score())
	}

	res := s.EatFood(testStart.Add(200*time.Millisecond), plainFood, false)
	if res.IsCombo {
		t.Error("First eat after ResetCombo should not be a combo")
	}
}

func TestDifficultyMultiplier(t *testing.T) {
	golden := FoodType{ID: "golden", PointsBase: 50, PointsMultiplier: 1}

	tests := []struct {
		name     string
		d        Difficulty
		food     FoodType
		expected int
	}{
		{"easy plain", easy, plainFood, 8},
		{"medium plain", medium, plainFood, 10},
		{"hard plain", hard, plainFood, 15},
		{"hard golden", hard, golden, 75},
		{"easy golden", easy, golden, 40},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScoreManager(tc.d)
			if res := s.EatFood(testStart, tc.food, false); res.Points != tc.expected {
				t.Errorf("Points = %d, expected %d", res.Points, tc.expected)
			}
		})
	}
}

func TestDoublePointsAppliesToFoodOnly(t *testing.T) {
	berry := FoodType{ID: "berry", PointsBase: 20, PointsMultiplier: 1}
	s := NewScoreManager(medium)

	if res := s.EatFood(testStart, berry, true); res.Points != 40 {
		t.Errorf("Doubled berry should score 40, got %d", res.Points)
	}
	// Combo streak 2: 20*2 + 4.
	if res := s.EatFood(testStart.Add(time.Second), berry, true); res.Points != 44 {
		t.Errorf("Doubled berry with combo should score 44, got %d", res.Points)
	}
}

func TestScoreFloors(t *testing.T) {
	odd := FoodType{ID: "odd", PointsBase: 7, PointsMultiplier: 1}
	s := NewScoreManager(easy)

	// 7 * 0.8 = 5.6
	if res := s.EatFood(testStart, odd, false); res.Points != 5 {
		t.Errorf("Expected floored 5 points, got %d", res.Points)
	}
}

func TestSpeedCurve(t *testing.T) {
	tests := []struct {
		name     string
		d        Difficulty
		level    int
		expected time.Duration
	}{
		{"medium level 1", medium, 1, 150 * time.Millisecond},
		{"medium level 10", medium, 10, 78 * time.Millisecond},
		{"easy level 5", easy, 5, 180 * time.Millisecond},
		{"hard level 5", hard, 5, 52 * time.Millisecond},
		{"hard level 6 floors", hard, 6, MinSpeed},
		{"hard level 10 floors", hard, 10, MinSpeed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScoreManager(tc.d)
			s.level = tc.level
			if got := s.Speed(); got != tc.expected {
				t.Errorf("Speed() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSpeedStrictlyDecreasesUntilFloor(t *testing.T) {
	for _, d := range []Difficulty{easy, medium, hard} {
		s := NewScoreManager(d)
		prev := s.Speed()
		for level := 2; level <= MaxLevel; level++ {
			s.level = level
			cur := s.Speed()
			if cur > prev || (cur == prev && cur != MinSpeed) {
				t.Errorf("%s: speed %v at level %d did not drop from %v", d.Name, cur, level, prev)
			}
			prev = cur
		}
	}
}

func TestLevelProgress(t *testing.T) {
	s := NewScoreManager(medium)

	s.score = 25
	if p := s.LevelProgress(); p != 0.5 {
		t.Errorf("LevelProgress at 25 = %f, expected 0.5", p)
	}
	if n := s.PointsToNextLevel(); n != 25 {
		t.Errorf("PointsToNextLevel at 25 = %d, expected 25", n)
	}

	s.score = 1200
	s.level = MaxLevel
	if !s.IsMaxLevel() {
		t.Error("Level 10 should be max")
	}
	if p := s.LevelProgress(); p != 0.5 {
		t.Errorf("LevelProgress past max = %f, expected 0.5", p)
	}
	if n := s.PointsToNextLevel(); n != 0 {
		t.Errorf("PointsToNextLevel at max = %d, expected 0", n)
	}

	s.score = 5000
	if p := s.LevelProgress(); p != 1 {
		t.Errorf("LevelProgress should clamp to 1, got %f", p)
	}
}

func TestScoreReset(t *testing.T) {
	s := NewScoreManager(medium)
	now := testStart
	for i := 0; i < 10; i++ {
		now = now.Add(100 * time.Millisecond)
		s.EatFood(now, plainFood, false)
	}

	s.Reset()
	stats := s.Stats()
	if stats.Score != 0 || stats.Level != 1 || stats.FoodEaten != 0 || stats.Streak != 0 || stats.BestStreak != 0 {
		t.Errorf("Reset left state behind: %+v", stats)
	}
	if res := s.EatFood(now.Add(100*time.Millisecond), plainFood, false); res.IsCombo {
		t.Error("First eat after Reset should not be a combo")
	}
}

func TestLevelNeverDecreases(t *testing.T) {
	s := NewScoreManager(medium)
	s.score = 130
	s.checkLevelUp()
	if s.Level() != 3 {
		t.Fatalf("Expected level 3, got %d", s.Level())
	}

	s.score = 10
	if s.checkLevelUp() || s.Level() != 3 {
		t.Errorf("Level should stay at 3, got %d", s.Level())
	}
}
