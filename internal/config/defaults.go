package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in snake configuration.
// It mirrors defaults/snake.yaml and is used if the embedded file is unreadable.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{Size: 20},
		Difficulties: map[string]DifficultyConfig{
			string(DifficultyEasy):   {BaseSpeedMs: 200, SpeedIncreaseMs: 5, PointsMultiplier: 0.8},
			string(DifficultyMedium): {BaseSpeedMs: 150, SpeedIncreaseMs: 8, PointsMultiplier: 1.0},
			string(DifficultyHard):   {BaseSpeedMs: 100, SpeedIncreaseMs: 12, PointsMultiplier: 1.5},
		},
		Foods: []FoodConfig{
			{ID: "normal", Name: "Apple", Glyph: "●", Color: "red", PointsBase: 10, PointsMultiplier: 1, Weight: 70},
			{ID: "golden", Name: "Golden Apple", Glyph: "●", Color: "bright_yellow", PointsBase: 50, PointsMultiplier: 1, Weight: 15},
			{ID: "diamond", Name: "Diamond", Glyph: "◆", Color: "bright_cyan", PointsBase: 100, PointsMultiplier: 1, Weight: 5},
			{ID: "berry", Name: "Magic Berry", Glyph: "✦", Color: "bright_magenta", PointsBase: 20, PointsMultiplier: 1, Weight: 10, PowerUp: "double_points"},
			{ID: "shield_orb", Name: "Shield Orb", Glyph: "◎", Color: "bright_blue", PointsBase: 15, PointsMultiplier: 1, Weight: 4, PowerUp: "shield"},
			{ID: "snail", Name: "Snail Shell", Glyph: "@", Color: "green", PointsBase: 15, PointsMultiplier: 1, Weight: 4, PowerUp: "slow_motion"},
			{ID: "bolt", Name: "Bolt", Glyph: "»", Color: "orange", PointsBase: 15, PointsMultiplier: 1, Weight: 3, PowerUp: "speed_boost"},
		},
		PowerUps: []PowerUpConfig{
			{ID: "double_points", Name: "Double Points", Glyph: "2", Color: "bright_magenta", DurationMs: 8000, Description: "Points x2"},
			{ID: "shield", Name: "Shield", Glyph: "S", Color: "bright_blue", DurationMs: 3000, Description: "Invincible"},
			{ID: "slow_motion", Name: "Slow Motion", Glyph: "~", Color: "green", DurationMs: 6000, Description: "Slower"},
			{ID: "speed_boost", Name: "Speed Boost", Glyph: ">", Color: "orange", DurationMs: 5000, Description: "Faster"},
		},
	}
}
