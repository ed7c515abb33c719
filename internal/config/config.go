// Package config provides YAML-based configuration loading for the snake
// game: board size, difficulty profiles and the food and power-up catalog.
package config

import (
	"errors"
	"fmt"
	"time"
)

// MinGridSize is the smallest playable board edge.
const MinGridSize = 8

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid         GridConfig                 `yaml:"grid"`
	Difficulties map[string]DifficultyConfig `yaml:"difficulties"`
	Foods        []FoodConfig               `yaml:"foods"`
	PowerUps     []PowerUpConfig            `yaml:"power_ups"`
}

// GridConfig defines the board.
type GridConfig struct {
	Size int `yaml:"size"` // Cells per edge; the board is square
}

// DifficultyConfig is one difficulty profile.
type DifficultyConfig struct {
	BaseSpeedMs      int     `yaml:"base_speed_ms"`     // Tick interval at level 1
	SpeedIncreaseMs  int     `yaml:"speed_increase_ms"` // Interval reduction per level
	PointsMultiplier float64 `yaml:"points_multiplier"` // Applied to every food's base points
}

// BaseSpeed returns the level 1 tick interval.
func (d DifficultyConfig) BaseSpeed() time.Duration {
	return time.Duration(d.BaseSpeedMs) * time.Millisecond
}

// SpeedIncrease returns the per-level interval reduction.
func (d DifficultyConfig) SpeedIncrease() time.Duration {
	return time.Duration(d.SpeedIncreaseMs) * time.Millisecond
}

// FoodConfig defines one food type in the spawn table.
type FoodConfig struct {
	ID               string  `yaml:"id"`
	Name             string  `yaml:"name"`
	Glyph            string  `yaml:"glyph"`
	Color            string  `yaml:"color"`
	PointsBase       int     `yaml:"points_base"`
	PointsMultiplier float64 `yaml:"points_multiplier"`
	Weight           int     `yaml:"weight"`
	PowerUp          string  `yaml:"power_up,omitempty"`
}

// PowerUpConfig defines a timed effect granted by a food.
type PowerUpConfig struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Glyph       string `yaml:"glyph"`
	Color       string `yaml:"color"`
	DurationMs  int    `yaml:"duration_ms"`
	Description string `yaml:"description"`
}

// Duration returns how long the effect lasts.
func (p PowerUpConfig) Duration() time.Duration {
	return time.Duration(p.DurationMs) * time.Millisecond
}

// Validate checks that the configuration describes a playable game.
// Catalog consistency (unique ids, power-up references) is checked by the
// game when it builds its catalog.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Grid.Size < MinGridSize {
		errs = append(errs, fmt.Errorf("grid size %d is below minimum %d", c.Grid.Size, MinGridSize))
	}

	for _, preset := range Presets() {
		d, ok := c.Difficulties[string(preset)]
		if !ok {
			errs = append(errs, fmt.Errorf("difficulty %q is not defined", preset))
			continue
		}
		if d.BaseSpeedMs <= 0 {
			errs = append(errs, fmt.Errorf("difficulty %q: base_speed_ms must be positive", preset))
		}
		if d.SpeedIncreaseMs < 0 {
			errs = append(errs, fmt.Errorf("difficulty %q: speed_increase_ms must not be negative", preset))
		}
		if d.PointsMultiplier <= 0 {
			errs = append(errs, fmt.Errorf("difficulty %q: points_multiplier must be positive", preset))
		}
	}

	if len(c.Foods) == 0 {
		errs = append(errs, errors.New("at least one food type is required"))
	}

	return errors.Join(errs...)
}
