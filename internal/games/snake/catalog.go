package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
)

// PowerUpID identifies a timed effect.
type PowerUpID string

// Built-in power-ups. The engine reacts to these ids directly.
const (
	PowerUpDoublePoints PowerUpID = "double_points"
	PowerUpShield       PowerUpID = "shield"
	PowerUpSlowMotion   PowerUpID = "slow_motion"
	PowerUpSpeedBoost   PowerUpID = "speed_boost"
)

// PowerUp is the static definition of a timed effect.
type PowerUp struct {
	ID          PowerUpID
	Name        string
	Glyph       rune
	Color       core.Color
	Duration    time.Duration
	Description string
}

// FoodType is one entry of the spawn table.
type FoodType struct {
	ID               string
	Name             string
	Glyph            rune
	Color            core.Color
	PointsBase       int
	PointsMultiplier float64
	Weight           int
	PowerUp          PowerUpID // Empty when the food grants nothing
}

// BasePoints returns the food's value before difficulty and bonuses.
func (f FoodType) BasePoints() float64 {
	return float64(f.PointsBase) * f.PointsMultiplier
}

// Catalog is the immutable table of food types and power-up definitions.
type Catalog struct {
	foods       []FoodType
	powerUps    map[PowerUpID]PowerUp
	totalWeight int
}

// NewCatalog validates and freezes a food table.
func NewCatalog(foods []FoodType, powerUps []PowerUp) (*Catalog, error) {
	if len(foods) == 0 {
		return nil, errors.New("catalog: no food types")
	}

	c := &Catalog{
		foods:    make([]FoodType, len(foods)),
		powerUps: make(map[PowerUpID]PowerUp, len(powerUps)),
	}
	copy(c.foods, foods)

	for _, p := range powerUps {
		if p.ID == "" {
			return nil, errors.New("catalog: power-up without id")
		}
		if _, dup := c.powerUps[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate power-up %q", p.ID)
		}
		if p.Duration <= 0 {
			return nil, fmt.Errorf("catalog: power-up %q has non-positive duration", p.ID)
		}
		c.powerUps[p.ID] = p
	}

	seen := make(map[string]bool, len(foods))
	for _, f := range foods {
		if f.ID == "" {
			return nil, errors.New("catalog: food without id")
		}
		if seen[f.ID] {
			return nil, fmt.Errorf("catalog: duplicate food %q", f.ID)
		}
		seen[f.ID] = true
		if f.Weight < 0 {
			return nil, fmt.Errorf("catalog: food %q has negative weight", f.ID)
		}
		if f.PowerUp != "" {
			if _, ok := c.powerUps[f.PowerUp]; !ok {
				return nil, fmt.Errorf("catalog: food %q references unknown power-up %q", f.ID, f.PowerUp)
			}
		}
		c.totalWeight += f.Weight
	}

	if c.totalWeight <= 0 {
		return nil, errors.New("catalog: total food weight must be positive")
	}
	return c, nil
}

// CatalogFromConfig builds a catalog from the YAML food table.
func CatalogFromConfig(cfg config.SnakeConfig) (*Catalog, error) {
	powerUps := make([]PowerUp, 0, len(cfg.PowerUps))
	for _, p := range cfg.PowerUps {
		color, _ := core.ParseColor(p.Color)
		powerUps = append(powerUps, PowerUp{
			ID:          PowerUpID(p.ID),
			Name:        p.Name,
			Glyph:       glyphOf(p.Glyph, '+'),
			Color:       color,
			Duration:    p.Duration(),
			Description: p.Description,
		})
	}

	foods := make([]FoodType, 0, len(cfg.Foods))
	for _, f := range cfg.Foods {
		color, _ := core.ParseColor(f.Color)
		mult := f.PointsMultiplier
		if mult == 0 {
			mult = 1
		}
		foods = append(foods, FoodType{
			ID:               f.ID,
			Name:             f.Name,
			Glyph:            glyphOf(f.Glyph, '*'),
			Color:            color,
			PointsBase:       f.PointsBase,
			PointsMultiplier: mult,
			Weight:           f.Weight,
			PowerUp:          PowerUpID(f.PowerUp),
		})
	}

	return NewCatalog(foods, powerUps)
}

func glyphOf(s string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}

// DefaultCatalog returns the standard food table.
func DefaultCatalog() *Catalog {
	c, err := CatalogFromConfig(config.DefaultSnakeConfig())
	if err != nil {
		panic(fmt.Sprintf("snake: built-in catalog is invalid: %v", err))
	}
	return c
}

// ClassicCatalog returns a single plain 10-point food and no power-ups.
func ClassicCatalog() *Catalog {
	c, err := NewCatalog([]FoodType{{
		ID:               "normal",
		Name:             "Apple",
		Glyph:            '●',
		Color:            core.ColorRed,
		PointsBase:       10,
		PointsMultiplier: 1,
		Weight:           1,
	}}, nil)
	if err != nil {
		panic(fmt.Sprintf("snake: classic catalog is invalid: %v", err))
	}
	return c
}

// SelectFood draws a food type with probability weight/totalWeight.
// Every call is an independent draw.
func (c *Catalog) SelectFood(rng *rand.Rand) FoodType {
	roll := rng.Intn(c.totalWeight)
	cumulative := 0
	for _, f := range c.foods {
		cumulative += f.Weight
		if roll < cumulative {
			return f
		}
	}
	return c.foods[len(c.foods)-1]
}

// Probability returns the spawn chance of a food type, or 0 if unknown.
func (c *Catalog) Probability(id string) float64 {
	for _, f := range c.foods {
		if f.ID == id {
			return float64(f.Weight) / float64(c.totalWeight)
		}
	}
	return 0
}

// Foods returns a copy of the food table in declaration order.
func (c *Catalog) Foods() []FoodType {
	out := make([]FoodType, len(c.foods))
	copy(out, c.foods)
	return out
}

// Food looks up a food type by id.
func (c *Catalog) Food(id string) (FoodType, bool) {
	for _, f := range c.foods {
		if f.ID == id {
			return f, true
		}
	}
	return FoodType{}, false
}

// PowerUp looks up a power-up definition.
func (c *Catalog) PowerUp(id PowerUpID) (PowerUp, bool) {
	p, ok := c.powerUps[id]
	return p, ok
}

// HasPowerUps reports whether any power-up is defined.
func (c *Catalog) HasPowerUps() bool {
	return len(c.powerUps) > 0
}
