package config

import "fmt"

// DifficultyPreset names a difficulty profile.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// DefaultDifficulty is used when nothing else is chosen.
const DefaultDifficulty = DifficultyMedium

// Presets returns all difficulty presets from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty converts a flag or settings value to a preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return DifficultyPreset(s), nil
	case "":
		return DefaultDifficulty, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// Next returns the following preset, wrapping from hard back to easy.
func (p DifficultyPreset) Next() DifficultyPreset {
	presets := Presets()
	for i, preset := range presets {
		if preset == p {
			return presets[(i+1)%len(presets)]
		}
	}
	return DefaultDifficulty
}

// Difficulty returns the profile for the preset, falling back to the
// built-in profile when the config does not define it.
func (c SnakeConfig) Difficulty(preset DifficultyPreset) DifficultyConfig {
	if d, ok := c.Difficulties[string(preset)]; ok {
		return d
	}
	if d, ok := DefaultSnakeConfig().Difficulties[string(preset)]; ok {
		return d
	}
	return DefaultSnakeConfig().Difficulties[string(DefaultDifficulty)]
}
