package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const snakeConfigFile = "snake.yaml"

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Only an explicit customPath can fail; broken files found by the search
// are skipped.
func LoadSnake(customPath string) (SnakeConfig, error) {
	if customPath != "" {
		cfg, err := readSnake(customPath)
		if err != nil {
			return SnakeConfig{}, err
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(snakeConfigFile); userCfgPath != "" {
		if cfg, err := readSnake(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := readSnake(filepath.Join("configs", snakeConfigFile)); err == nil {
		return cfg, nil
	}

	cfg, err := parseSnake(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil
	}
	return cfg, nil
}

func readSnake(path string) (SnakeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parseSnake(data)
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// parseSnake decodes YAML on top of the built-in defaults, so a file only
// needs the keys it changes.
func parseSnake(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	override := SnakeConfig{}
	if err := yaml.Unmarshal(data, &override); err != nil {
		return SnakeConfig{}, fmt.Errorf("failed to parse: %w", err)
	}

	if override.Grid.Size != 0 {
		cfg.Grid = override.Grid
	}
	for name, d := range override.Difficulties {
		cfg.Difficulties[name] = d
	}
	if len(override.Foods) > 0 {
		cfg.Foods = override.Foods
	}
	if len(override.PowerUps) > 0 {
		cfg.PowerUps = override.PowerUps
	}

	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}
