package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// LocalDir is the project-relative directory searched after the user directory.
const LocalDir = "configs"

// LoadSnake loads Snake configuration.
// Search order: customPath -> ~/.arcade/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load("snake.yaml", customPath, defaultSnakeYAML, DefaultSnakeConfig)
}

// LoadTetris loads Tetris configuration.
// Search order: customPath -> ~/.arcade/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	return load("tetris.yaml", customPath, defaultTetrisYAML, DefaultTetrisConfig)
}

// LoadFlappy loads Flappy configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
func LoadFlappy(customPath string) (FlappyConfig, error) {
	return load("flappy.yaml", customPath, defaultFlappyYAML, DefaultFlappyConfig)
}

// load resolves one game's configuration. Only an explicit customPath can fail;
// broken user or local files fall through to the next candidate.
func load[T validator](filename, customPath string, embedded []byte, fallback func() T) (T, error) {
	if customPath != "" {
		cfg, err := parseFile(customPath, fallback)
		if err != nil {
			var zero T
			return zero, err
		}
		return cfg, nil
	}

	for _, path := range SearchPaths(filename) {
		if cfg, err := parseFile(path, fallback); err == nil {
			return cfg, nil
		}
	}

	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseFile decodes path over the hardcoded defaults so missing keys keep
// their default values.
func parseFile[T validator](path string, fallback func() T) (T, error) {
	cfg := fallback()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// SearchPaths returns the non-embedded candidates for filename, in order.
func SearchPaths(filename string) []string {
	var paths []string
	if dir := UserDir(); dir != "" {
		paths = append(paths, filepath.Join(dir, filename))
	}
	return append(paths, filepath.Join(LocalDir, filename))
}

// UserDir returns ~/.arcade/configs, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs")
}
