package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var snake SnakeConfig
	if err := yaml.Unmarshal(defaultSnakeYAML, &snake); err != nil {
		t.Fatalf("snake.yaml: %v", err)
	}
	if !reflect.DeepEqual(snake, DefaultSnakeConfig()) {
		t.Errorf("snake.yaml drifted from DefaultSnakeConfig:\n%+v\n%+v", snake, DefaultSnakeConfig())
	}

	var tetris TetrisConfig
	if err := yaml.Unmarshal(defaultTetrisYAML, &tetris); err != nil {
		t.Fatalf("tetris.yaml: %v", err)
	}
	if !reflect.DeepEqual(tetris, DefaultTetrisConfig()) {
		t.Errorf("tetris.yaml drifted from DefaultTetrisConfig:\n%+v\n%+v", tetris, DefaultTetrisConfig())
	}

	var flappy FlappyConfig
	if err := yaml.Unmarshal(defaultFlappyYAML, &flappy); err != nil {
		t.Fatalf("flappy.yaml: %v", err)
	}
	if !reflect.DeepEqual(flappy, DefaultFlappyConfig()) {
		t.Errorf("flappy.yaml drifted from DefaultFlappyConfig:\n%+v\n%+v", flappy, DefaultFlappyConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	for name, v := range map[string]validator{
		"snake":  DefaultSnakeConfig(),
		"tetris": DefaultTetrisConfig(),
		"flappy": DefaultFlappyConfig(),
	} {
		if err := v.Validate(); err != nil {
			t.Errorf("%s defaults invalid: %v", name, err)
		}
	}
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadCustomPathOverridesKeys(t *testing.T) {
	path := writeFile(t, t.TempDir(), "mine.yaml", "rules:\n  apple_reward: 9\n")

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Rules.AppleReward != 9 {
		t.Errorf("Expected apple_reward 9, got %d", cfg.Rules.AppleReward)
	}
	// Keys absent from the file keep their defaults
	if cfg.Rules.AnimalLifetime != 20 || cfg.Timing.StepMs != 50 {
		t.Errorf("Missing keys lost defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadTetris(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing custom file")
	}

	bad := writeFile(t, dir, "bad.yaml", "rules: [unterminated")
	if _, err := LoadTetris(bad); err == nil {
		t.Error("Expected parse error")
	}

	invalid := writeFile(t, dir, "invalid.yaml", "rules:\n  start_speed: 9\n")
	_, err := LoadTetris(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	for _, ok := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(ok); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", ok, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("Expected error for unknown preset")
	}
}

func TestApplyPreset(t *testing.T) {
	d := DefaultTetrisConfig().Difficulty

	ApplyPreset(&d, "")
	if !d.Enabled || d.InitialLevel != 0 {
		t.Errorf("Empty preset changed config: %+v", d)
	}

	ApplyPreset(&d, DifficultyHard)
	if !d.Enabled || d.InitialLevel != 0.7 {
		t.Errorf("Hard preset: %+v", d)
	}

	ApplyPreset(&d, DifficultyFixed)
	if d.Enabled {
		t.Error("Fixed preset should disable progression")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	}
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(50, 0); got != 0.5 {
		t.Errorf("Level(50) = %v, expected 0.5", got)
	}
	if got := dm.Level(500, 0); got != 1.0 {
		t.Errorf("Level should clamp at 1, got %v", got)
	}
	if got := dm.Period(50, 100, 0); got != 25 {
		t.Errorf("Period at max level = %d, expected 25", got)
	}

	dm.SetEnabled(false)
	if got := dm.Period(50, 100, 0); got != 50 {
		t.Errorf("Disabled manager must not change the period, got %d", got)
	}
	if got := dm.Speed(7, 100, 0); got != 7 {
		t.Errorf("Disabled manager must not change speed, got %v", got)
	}
}

func TestDifficultyStartLevel(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected int
	}{
		{DifficultyEasy, 1},
		{DifficultyNormal, 2},
		{DifficultyHard, 4},
	}
	for _, tc := range tests {
		d := DefaultTetrisConfig().Difficulty
		ApplyPreset(&d, tc.preset)
		if got := NewDifficultyManager(d).StartLevel(1, 5); got != tc.expected {
			t.Errorf("%s start speed = %d, expected %d", tc.preset, got, tc.expected)
		}
	}
}

func TestCacheLoadsOnce(t *testing.T) {
	path := writeFile(t, t.TempDir(), "snake.yaml", "rules:\n  apple_reward: 11\n")
	c := NewCache()

	for i := 0; i < 3; i++ {
		cfg, err := c.Snake(path)
		if err != nil {
			t.Fatalf("Snake() failed: %v", err)
		}
		if cfg.Rules.AppleReward != 11 {
			t.Fatalf("Unexpected reward %d", cfg.Rules.AppleReward)
		}
	}
	if c.Loads() != 1 {
		t.Errorf("Expected 1 load, got %d", c.Loads())
	}

	if n := c.Invalidate("snake.yaml"); n != 1 {
		t.Errorf("Invalidate dropped %d entries, expected 1", n)
	}
	writeFile(t, filepath.Dir(path), "snake.yaml", "rules:\n  apple_reward: 12\n")
	cfg, _ := c.Snake(path)
	if cfg.Rules.AppleReward != 12 || c.Loads() != 2 {
		t.Errorf("Expected reload with reward 12, got %d after %d loads", cfg.Rules.AppleReward, c.Loads())
	}
}

func TestCacheDoesNotStoreErrors(t *testing.T) {
	c := NewCache()
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := c.Flappy(missing); err == nil {
		t.Fatal("Expected error")
	}
	if _, err := c.Flappy(missing); err == nil {
		t.Fatal("Expected error on second call too")
	}
	if c.Loads() != 2 {
		t.Errorf("Failed loads must be retried, got %d loads", c.Loads())
	}
}

func TestWatcherInvalidatesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "flappy.yaml", "medals:\n  bronze: 1\n  silver: 2\n  gold: 3\n")

	cache := NewCache()
	if _, err := cache.Flappy(path); err != nil {
		t.Fatalf("Flappy() failed: %v", err)
	}

	logger := log.New(io.Discard)
	w, err := NewWatcher(cache, logger, dir, filepath.Join(dir, "absent"))
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.fsw.Close()

	if len(w.Dirs()) != 1 {
		t.Errorf("Expected only the existing dir to be watched, got %v", w.Dirs())
	}

	w.handle(fsnotify.Event{Name: path, Op: fsnotify.Chmod})
	if cache.Loads() != 1 {
		t.Fatal("Chmod must not invalidate")
	}
	w.handle(fsnotify.Event{Name: path, Op: fsnotify.Write})
	if _, err := cache.Flappy(path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if cache.Loads() != 2 {
		t.Errorf("Write should force a reload, loads = %d", cache.Loads())
	}
}

func TestNewWatcherNeedsADirectory(t *testing.T) {
	_, err := NewWatcher(NewCache(), log.New(io.Discard), filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Error("Expected error when nothing can be watched")
	}
}
