package config

import (
	"strings"
	"sync"
)

// Cache memoizes loaded game configs until a watcher invalidates them.
// It is safe for concurrent use by SSH sessions.
type Cache struct {
	mu      sync.Mutex
	entries map[string]any
	loads   int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]any)}
}

var shared = NewCache()

// Shared returns the process-wide cache used by the games.
func Shared() *Cache {
	return shared
}

// Snake returns the cached Snake config for customPath, loading it on a miss.
func (c *Cache) Snake(customPath string) (SnakeConfig, error) {
	return cached(c, "snake.yaml", customPath, LoadSnake)
}

// Tetris returns the cached Tetris config for customPath, loading it on a miss.
func (c *Cache) Tetris(customPath string) (TetrisConfig, error) {
	return cached(c, "tetris.yaml", customPath, LoadTetris)
}

// Flappy returns the cached Flappy config for customPath, loading it on a miss.
func (c *Cache) Flappy(customPath string) (FlappyConfig, error) {
	return cached(c, "flappy.yaml", customPath, LoadFlappy)
}

// Invalidate drops every entry that was loaded for filename, whatever the
// custom path. A custom path whose base name differs is matched by path.
func (c *Cache) Invalidate(filename string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for key := range c.entries {
		name, path, _ := strings.Cut(key, "|")
		if name == filename || (path != "" && path == filename) {
			delete(c.entries, key)
			n++
		}
	}
	return n
}

// InvalidateAll empties the cache.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// Loads reports how many cache misses triggered a load.
func (c *Cache) Loads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loads
}

func cached[T any](c *Cache, filename, customPath string, load func(string) (T, error)) (T, error) {
	key := filename + "|" + customPath

	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.entries[key]; ok {
		return v.(T), nil
	}
	cfg, err := load(customPath)
	c.loads++
	if err != nil {
		return cfg, err
	}
	c.entries[key] = cfg
	return cfg, nil
}
