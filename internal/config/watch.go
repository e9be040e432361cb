package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher invalidates a Cache whenever a game config file changes on disk.
type Watcher struct {
	fsw    *fsnotify.Watcher
	cache  *Cache
	logger *log.Logger
	dirs   []string
}

// NewWatcher watches every existing directory in dirs. Missing directories
// are skipped; it is an error only if none can be watched.
func NewWatcher(cache *Cache, logger *log.Logger, dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create watcher: %w", err)
	}

	w := &Watcher{fsw: fsw, cache: cache, logger: logger}
	for _, dir := range dirs {
		if info, statErr := os.Stat(dir); statErr != nil || !info.IsDir() {
			continue
		}
		if addErr := fsw.Add(dir); addErr != nil {
			logger.Warn("cannot watch config directory", "dir", dir, "error", addErr)
			continue
		}
		w.dirs = append(w.dirs, dir)
	}

	if len(w.dirs) == 0 {
		fsw.Close()
		return nil, fmt.Errorf("config: no config directory to watch in %v", dirs)
	}
	return w, nil
}

// Dirs returns the directories actually being watched.
func (w *Watcher) Dirs() []string {
	return w.dirs
}

// Run processes file events until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()
	w.logger.Info("watching configs", "dirs", w.dirs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handle(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("config watcher", "error", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if filepath.Ext(event.Name) != ".yaml" {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	name := filepath.Base(event.Name)
	n := w.cache.Invalidate(name) + w.cache.Invalidate(event.Name)
	w.logger.Info("config changed", "file", name, "op", event.Op.String(), "dropped", n)

	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		return
	}
	if err := validateFile(event.Name); err != nil {
		w.logger.Warn("config rejected, defaults will be used", "file", name, "error", err)
	}
}

// validateFile parses a changed file with the loader for its game.
func validateFile(path string) error {
	var err error
	switch filepath.Base(path) {
	case "snake.yaml":
		_, err = LoadSnake(path)
	case "tetris.yaml":
		_, err = LoadTetris(path)
	case "flappy.yaml":
		_, err = LoadFlappy(path)
	}
	return err
}
