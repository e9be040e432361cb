package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/handheld-arcade/internal/config"
	"github.com/vovakirdan/handheld-arcade/internal/platform/tui"
	"github.com/vovakirdan/handheld-arcade/internal/platform/web"
	"github.com/vovakirdan/handheld-arcade/internal/storage"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
	flagWatchConfig bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the console over SSH and the leaderboard over HTTP",
	Long: `Start an SSH server where every connection gets its own console,
and optionally an HTTP server with a read-only JSON leaderboard.

All sessions share one scores database, so use --db with a file path
to keep the leaderboard across restarts.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

HTTP routes (when --http is set):
  GET /healthz
  GET /api/games
  GET /api/stats
  GET /api/scores/:game?limit=N
  GET /api/stats/:game

Examples:
  arcade serve                              # SSH on :23234
  arcade serve --ssh :2222 --http :8080     # SSH and HTTP
  arcade serve --db ./scores.db --watch-config

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP leaderboard address (disabled if empty)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagWatchConfig, "watch-config", false, "Reload game configs when their YAML files change")
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	if store.Path() == storage.Memory {
		logger.Warn("scores are kept in memory and lost on exit; pass --db to persist them")
	}

	sshCfg := tui.DefaultSSHServerConfig()
	sshCfg.Address = flagSSHAddr
	sshCfg.HostKeyPath = flagHostKey
	sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	sshCfg.TickRate = flagFPS
	sshCfg.Seed = flagSeed

	sshServer, err := tui.NewSSHServer(sshCfg, store, logger)
	if err != nil {
		return err
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	run := func(fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(ctx); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				stop()
			}
		}()
	}

	run(sshServer.ListenAndServe)
	if flagHTTPAddr != "" {
		run(web.NewServer(flagHTTPAddr, store, logger).ListenAndServe)
	}
	if flagWatchConfig {
		watcher, err := config.NewWatcher(config.Shared(), logger, config.UserDir(), config.LocalDir)
		if err != nil {
			logger.Warn("config watching disabled", "error", err)
		} else {
			run(watcher.Run)
		}
	}

	logger.Info("arcade is up", "ssh", flagSSHAddr, "http", flagHTTPAddr)
	wg.Wait()
	return errors.Join(errs...)
}
