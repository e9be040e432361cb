// Package web serves a read-only JSON leaderboard over HTTP.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/handheld-arcade/internal/registry"
	"github.com/vovakirdan/handheld-arcade/internal/storage"
)

// MaxLimit caps the number of scores one request can ask for.
const MaxLimit = 100

// ScoreReader is the part of the score store the API reads.
type ScoreReader interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
	GetAllGamesStats() (map[string]*storage.GameStats, error)
}

// GameView is one entry of /api/games.
type GameView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slot  int    `json:"slot"`
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(store ScoreReader, logger *log.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/games", listGames)
	api.GET("/scores/:game", topScores(store))
	api.GET("/stats", allStats(store))
	api.GET("/stats/:game", gameStats(store))
	return r
}

func requestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func listGames(c *gin.Context) {
	games := registry.List()
	out := make([]GameView, len(games))
	for i, g := range games {
		out[i] = GameView{ID: g.ID, Title: g.Title, Slot: g.Slot}
	}
	c.JSON(http.StatusOK, out)
}

// gameParam resolves :game, answering 404 itself when it is unknown.
func gameParam(c *gin.Context) (string, bool) {
	id := c.Param("game")
	if !registry.Exists(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown game %q", id)})
		return "", false
	}
	return id, true
}

func topScores(store ScoreReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := gameParam(c)
		if !ok {
			return
		}

		limit := storage.DefaultLimit
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 || n > MaxLimit {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("limit must be between 1 and %d", MaxLimit)})
				return
			}
			limit = n
		}

		scores, err := store.TopScores(id, limit)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load scores"})
			return
		}
		if scores == nil {
			scores = []storage.ScoreEntry{}
		}
		c.JSON(http.StatusOK, gin.H{"game": id, "scores": scores})
	}
}

func gameStats(store ScoreReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := gameParam(c)
		if !ok {
			return
		}

		stats, err := store.GetGameStats(id)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

func allStats(store ScoreReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := store.GetAllGamesStats()
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// Server runs the router on an address.
type Server struct {
	http   *http.Server
	logger *log.Logger
}

// NewServer creates a server for addr. gin runs in release mode unless the
// logger is at debug level.
func NewServer(addr string, store ScoreReader, logger *log.Logger) *Server {
	if logger.GetLevel() > log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	return &Server{
		http: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(store, logger),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting HTTP server", "address", s.http.Addr)

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("web: http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}
