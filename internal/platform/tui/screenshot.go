package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/vovakirdan/handheld-arcade/internal/core"
)

// Screenshot geometry: every panel pixel becomes a scale×scale block inside
// a dark bezel.
const (
	screenshotScale = 4
	bezelPad        = 12
)

// renderScreenshot draws the published panel of b as an upscaled picture.
func renderScreenshot(b *core.Bitmap) *gg.Context {
	w, h := core.DisplayW*screenshotScale, core.DisplayH*screenshotScale
	// Nearest neighbour keeps pixel edges hard.
	panel := imaging.Resize(b.Image(), w, h, imaging.NearestNeighbor)

	dc := gg.NewContext(w+2*bezelPad, h+2*bezelPad)
	dc.SetRGB(0.12, 0.12, 0.14)
	dc.Clear()
	dc.SetRGB(0.3, 0.3, 0.33)
	dc.DrawRoundedRectangle(2, 2, float64(w+2*bezelPad-4), float64(h+2*bezelPad-4), bezelPad/2)
	dc.Stroke()
	dc.DrawImage(panel, bezelPad, bezelPad)
	return dc
}

// EncodeScreenshot writes the panel of b to w as PNG.
func EncodeScreenshot(w io.Writer, b *core.Bitmap) error {
	if err := renderScreenshot(b).EncodePNG(w); err != nil {
		return fmt.Errorf("tui: encode screenshot: %w", err)
	}
	return nil
}

// SaveScreenshot stores the panel of b as a timestamped PNG in dir and
// returns the file path.
func SaveScreenshot(dir, gameID string, b *core.Bitmap) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", gameID, timestamp))
	if err := renderScreenshot(b).SavePNG(path); err != nil {
		return "", fmt.Errorf("tui: save screenshot: %w", err)
	}
	return path, nil
}

// ScreenshotDir returns ~/.arcade/screenshots, or a relative directory when
// the home directory is unknown.
func ScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".arcade", "screenshots")
	}
	return filepath.Join(home, ".arcade", "screenshots")
}
