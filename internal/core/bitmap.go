package core

import (
	"image"
	"image/color"
)

// Display dimensions of the console's monochrome panel.
const (
	DisplayW = 128
	DisplayH = 64
)

// Braille cells cover 2×4 pixels, so the panel maps to 64×16 characters.
const (
	BlitW = DisplayW / 2
	BlitH = DisplayH / 4
)

// Surface is the drawing contract engines render against.
// Coordinates are display pixels with (0,0) at the top-left.
type Surface interface {
	SetDrawColor(on bool)
	SetPixel(x, y int)
	DrawLine(x0, y0, x1, y1 int)
	DrawBox(x, y, w, h int)
	DrawFrame(x, y, w, h int)
	DrawCircle(cx, cy, r int)
	Clear()
	Flush()
}

// Bitmap is a double-buffered 128×64 one-bit display.
// Drawing goes to the back buffer; Flush publishes it to the front buffer
// that Pixel, Blit and Image read from.
type Bitmap struct {
	back   [DisplayH][DisplayW]bool
	front  [DisplayH][DisplayW]bool
	ink    bool
	frames int
}

var _ Surface = (*Bitmap)(nil)

// NewBitmap returns a cleared bitmap drawing with the "on" colour.
func NewBitmap() *Bitmap {
	return &Bitmap{ink: true}
}

// SetDrawColor selects whether subsequent primitives set or erase pixels.
func (b *Bitmap) SetDrawColor(on bool) {
	b.ink = on
}

// SetPixel writes one pixel in the current colour. Off-panel pixels are dropped.
func (b *Bitmap) SetPixel(x, y int) {
	if x < 0 || x >= DisplayW || y < 0 || y >= DisplayH {
		return
	}
	b.back[y][x] = b.ink
}

// DrawLine draws a line between two points inclusive (Bresenham).
func (b *Bitmap) DrawLine(x0, y0, x1, y1 int) {
	dx := Abs(x1 - x0)
	dy := -Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		b.SetPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// DrawBox fills a w×h rectangle whose top-left corner is (x, y).
func (b *Bitmap) DrawBox(x, y, w, h int) {
	r := NewRect(x, y, w, h).Intersect(NewRect(0, 0, DisplayW, DisplayH))
	for py := r.Y; py < r.Bottom(); py++ {
		for px := r.X; px < r.Right(); px++ {
			b.back[py][px] = b.ink
		}
	}
}

// DrawFrame outlines a w×h rectangle whose top-left corner is (x, y).
func (b *Bitmap) DrawFrame(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	b.DrawLine(x, y, x+w-1, y)
	b.DrawLine(x, y+h-1, x+w-1, y+h-1)
	b.DrawLine(x, y, x, y+h-1)
	b.DrawLine(x+w-1, y, x+w-1, y+h-1)
}

// DrawCircle outlines a circle of radius r around (cx, cy) (midpoint algorithm).
func (b *Bitmap) DrawCircle(cx, cy, r int) {
	if r < 0 {
		return
	}
	x, y := r, 0
	d := 1 - r
	for x >= y {
		b.SetPixel(cx+x, cy+y)
		b.SetPixel(cx+y, cy+x)
		b.SetPixel(cx-y, cy+x)
		b.SetPixel(cx-x, cy+y)
		b.SetPixel(cx-x, cy-y)
		b.SetPixel(cx-y, cy-x)
		b.SetPixel(cx+y, cy-x)
		b.SetPixel(cx+x, cy-y)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// Clear blanks the back buffer and restores the "on" colour.
func (b *Bitmap) Clear() {
	b.back = [DisplayH][DisplayW]bool{}
	b.ink = true
}

// Flush publishes the back buffer.
func (b *Bitmap) Flush() {
	b.front = b.back
	b.frames++
}

// Frames returns how many times the bitmap has been flushed.
func (b *Bitmap) Frames() int {
	return b.frames
}

// Pixel reports whether a published pixel is lit.
func (b *Bitmap) Pixel(x, y int) bool {
	if x < 0 || x >= DisplayW || y < 0 || y >= DisplayH {
		return false
	}
	return b.front[y][x]
}

// LitCount returns the number of lit published pixels.
func (b *Bitmap) LitCount() int {
	n := 0
	for y := range b.front {
		for x := range b.front[y] {
			if b.front[y][x] {
				n++
			}
		}
	}
	return n
}

// brailleDots maps a pixel offset inside a 2×4 cell to its braille dot bit.
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Blit rasterizes the published frame into dst as braille characters with the
// top-left cell at (ox, oy). Empty cells become spaces.
func (b *Bitmap) Blit(dst *Screen, ox, oy int) {
	for cy := 0; cy < BlitH; cy++ {
		for cx := 0; cx < BlitW; cx++ {
			var bits rune
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if b.front[cy*4+dy][cx*2+dx] {
						bits |= brailleDots[dy][dx]
					}
				}
			}
			r := ' '
			if bits != 0 {
				r = 0x2800 + bits
			}
			dst.Set(ox+cx, oy+cy, r)
		}
	}
}

// Image returns the published frame as a grayscale image, lit pixels white.
func (b *Bitmap) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, DisplayW, DisplayH))
	for y := range b.front {
		for x := range b.front[y] {
			if b.front[y][x] {
				img.SetGray(x, y, color.Gray{Y: 0xff})
			}
		}
	}
	return img
}

// Console layout: one HUD row above the braille panel and one hint row below.
const (
	ConsoleW = BlitW
	ConsoleH = BlitH + 2
)

// Present lays out a full console frame on dst: hud on the first row, the
// published panel below it and footer on the last row.
func (b *Bitmap) Present(dst *Screen, hud, footer string) {
	dst.DrawText(0, 0, hud)
	b.Blit(dst, 0, 1)
	dst.DrawText(0, ConsoleH-1, footer)
}
