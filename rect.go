package zoomer

import (
	"image"
	"math"
)

// Rect is an axis-aligned rectangle in capture-pixel coordinates.
// It is used both for the static (user-controlled) view and for the
// dynamic rectangle that is actually sampled each frame.
type Rect struct {
	X, Y, W, H int
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// RectFromImage converts an image.Rectangle to a Rect.
func RectFromImage(r image.Rectangle) Rect {
	return Rect{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}

// Inset returns r shrunk by dx on the left and right and by dy on the
// top and bottom.
func (r Rect) Inset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// Extent is a per-axis zoom inset in pixels, subtracted from both sides of
// the static rectangle. Larger extents mean more magnification.
type Extent struct {
	W, H float64
}

// Pixels returns the extent rounded to whole pixels.
func (e Extent) Pixels() (w, h int) {
	return int(math.Round(e.W)), int(math.Round(e.H))
}

// Point is a pointer position in window coordinates.
type Point struct {
	X, Y int
}

// FRect is a rectangle with fractional coordinates, used for overlay
// geometry in window space.
type FRect struct {
	X, Y, W, H float64
}

// Line is a segment in window coordinates.
type Line struct {
	X0, Y0, X1, Y1 float64
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
