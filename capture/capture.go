// Package capture takes the still image a magnifier session works on.
//
// [Grab] captures the whole virtual desktop once, spanning every active
// display. [Load] reads a still image from disk instead, which is useful for
// headless runs and tests. Either way the result is a [Snapshot]: a packed
// RGBA buffer plus the bounds of each monitor in capture-space coordinates.
package capture

import (
	"errors"
	"fmt"
	"image"
	"io"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/zoomer"
)

// ErrNoDisplays is returned by Grab when no active display is found.
var ErrNoDisplays = errors.New("capture: no active displays")

// Snapshot is a captured image. Pix holds Width*Height texels in R, G, B, A
// byte order with alpha forced to 0xff. Displays lists each monitor's
// bounds relative to the top-left corner of the capture.
//
// A Snapshot is read-only once created.
type Snapshot struct {
	Width    int
	Height   int
	Pix      []byte
	Displays []image.Rectangle
}

// FromImage copies img into a new Snapshot. The image is moved to the origin
// and made opaque. If displays is empty the whole image counts as a single
// display.
func FromImage(img image.Image, displays []image.Rectangle) *Snapshot {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	forceOpaque(dst.Pix)

	if len(displays) == 0 {
		displays = []image.Rectangle{dst.Bounds()}
	}
	return &Snapshot{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Pix:      dst.Pix,
		Displays: append([]image.Rectangle(nil), displays...),
	}
}

func forceOpaque(pix []byte) {
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 0xff
	}
}

// Image returns the snapshot as an *image.RGBA sharing Pix.
func (s *Snapshot) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    s.Pix,
		Stride: 4 * s.Width,
		Rect:   image.Rect(0, 0, s.Width, s.Height),
	}
}

// DisplayRects returns the monitor bounds as viewport rectangles.
func (s *Snapshot) DisplayRects() []zoomer.Rect {
	rects := make([]zoomer.Rect, len(s.Displays))
	for i, d := range s.Displays {
		rects[i] = zoomer.RectFromImage(d)
	}
	return rects
}

// Display returns the bounds of monitor i, falling back to the first
// monitor when i is out of range.
func (s *Snapshot) Display(i int) image.Rectangle {
	if i < 0 || i >= len(s.Displays) {
		if len(s.Displays) == 0 {
			return image.Rect(0, 0, s.Width, s.Height)
		}
		zoomer.Logger().Debug("capture: display index out of range, using 0",
			"index", i, "displays", len(s.Displays))
		return s.Displays[0]
	}
	return s.Displays[i]
}

// DumpRaw writes the raw texel buffer to w.
func (s *Snapshot) DumpRaw(w io.Writer) error {
	if _, err := w.Write(s.Pix); err != nil {
		return fmt.Errorf("capture: dump raw: %w", err)
	}
	return nil
}

// layout returns the union of bounds and each bound translated so that the
// union's top-left corner is the origin.
func layout(bounds []image.Rectangle) (image.Rectangle, []image.Rectangle) {
	var union image.Rectangle
	for _, b := range bounds {
		union = union.Union(b)
	}
	local := make([]image.Rectangle, len(bounds))
	for i, b := range bounds {
		local[i] = b.Sub(union.Min)
	}
	return union, local
}
