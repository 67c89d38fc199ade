// Package raster renders frames into a software pixel buffer using gg.
//
// The raster backend draws without a window. It backs headless snapshots
// (zoomer --snapshot) and pixel tests of the composer.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/zoomer/render/raster"
//
//	// Create via registry
//	backend, _ := render.NewBackend("raster", snap.Image())
//
//	// Or create directly
//	backend := raster.NewBackend(snap.Image())
//
//	frame.Playback(backend)
//	backend.SavePNG("zoomer.png")
package raster

import (
	"image"
	"image/color"
	"io"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/gg"

	"github.com/gogpu/zoomer"
	"github.com/gogpu/zoomer/render"
)

func init() {
	render.Register("raster", func(src image.Image) render.Backend {
		return NewBackend(src)
	})
}

// Backend renders frames to a pixel image using gg.Context.
type Backend struct {
	src    image.Image
	ctx    *gg.Context
	width  int
	height int
}

var _ render.Backend = (*Backend)(nil)

// NewBackend creates a raster backend blitting from src.
// The backend must be initialized with Begin before use.
func NewBackend(src image.Image) *Backend {
	return &Backend{src: src}
}

// Begin allocates the target. The previous target is reused when the size
// is unchanged.
func (b *Backend) Begin(width, height int) error {
	if b.ctx != nil && b.width == width && b.height == height {
		return nil
	}
	if b.ctx != nil {
		_ = b.ctx.Close()
	}
	b.width = width
	b.height = height
	b.ctx = gg.NewContext(width, height)
	return nil
}

// End finishes the frame.
func (b *Backend) End() error {
	return b.ctx.FlushGPU()
}

// Clear fills the whole target with c.
func (b *Backend) Clear(c color.Color) {
	b.ctx.ClearWithColor(toRGBA(c))
}

// Blit stretches src of the captured image over the whole target with
// nearest-neighbour sampling. The scaled texels are written straight into
// the context's pixel buffer.
func (b *Backend) Blit(src image.Rectangle) {
	if b.src == nil || src.Empty() {
		return
	}
	dst := b.target()
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), b.src, src, xdraw.Src, nil)
}

// StrokeLines strokes every segment as one path.
func (b *Backend) StrokeLines(lines []zoomer.Line, c color.Color, width float64) {
	if len(lines) == 0 {
		return
	}
	b.ctx.Identity()
	b.setColor(c)
	b.ctx.SetLineWidth(width)
	for _, l := range lines {
		b.ctx.DrawLine(l.X0, l.Y0, l.X1, l.Y1)
	}
	if err := b.ctx.Stroke(); err != nil {
		zoomer.Logger().Debug("raster: stroke failed", "lines", len(lines), "error", err)
	}
}

// FillRect fills r with c.
func (b *Backend) FillRect(r zoomer.FRect, c color.Color) {
	b.ctx.Identity()
	b.setColor(c)
	b.ctx.DrawRectangle(r.X, r.Y, r.W, r.H)
	if err := b.ctx.Fill(); err != nil {
		zoomer.Logger().Debug("raster: fill failed", "rect", r, "error", err)
	}
}

// Image returns a copy of the rendered image.
func (b *Backend) Image() image.Image {
	return b.ctx.Image()
}

// SavePNG saves the rendered image as PNG.
func (b *Backend) SavePNG(path string) error {
	return b.ctx.SavePNG(path)
}

// EncodePNG writes the rendered image as PNG to w.
func (b *Backend) EncodePNG(w io.Writer) error {
	return b.ctx.EncodePNG(w)
}

// Width returns the target width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the target height.
func (b *Backend) Height() int {
	return b.height
}

// Close releases the target.
func (b *Backend) Close() error {
	if b.ctx == nil {
		return nil
	}
	err := b.ctx.Close()
	b.ctx = nil
	return err
}

// target wraps the context's pixel buffer as an *image.RGBA sharing its
// memory.
func (b *Backend) target() *image.RGBA {
	pm := b.ctx.ResizeTarget()
	return &image.RGBA{
		Pix:    pm.Data(),
		Stride: 4 * pm.Width(),
		Rect:   image.Rect(0, 0, pm.Width(), pm.Height()),
	}
}

func (b *Backend) setColor(c color.Color) {
	n := toRGBA(c)
	b.ctx.SetRGBA(n.R, n.G, n.B, n.A)
}

// toRGBA converts c to gg's straight-alpha color.
func toRGBA(c color.Color) gg.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return gg.RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}
