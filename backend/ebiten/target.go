package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gogpu/zoomer"
	"github.com/gogpu/zoomer/render"
)

// target draws frames onto the ebiten screen, blitting from the uploaded
// capture texture.
type target struct {
	screen *ebiten.Image
	tex    *ebiten.Image
	w, h   int
}

var _ render.Backend = (*target)(nil)

func (t *target) Begin(width, height int) error {
	t.w, t.h = width, height
	return nil
}

func (t *target) End() error { return nil }

func (t *target) Clear(c color.Color) {
	t.screen.Fill(c)
}

// Blit stretches src of the texture over the whole screen with
// nearest-neighbour filtering.
func (t *target) Blit(src image.Rectangle) {
	if src.Empty() {
		return
	}
	sub := t.tex.SubImage(src).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest, DisableMipmaps: true}
	op.GeoM.Scale(float64(t.w)/float64(src.Dx()), float64(t.h)/float64(src.Dy()))
	t.screen.DrawImage(sub, op)
}

func (t *target) StrokeLines(lines []zoomer.Line, c color.Color, width float64) {
	for _, l := range lines {
		vector.StrokeLine(t.screen,
			float32(l.X0), float32(l.Y0), float32(l.X1), float32(l.Y1),
			float32(width), c, false)
	}
}

func (t *target) FillRect(r zoomer.FRect, c color.Color) {
	vector.DrawFilledRect(t.screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}
