package render

import (
	"image"
	"image/color"

	"github.com/gogpu/zoomer"
)

// Overlay appearance.
const (
	// GridLineWidth is the stroke width of grid lines in target pixels.
	GridLineWidth = 1.0

	// HighlightAlpha is the alpha of the cell highlight fill.
	HighlightAlpha = 70
)

// Background is the clear color behind the capture.
var Background = color.NRGBA{A: 0xff}

// Compose builds the frame for v on a target of w x h pixels. cursor is the
// pointer position in target coordinates, used for the cell highlight.
//
// The dynamic rectangle is stretched over the whole target. The grid
// overlay is laid out in static-rectangle coordinates and scaled to the
// target, which is a no-op when the target is window sized.
func Compose(v *zoomer.Viewport, w, h int, cursor image.Point) *Frame {
	rec := NewRecorder(w, h)
	rec.Clear(Background)
	rec.Blit(v.Dyn().Image())

	if !v.GridEnabled() {
		return rec.Finish()
	}

	stat := v.Stat()
	sx := float64(w) / float64(max(stat.W, 1))
	sy := float64(h) / float64(max(stat.H, 1))

	lines := v.GridLines()
	if sx != 1 || sy != 1 {
		for i := range lines {
			lines[i] = zoomer.Line{
				X0: lines[i].X0 * sx, Y0: lines[i].Y0 * sy,
				X1: lines[i].X1 * sx, Y1: lines[i].Y1 * sy,
			}
		}
	}
	rec.StrokeLines(lines, white(v.GridAlpha()), GridLineWidth)

	if v.Config().HighlightCell {
		p := zoomer.Point{X: int(float64(cursor.X) / sx), Y: int(float64(cursor.Y) / sy)}
		cell := v.CursorCell(p)
		rec.FillRect(zoomer.FRect{
			X: cell.X * sx, Y: cell.Y * sy,
			W: cell.W * sx, H: cell.H * sy,
		}, white(HighlightAlpha))
	}
	return rec.Finish()
}

func white(alpha int) color.NRGBA {
	return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: uint8(alpha)}
}
