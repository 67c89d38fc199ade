package zoomer

import "math"

// CellSize returns the footprint of one sampled image pixel on the render
// target: the ratio of the static to the dynamic rectangle.
func (v *Viewport) CellSize() (cw, ch float64) {
	dyn := v.Dyn()
	if dyn.W <= 0 || dyn.H <= 0 {
		return 1, 1
	}
	return float64(v.stat.W) / float64(dyn.W), float64(v.stat.H) / float64(dyn.H)
}

// GridLines returns the overlay lines, vertical lines first. It returns nil
// when the grid is disabled.
func (v *Viewport) GridLines() []Line {
	if !v.grid {
		return nil
	}
	cw, ch := v.CellSize()
	w, h := float64(v.stat.W), float64(v.stat.H)

	nx := v.stat.W / int(cw)
	ny := v.stat.H / int(ch)
	lines := make([]Line, 0, max(nx-1, 0)+max(ny-1, 0))
	for i := 1; i < nx; i++ {
		x := float64(i) * cw
		lines = append(lines, Line{X0: x, Y0: 0, X1: x, Y1: h})
	}
	for i := 1; i < ny; i++ {
		y := float64(i) * ch
		lines = append(lines, Line{X0: 0, Y0: y, X1: w, Y1: y})
	}
	return lines
}

// CursorCell returns the grid cell under pointer. While a row is held the
// cell stays on that row.
func (v *Viewport) CursorCell(pointer Point) FRect {
	cw, ch := v.CellSize()
	cell := FRect{
		X: nearestMultiple(float64(pointer.X), cw),
		Y: nearestMultiple(float64(pointer.Y), ch),
		W: cw,
		H: ch,
	}
	if v.hold.locked {
		cell.Y = v.hold.y
	}
	return cell
}

// applyHold resolves a pending hold press or release against this frame's
// geometry.
func (v *Viewport) applyHold(pointer Point) {
	switch v.holdReq {
	case holdPress:
		if !v.hold.locked {
			v.hold.y = v.CursorCell(pointer).Y
			v.hold.locked = true
		}
	case holdRelease:
		v.hold.locked = false
	}
	v.holdReq = holdNone
}

func (v *Viewport) wheelGridAlpha(delta float64) {
	step := int(math.Round(delta * GridAlphaStep))
	v.gridAlpha = clampInt(v.gridAlpha+step, MinGridAlpha, MaxGridAlpha)
}

func nearestMultiple(x, m float64) float64 {
	return m * math.Floor(x/m)
}
