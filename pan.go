package zoomer

// nudge moves the static rectangle one fixed step for a navigation key:
// Up subtracts from y, Down adds to y, Left adds to x, Right subtracts
// from x. The result is clamped by the next Step.
func (v *Viewport) nudge(d Direction) {
	switch d {
	case DirUp:
		v.stat.Y = shiftAxis(v.stat.Y, 1, v.cfg.NavIncrementY)
	case DirDown:
		v.stat.Y = shiftAxis(v.stat.Y, -1, v.cfg.NavIncrementY)
	case DirLeft:
		v.stat.X = shiftAxis(v.stat.X, -1, v.cfg.NavIncrementX)
	case DirRight:
		v.stat.X = shiftAxis(v.stat.X, 1, v.cfg.NavIncrementX)
	}
}

// drag pans by the pointer motion since the previous frame. Dragging always
// releases the row lock.
func (v *Viewport) drag(pointer Point) {
	v.stat.X = shiftAxis(v.stat.X, pointer.X-v.anchor.X, v.cfg.DragSpeedX)
	v.stat.Y = shiftAxis(v.stat.Y, pointer.Y-v.anchor.Y, v.cfg.DragSpeedY)
	v.hold.locked = false
}

// shiftAxis returns axis - delta*speed truncated toward zero.
func shiftAxis(axis, delta int, speed float64) int {
	return int(float64(axis) - float64(delta)*speed)
}
