package zoomer

import "math"

// progress returns how much of the easing timeline is left at now:
// 1 when an animation just started, 0 once it has finished.
func (v *Viewport) progress(now float64) float64 {
	return clampFloat((v.zoomEnd-now)/v.cfg.ZoomDuration, 0, 1)
}

// animate moves the current extents toward the goal. The ease factor is
// re-applied to the current value every frame, so the approach decays
// exponentially and never overshoots.
func (v *Viewport) animate(now float64) {
	p := v.progress(now)
	ease := math.Sin(1 - p)

	v.current.W += ease * (v.goal.W - v.current.W)
	v.current.H += ease * (v.goal.H - v.current.H)

	if v.hold.phase != p {
		v.hold.locked = false
	}
	v.hold.phase = p
}

// wheelZoom adds delta notches to the zoom goal and restarts the easing
// timeline. A mid-animation call simply retargets the running animation.
func (v *Viewport) wheelZoom(delta, now float64) {
	v.goal.W = clampFloat(v.goal.W+delta*float64(v.stat.W)*v.cfg.ZoomSpeed, 0, zoomLimit(v.stat.W))
	v.goal.H = clampFloat(v.goal.H+delta*float64(v.stat.H)*v.cfg.ZoomSpeed, 0, zoomLimit(v.stat.H))

	v.zoomStart = now
	v.zoomEnd = now + v.cfg.ZoomDuration
}

// zoomLimit is the largest extent that keeps a dimension of size dim
// positive after insetting both sides.
func zoomLimit(dim int) float64 {
	return float64(max(dim/2-zoomMargin, 0))
}
