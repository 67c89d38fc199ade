package zoomer

// insets returns the current zoom extents in whole pixels.
func (v *Viewport) insets() (zw, zh int) {
	return v.current.Pixels()
}

// clamp keeps the static rectangle inside the image, allowing it to hang
// over each edge by the current zoom inset. When the image is smaller than
// the view the lower bound wins.
func (v *Viewport) clamp() {
	zw, zh := v.insets()
	v.stat.X = max(-zw, min(v.stat.X, v.imageW-v.stat.W+zw))
	v.stat.Y = max(-zh, min(v.stat.Y, v.imageH-v.stat.H+zh))
}

// Dyn returns the dynamic rectangle: the static rectangle inset by the
// current zoom extents. It is the region of the capture that is stretched
// over the render target.
func (v *Viewport) Dyn() Rect {
	zw, zh := v.insets()
	return v.stat.Inset(zw, zh)
}

// selectMonitor moves the view to display i and resets the zoom. The view
// keeps the window's size, not the monitor's. Out-of-range indexes are
// ignored.
func (v *Viewport) selectMonitor(i int) {
	if i < 0 || i >= len(v.displays) {
		Logger().Debug("zoomer: monitor selection ignored", "index", i, "displays", len(v.displays))
		return
	}
	d := v.displays[i]
	v.stat = Rect{X: d.X, Y: d.Y, W: v.windowW, H: v.windowH}
	v.goal = Extent{}
	v.current = Extent{}
	v.clamp()
}
