// Package zoomer is the viewport engine of an interactive screen magnifier.
//
// # Overview
//
// A session captures one still image of the whole virtual desktop and lets
// the user pan and zoom over it. This package holds the pure interaction
// state: a [Viewport] advanced once per frame from elapsed time, fed with
// [Command] values produced by the input layer.
//
// # Geometry
//
// The static rectangle (Stat) is the window-sized region of the capture the
// user has panned to. Zooming insets it on every side by the current
// [Extent], giving the dynamic rectangle (Dyn) that is stretched over the
// whole window:
//
//	dyn = stat inset by round(current.W), round(current.H)
//
// The zoom extents ease toward a goal set by the mouse wheel:
//
//	progress = clamp((zoomEnd - now) / duration, 0, 1)
//	current += sin(1 - progress) * (goal - current)
//
// # Frame Loop
//
//	v := zoomer.NewViewport(&cfg, img.W, img.H, view, displays)
//	for {
//		for _, cmd := range bindings.Translate(ev, v.AltHeld()) {
//			v.Dispatch(cmd, now)
//		}
//		v.Step(now, pointer, buttons)
//		frame := render.Compose(v, w, h, cursor)
//		...
//	}
//
// The session package wires these pieces to a clock, an input queue and a
// render backend.
//
// # Logging
//
// The package is silent by default. Install a logger with [SetLogger] to see
// debug diagnostics such as ignored monitor selections and clamped
// configuration values.
package zoomer
