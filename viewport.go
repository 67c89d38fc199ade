package zoomer

import "math"

// Viewport is the interaction state of one magnifier session: the static
// rectangle the user pans, the animated zoom extents, drag and modifier
// state, and the grid overlay settings.
//
// A Viewport is owned by the frame loop and is not safe for concurrent use.
type Viewport struct {
	cfg *Config

	imageW, imageH   int
	windowW, windowH int
	displays         []Rect

	stat      Rect
	goal      Extent
	current   Extent
	zoomStart float64
	zoomEnd   float64

	anchor    Point
	hasAnchor bool

	alt       bool
	grid      bool
	gridAlpha int

	hold    rowLock
	holdReq holdRequest
}

// rowLock freezes the highlighted grid row while the hold key is down.
// It is invalidated whenever the zoom easing phase changes.
type rowLock struct {
	y      float64
	locked bool
	phase  float64
}

type holdRequest uint8

const (
	holdNone holdRequest = iota
	holdPress
	holdRelease
)

// NewViewport creates the state for a session over an image of
// imageW x imageH pixels. view is the initial static rectangle, normally the
// window size placed on the start monitor; its size is also used as the
// window size for monitor selection. displays lists every monitor's bounds
// in capture-space coordinates.
func NewViewport(cfg *Config, imageW, imageH int, view Rect, displays []Rect) *Viewport {
	v := &Viewport{
		cfg:       cfg,
		imageW:    imageW,
		imageH:    imageH,
		windowW:   view.W,
		windowH:   view.H,
		displays:  append([]Rect(nil), displays...),
		stat:      view,
		gridAlpha: clampInt(cfg.GridAlpha, MinGridAlpha, MaxGridAlpha),
		hold:      rowLock{phase: math.NaN()},
	}
	v.clamp()
	return v
}

// Dispatch applies one command at timeline position now. CmdQuit and
// CmdNone are not state changes and are ignored here.
func (v *Viewport) Dispatch(cmd Command, now float64) {
	switch cmd.Kind {
	case CmdToggleGrid:
		v.grid = !v.grid
	case CmdAltDown:
		v.alt = true
	case CmdAltUp:
		v.alt = false
	case CmdNav:
		v.nudge(cmd.Dir)
	case CmdSelectMonitor:
		v.selectMonitor(cmd.Index)
	case CmdWheelZoom:
		v.wheelZoom(cmd.Delta, now)
	case CmdWheelGridAlpha:
		v.wheelGridAlpha(cmd.Delta)
	case CmdHoldDown:
		v.holdReq = holdPress
	case CmdHoldUp:
		v.holdReq = holdRelease
	}
}

// Step advances the viewport by one frame: the zoom extents ease toward
// their goal, the drag button pans the view, and the static rectangle is
// clamped to the image. pointer and buttons are this frame's pointer
// sample; the sample becomes the drag anchor for the next frame.
func (v *Viewport) Step(now float64, pointer Point, buttons Buttons) {
	v.animate(now)
	if buttons.Has(v.cfg.DragButton) && v.hasAnchor {
		v.drag(pointer)
	}
	v.clamp()
	v.applyHold(pointer)
	v.anchor = pointer
	v.hasAnchor = true
}

// Stat returns the static rectangle.
func (v *Viewport) Stat() Rect { return v.stat }

// Goal returns the zoom extents the animation is heading to.
func (v *Viewport) Goal() Extent { return v.goal }

// Current returns the zoom extents applied this frame.
func (v *Viewport) Current() Extent { return v.current }

// ZoomTimeline returns the start and end of the current easing animation.
func (v *Viewport) ZoomTimeline() (start, end float64) { return v.zoomStart, v.zoomEnd }

// Anchor returns the previous pointer sample, if any.
func (v *Viewport) Anchor() (Point, bool) { return v.anchor, v.hasAnchor }

// AltHeld reports whether the modifier that redirects the wheel to the grid
// alpha is down.
func (v *Viewport) AltHeld() bool { return v.alt }

// GridEnabled reports whether the grid overlay is shown.
func (v *Viewport) GridEnabled() bool { return v.grid }

// GridAlpha returns the grid line alpha in [MinGridAlpha, MaxGridAlpha].
func (v *Viewport) GridAlpha() int { return v.gridAlpha }

// HeldRow returns the locked grid row, if any.
func (v *Viewport) HeldRow() (float64, bool) { return v.hold.y, v.hold.locked }

// ImageSize returns the captured image dimensions.
func (v *Viewport) ImageSize() (w, h int) { return v.imageW, v.imageH }

// WindowSize returns the render target dimensions.
func (v *Viewport) WindowSize() (w, h int) { return v.windowW, v.windowH }

// Displays returns the number of selectable monitors.
func (v *Viewport) Displays() int { return len(v.displays) }

// Config returns the session configuration.
func (v *Viewport) Config() *Config { return v.cfg }
