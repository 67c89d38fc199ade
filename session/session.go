// Package session runs the per-frame loop of a magnifier session.
//
// A Session owns the captured image, the viewport and the frame clock. The
// windowing backend calls Update once per frame with the sampled input and
// Frame to obtain the drawing commands for that frame.
package session

import (
	"errors"
	"image"

	"github.com/gogpu/zoomer"
	"github.com/gogpu/zoomer/capture"
	"github.com/gogpu/zoomer/clock"
	"github.com/gogpu/zoomer/input"
	"github.com/gogpu/zoomer/render"
)

// ErrQuit is returned by Update once the user asked to quit.
var ErrQuit = errors.New("session: quit")

// Session is one magnifier run over a captured image.
//
// A Session is not safe for concurrent use; the backend drives it from a
// single goroutine.
type Session struct {
	snap     *capture.Snapshot
	bindings input.Bindings
	view     *zoomer.Viewport
	clock    *clock.Clock

	pointer zoomer.Point
	quit    bool
}

type options struct {
	counter clock.Counter
	monitor int
}

// Option configures a Session.
type Option func(*options)

// WithCounter sets the tick source of the frame clock. The default is the
// runtime's monotonic clock.
func WithCounter(c clock.Counter) Option {
	return func(o *options) {
		o.counter = c
	}
}

// WithMonitor places the initial view on display i. Out-of-range indexes
// fall back to the first display.
func WithMonitor(i int) Option {
	return func(o *options) {
		o.monitor = i
	}
}

// New creates a session over snap with a window of windowW x windowH
// pixels. cfg is shared by reference and must not be modified afterwards.
func New(snap *capture.Snapshot, cfg *zoomer.Config, bindings input.Bindings, windowW, windowH int, opts ...Option) *Session {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	start := snap.Display(o.monitor)
	view := zoomer.Rect{X: start.Min.X, Y: start.Min.Y, W: windowW, H: windowH}

	zoomer.Logger().Info("session: started",
		"image", image.Pt(snap.Width, snap.Height),
		"window", image.Pt(windowW, windowH),
		"monitor", o.monitor)

	return &Session{
		snap:     snap,
		bindings: bindings,
		view:     zoomer.NewViewport(cfg, snap.Width, snap.Height, view, snap.DisplayRects()),
		clock:    clock.New(o.counter),
	}
}

// Update runs one frame: the frame's event is translated into commands and
// dispatched, then the viewport steps with the pointer sample and the clock
// advances. A quit request is honoured at the start of the next frame, so
// the frame that saw it still completes.
func (s *Session) Update(in input.Snapshot) error {
	if s.quit {
		return ErrQuit
	}

	now := s.clock.Now()
	log := zoomer.Logger()
	for _, cmd := range s.bindings.Translate(in.Event, s.view.AltHeld()) {
		log.Debug("session: command", "cmd", cmd.String(), "now", now)
		if cmd.Kind == zoomer.CmdQuit {
			s.quit = true
			continue
		}
		s.view.Dispatch(cmd, now)
	}

	s.pointer = in.Pointer()
	s.view.Step(now, s.pointer, in.Buttons)
	s.clock.Tick()
	return nil
}

// Frame composes the drawing commands for the current state.
func (s *Session) Frame() *render.Frame {
	w, h := s.view.WindowSize()
	return render.Compose(s.view, w, h, image.Pt(s.pointer.X, s.pointer.Y))
}

// Viewport returns the session's viewport.
func (s *Session) Viewport() *zoomer.Viewport { return s.view }

// Snapshot returns the captured image.
func (s *Session) Snapshot() *capture.Snapshot { return s.snap }

// Now returns the session timeline in seconds.
func (s *Session) Now() float64 { return s.clock.Now() }

// Quitting reports whether a quit request is pending.
func (s *Session) Quitting() bool { return s.quit }
