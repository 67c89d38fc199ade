// Package ebiten runs a magnifier session in a fullscreen ebiten window.
//
// The capture is uploaded once into a GPU texture. Every tick the game
// collects keyboard, wheel and window-close events into an input queue,
// hands one of them to the session together with the pointer sample, and
// replays the session's frame onto the screen.
package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/zoomer"
	"github.com/gogpu/zoomer/input"
	"github.com/gogpu/zoomer/session"
)

// Options configures the window.
type Options struct {
	// Title is the window title.
	Title string

	// Windowed disables fullscreen, for debugging.
	Windowed bool
}

// Game adapts a session to ebiten.Game.
type Game struct {
	sess   *session.Session
	queue  input.Queue
	tex    *ebiten.Image
	target target
	w, h   int
	keys   []ebiten.Key
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates the ebiten game for sess with a logical screen of w x h
// capture pixels.
func NewGame(sess *session.Session, w, h int) *Game {
	return &Game{sess: sess, w: w, h: h}
}

// Update polls input and advances the session by one frame.
func (g *Game) Update() error {
	g.poll()

	x, y := ebiten.CursorPosition()
	var buttons zoomer.Buttons
	for _, b := range pointerButtons {
		if ebiten.IsMouseButtonPressed(b.button) {
			buttons |= b.mask
		}
	}

	err := g.sess.Update(input.Snapshot{X: x, Y: y, Buttons: buttons, Event: g.queue.Poll()})
	if errors.Is(err, session.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// poll pushes every event observed this tick onto the queue.
func (g *Game) poll() {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if ik, ok := keyMap[k]; ok {
			g.queue.Push(input.Event{Kind: input.KeyDown, Key: ik})
		}
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		if ik, ok := keyMap[k]; ok {
			g.queue.Push(input.Event{Kind: input.KeyUp, Key: ik})
		}
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.queue.Push(input.Event{Kind: input.Wheel, Wheel: dy})
	}
	if ebiten.IsWindowBeingClosed() {
		g.queue.Push(input.Event{Kind: input.Close})
	}
}

// Draw replays the session's frame onto screen. The capture texture is
// uploaded on the first call.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.tex == nil {
		g.tex = ebiten.NewImageFromImage(g.sess.Snapshot().Image())
	}
	g.target.screen = screen
	g.target.tex = g.tex
	if err := g.sess.Frame().Playback(&g.target); err != nil {
		zoomer.Logger().Warn("ebiten: frame playback failed", "error", err)
	}
}

// Layout fixes the logical screen to the window size in capture pixels.
func (g *Game) Layout(int, int) (int, int) {
	return g.w, g.h
}

// Close releases the capture texture.
func (g *Game) Close() {
	if g.tex != nil {
		g.tex.Deallocate()
		g.tex = nil
	}
}

// Run opens the window and drives sess until the user quits. A window or
// graphics failure is reported as a *zoomer.InitError.
func Run(sess *session.Session, w, h int, opts Options) error {
	if opts.Title == "" {
		opts.Title = "zoomer"
	}
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetFullscreen(!opts.Windowed)
	ebiten.SetWindowClosingHandled(true)

	g := NewGame(sess, w, h)
	defer g.Close()

	zoomer.Logger().Info("ebiten: opening window", "width", w, "height", h, "fullscreen", !opts.Windowed)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return zoomer.NewInitError("window", err)
	}
	return nil
}
