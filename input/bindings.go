package input

import "github.com/gogpu/zoomer"

// KeySet maps the four navigation directions to keys.
type KeySet struct {
	Up, Down, Left, Right Key
}

// ArrowKeys is the arrow-key navigation set.
var ArrowKeys = KeySet{Up: KeyArrowUp, Down: KeyArrowDown, Left: KeyArrowLeft, Right: KeyArrowRight}

// WASDKeys is the WASD navigation set.
var WASDKeys = KeySet{Up: KeyW, Down: KeyS, Left: KeyA, Right: KeyD}

// Bindings maps keys to commands. Several navigation sets may be active at
// once and may overlap.
type Bindings struct {
	KeySets []KeySet
	Quit    Key
	Grid    Key
	Alt     Key
	Hold    Key
}

// DefaultBindings returns arrows plus WASD for navigation, Q to quit, G for
// the grid, left Alt for the wheel modifier and left Shift to hold a row.
func DefaultBindings() Bindings {
	return Bindings{
		KeySets: []KeySet{ArrowKeys, WASDKeys},
		Quit:    KeyQ,
		Grid:    KeyG,
		Alt:     KeyAltLeft,
		Hold:    KeyShiftLeft,
	}
}

// Translate returns the commands ev produces. altHeld redirects wheel motion
// to the grid alpha. A key that matches several bindings produces every
// matching command; unbound input produces none.
func (b *Bindings) Translate(ev Event, altHeld bool) []zoomer.Command {
	switch ev.Kind {
	case Close:
		return []zoomer.Command{{Kind: zoomer.CmdQuit}}
	case Wheel:
		if altHeld {
			return []zoomer.Command{zoomer.WheelGridAlpha(ev.Wheel)}
		}
		return []zoomer.Command{zoomer.WheelZoom(ev.Wheel)}
	case KeyDown:
		if ev.Key == KeyUnknown {
			return nil
		}
		return b.keyDown(ev.Key)
	case KeyUp:
		if ev.Key == KeyUnknown {
			return nil
		}
		return b.keyUp(ev.Key)
	}
	return nil
}

func (b *Bindings) keyDown(k Key) []zoomer.Command {
	var cmds []zoomer.Command
	if k == b.Quit {
		cmds = append(cmds, zoomer.Command{Kind: zoomer.CmdQuit})
	}
	if k == b.Alt {
		cmds = append(cmds, zoomer.Command{Kind: zoomer.CmdAltDown})
	}
	if k == b.Hold {
		cmds = append(cmds, zoomer.Command{Kind: zoomer.CmdHoldDown})
	}
	for _, set := range b.KeySets {
		if k == set.Up {
			cmds = append(cmds, zoomer.Nav(zoomer.DirUp))
		}
		if k == set.Down {
			cmds = append(cmds, zoomer.Nav(zoomer.DirDown))
		}
		if k == set.Left {
			cmds = append(cmds, zoomer.Nav(zoomer.DirLeft))
		}
		if k == set.Right {
			cmds = append(cmds, zoomer.Nav(zoomer.DirRight))
		}
	}
	if d, ok := k.Digit(); ok && d >= 1 {
		cmds = append(cmds, zoomer.SelectMonitor(d-1))
	}
	return cmds
}

func (b *Bindings) keyUp(k Key) []zoomer.Command {
	var cmds []zoomer.Command
	if k == b.Grid {
		cmds = append(cmds, zoomer.Command{Kind: zoomer.CmdToggleGrid})
	}
	if k == b.Alt {
		cmds = append(cmds, zoomer.Command{Kind: zoomer.CmdAltUp})
	}
	if k == b.Hold {
		cmds = append(cmds, zoomer.Command{Kind: zoomer.CmdHoldUp})
	}
	return cmds
}
