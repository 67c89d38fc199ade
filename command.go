package zoomer

import "fmt"

// CommandKind identifies a normalized user command.
type CommandKind uint8

const (
	CmdNone           CommandKind = iota // Nothing to do
	CmdQuit                              // End the session
	CmdToggleGrid                        // Show or hide the grid overlay
	CmdAltDown                           // Modifier pressed: wheel adjusts grid alpha
	CmdAltUp                             // Modifier released
	CmdNav                               // Fixed-size pan step
	CmdSelectMonitor                     // Jump to a monitor's bounds
	CmdWheelZoom                         // Change the zoom goal
	CmdWheelGridAlpha                    // Change the grid alpha
	CmdHoldDown                          // Lock the highlighted grid row
	CmdHoldUp                            // Release the row lock
)

var commandKindNames = [...]string{
	CmdNone:           "None",
	CmdQuit:           "Quit",
	CmdToggleGrid:     "ToggleGrid",
	CmdAltDown:        "AltDown",
	CmdAltUp:          "AltUp",
	CmdNav:            "Nav",
	CmdSelectMonitor:  "SelectMonitor",
	CmdWheelZoom:      "WheelZoom",
	CmdWheelGridAlpha: "WheelGridAlpha",
	CmdHoldDown:       "HoldDown",
	CmdHoldUp:         "HoldUp",
}

// String returns the string representation of a CommandKind.
func (k CommandKind) String() string {
	if int(k) < len(commandKindNames) {
		return commandKindNames[k]
	}
	return "Unknown"
}

// Direction is a logical navigation direction.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

var directionNames = [...]string{
	DirUp:    "Up",
	DirDown:  "Down",
	DirLeft:  "Left",
	DirRight: "Right",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "Unknown"
}

// Command is one normalized input command. Only the fields relevant to
// Kind are meaningful: Dir for CmdNav, Index for CmdSelectMonitor and
// Delta for the wheel commands.
type Command struct {
	Kind  CommandKind
	Dir   Direction
	Index int
	Delta float64
}

// Nav returns a navigation command for d.
func Nav(d Direction) Command { return Command{Kind: CmdNav, Dir: d} }

// SelectMonitor returns a command selecting the monitor at index i.
func SelectMonitor(i int) Command { return Command{Kind: CmdSelectMonitor, Index: i} }

// WheelZoom returns a zoom command for delta wheel notches.
func WheelZoom(delta float64) Command { return Command{Kind: CmdWheelZoom, Delta: delta} }

// WheelGridAlpha returns a grid-alpha command for delta wheel notches.
func WheelGridAlpha(delta float64) Command { return Command{Kind: CmdWheelGridAlpha, Delta: delta} }

func (c Command) String() string {
	switch c.Kind {
	case CmdNav:
		return fmt.Sprintf("Nav(%s)", c.Dir)
	case CmdSelectMonitor:
		return fmt.Sprintf("SelectMonitor(%d)", c.Index)
	case CmdWheelZoom, CmdWheelGridAlpha:
		return fmt.Sprintf("%s(%g)", c.Kind, c.Delta)
	default:
		return c.Kind.String()
	}
}

// Buttons is a pointer button bitmask.
type Buttons uint8

const (
	ButtonLeft Buttons = 1 << iota
	ButtonMiddle
	ButtonRight
)

// Has reports whether every button in b is held in s.
func (s Buttons) Has(b Buttons) bool {
	return b != 0 && s&b == b
}
