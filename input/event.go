// Package input normalizes raw window events into magnifier commands.
//
// Backends translate their native key codes into [Key] values and push
// [Event]s onto a [Queue]. Once per frame the session pops at most one
// event, samples the pointer into a [Snapshot], and [Bindings.Translate]
// turns the event into zero or more zoomer.Command values.
package input

import (
	"fmt"

	"github.com/gogpu/zoomer"
)

// Kind classifies an Event.
type Kind uint8

const (
	None    Kind = iota // No event this frame
	KeyDown             // Key pressed
	KeyUp               // Key released
	Wheel               // Vertical wheel motion
	Close               // Window close requested
)

var kindNames = [...]string{
	None:    "None",
	KeyDown: "KeyDown",
	KeyUp:   "KeyUp",
	Wheel:   "Wheel",
	Close:   "Close",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Event is one discrete input event. Key is set for KeyDown and KeyUp,
// Wheel holds the notch delta for Wheel events (positive away from the
// user).
type Event struct {
	Kind  Kind
	Key   Key
	Wheel float64
}

func (e Event) String() string {
	switch e.Kind {
	case KeyDown, KeyUp:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Key)
	case Wheel:
		return fmt.Sprintf("Wheel(%g)", e.Wheel)
	default:
		return e.Kind.String()
	}
}

// Snapshot is the input sampled for one frame: the pointer position in
// window coordinates, the held pointer buttons and at most one event.
type Snapshot struct {
	X, Y    int
	Buttons zoomer.Buttons
	Event   Event
}

// Pointer returns the pointer position as a zoomer.Point.
func (s Snapshot) Pointer() zoomer.Point {
	return zoomer.Point{X: s.X, Y: s.Y}
}
