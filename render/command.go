package render

import (
	"image"
	"image/color"

	"github.com/gogpu/zoomer"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdClear       CommandType = iota // Fill the whole target with a color
	CmdBlit                           // Stretch a capture region over the target
	CmdStrokeLines                    // Stroke a batch of line segments
	CmdFillRect                       // Fill a rectangle
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdClear:       "Clear",
	CmdBlit:        "Blit",
	CmdStrokeLines: "StrokeLines",
	CmdFillRect:    "FillRect",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// ClearCommand fills the whole target with Color.
type ClearCommand struct {
	Color color.NRGBA
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// BlitCommand stretches the Src region of the captured image over the whole
// target with nearest-neighbour sampling.
type BlitCommand struct {
	Src image.Rectangle
}

// Type implements Command.
func (BlitCommand) Type() CommandType { return CmdBlit }

// StrokeLinesCommand strokes every segment in Lines with Color at Width.
type StrokeLinesCommand struct {
	Lines []zoomer.Line
	Color color.NRGBA
	Width float64
}

// Type implements Command.
func (StrokeLinesCommand) Type() CommandType { return CmdStrokeLines }

// FillRectCommand fills Rect with Color, blending over what is below.
type FillRectCommand struct {
	Rect  zoomer.FRect
	Color color.NRGBA
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }
