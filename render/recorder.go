package render

import (
	"image"
	"image/color"

	"github.com/gogpu/zoomer"
)

// Recorder collects the commands of one frame.
type Recorder struct {
	width, height int
	commands      []Command
}

// NewRecorder creates a recorder for a target of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

// Clear records a ClearCommand.
func (r *Recorder) Clear(c color.NRGBA) {
	r.commands = append(r.commands, ClearCommand{Color: c})
}

// Blit records a BlitCommand.
func (r *Recorder) Blit(src image.Rectangle) {
	r.commands = append(r.commands, BlitCommand{Src: src})
}

// StrokeLines records a StrokeLinesCommand. Empty batches are dropped.
func (r *Recorder) StrokeLines(lines []zoomer.Line, c color.NRGBA, width float64) {
	if len(lines) == 0 {
		return
	}
	r.commands = append(r.commands, StrokeLinesCommand{Lines: lines, Color: c, Width: width})
}

// FillRect records a FillRectCommand.
func (r *Recorder) FillRect(rect zoomer.FRect, c color.NRGBA) {
	r.commands = append(r.commands, FillRectCommand{Rect: rect, Color: c})
}

// Finish returns the recorded frame. The Recorder should not be used
// afterwards.
func (r *Recorder) Finish() *Frame {
	return &Frame{width: r.width, height: r.height, commands: r.commands}
}

// Frame is an immutable list of drawing commands for one target size.
type Frame struct {
	width, height int
	commands      []Command
}

// Width returns the target width.
func (f *Frame) Width() int { return f.width }

// Height returns the target height.
func (f *Frame) Height() int { return f.height }

// Commands returns the recorded commands.
func (f *Frame) Commands() []Command { return f.commands }

// Playback replays the frame to backend.
func (f *Frame) Playback(backend Backend) error {
	if err := backend.Begin(f.width, f.height); err != nil {
		return err
	}

	for _, cmd := range f.commands {
		switch c := cmd.(type) {
		case ClearCommand:
			backend.Clear(c.Color)
		case BlitCommand:
			backend.Blit(c.Src)
		case StrokeLinesCommand:
			backend.StrokeLines(c.Lines, c.Color, c.Width)
		case FillRectCommand:
			backend.FillRect(c.Rect, c.Color)
		}
	}

	return backend.End()
}
