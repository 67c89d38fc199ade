package capture

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"

	"github.com/gogpu/zoomer"
)

// Grab captures the whole virtual desktop: the union of every active
// display's bounds.
func Grab() (*Snapshot, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return nil, ErrNoDisplays
	}

	bounds := make([]image.Rectangle, n)
	for i := range n {
		bounds[i] = screenshot.GetDisplayBounds(i)
	}
	union, local := layout(bounds)

	img, err := screenshot.CaptureRect(union)
	if err != nil {
		return nil, fmt.Errorf("capture: capture %v: %w", union, err)
	}

	zoomer.Logger().Info("capture: grabbed desktop",
		"width", union.Dx(), "height", union.Dy(), "displays", n)
	return FromImage(img, local), nil
}
