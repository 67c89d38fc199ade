package capture

import (
	"fmt"
	"image"
	"os"

	// Still-image formats accepted by Load.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/zoomer"
)

// Load decodes the still image at path. PNG, JPEG, GIF, BMP, TIFF and WebP
// are supported. The image is treated as a single display.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("capture: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("capture: decode %s: %w", path, err)
	}

	b := img.Bounds()
	zoomer.Logger().Info("capture: loaded image",
		"path", path, "format", format, "width", b.Dx(), "height", b.Dy())
	return FromImage(img, nil), nil
}
