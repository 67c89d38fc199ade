// Package render turns viewport state into drawing commands.
//
// A frame is built by [Compose] as a list of typed commands: clear the
// target, blit the dynamic rectangle of the capture stretched over the whole
// target, then draw the grid overlay. The resulting [Frame] can be inspected
// directly or replayed to any [Backend]:
//
//	frame := render.Compose(v, w, h, cursor)
//	if err := frame.Playback(backend); err != nil {
//		return err
//	}
//
// Backends register themselves by name, following the database/sql driver
// pattern:
//
//	import _ "github.com/gogpu/zoomer/render/raster"
//
//	b, err := render.NewBackend("raster")
package render
