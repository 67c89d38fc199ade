package render

import (
	"fmt"
	"image"
	"image/color"
	"sort"
	"sync"

	"github.com/gogpu/zoomer"
)

// Backend is the interface render targets implement. A backend owns the
// captured image it blits from; commands only carry source rectangles.
//
// Begin is called once per frame before any drawing and End once after.
type Backend interface {
	// Begin prepares a target of the given size.
	Begin(width, height int) error

	// Clear fills the whole target with c.
	Clear(c color.Color)

	// Blit stretches src of the captured image over the whole target.
	Blit(src image.Rectangle)

	// StrokeLines strokes each segment with c at the given width.
	StrokeLines(lines []zoomer.Line, c color.Color, width float64)

	// FillRect fills r with c.
	FillRect(r zoomer.FRect, c color.Color)

	// End finishes the frame.
	End() error
}

// BackendFactory creates a backend drawing from the given captured image.
type BackendFactory func(src image.Image) Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register makes a backend available by name. It is typically called from
// init() in the backend package.
//
// Register panics if factory is nil or name is already registered.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("render: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("render: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a backend from the registry. It is a no-op for unknown
// names.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates the backend registered as name, drawing from src.
func NewBackend(name string, src image.Image) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("render: unknown backend %q (forgotten import?)", name)
	}
	return factory(src), nil
}

// Backends returns the sorted names of the registered backends.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend is registered as name.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
