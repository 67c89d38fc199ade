// Package config loads the magnifier's settings and key bindings from a
// TOML file.
//
// The file is looked up as zoomer/config.toml in the XDG configuration
// directories. A missing file is not an error: the defaults apply.
//
//	zoom_speed = 0.05
//	zoom_time = 0.3
//	drag_button = "right"
//
//	[keys]
//	quit = "Q"
//	grid = "G"
//
//	[[keys.sets]]
//	up = "ArrowUp"
//	down = "ArrowDown"
//	left = "ArrowLeft"
//	right = "ArrowRight"
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"golang.org/x/text/cases"

	"github.com/gogpu/zoomer"
	"github.com/gogpu/zoomer/input"
)

// RelPath is the configuration file path relative to an XDG config
// directory.
const RelPath = "zoomer/config.toml"

var (
	// ErrUnknownKey is returned for a key name ParseKey does not know.
	ErrUnknownKey = errors.New("config: unknown key name")

	// ErrUnknownButton is returned for a drag button other than left,
	// middle or right.
	ErrUnknownButton = errors.New("config: unknown mouse button")
)

// File mirrors the TOML configuration file.
type File struct {
	ZoomSpeed     float64 `toml:"zoom_speed"`
	ZoomTime      float64 `toml:"zoom_time"`
	DragSpeedX    float64 `toml:"drag_speed_x"`
	DragSpeedY    float64 `toml:"drag_speed_y"`
	NavIncrementX float64 `toml:"nav_increment_x"`
	NavIncrementY float64 `toml:"nav_increment_y"`
	GridAlpha     int     `toml:"grid_alpha"`
	DragButton    string  `toml:"drag_button"`
	HighlightCell bool    `toml:"highlight_cell"`
	Keys          Keys    `toml:"keys"`
}

// Keys is the [keys] table. An empty name leaves the action unbound.
type Keys struct {
	Quit string   `toml:"quit"`
	Grid string   `toml:"grid"`
	Alt  string   `toml:"alt"`
	Hold string   `toml:"hold"`
	Sets []KeySet `toml:"sets"`
}

// KeySet is one [[keys.sets]] entry.
type KeySet struct {
	Up    string `toml:"up"`
	Down  string `toml:"down"`
	Left  string `toml:"left"`
	Right string `toml:"right"`
}

// Default returns the file equivalent of zoomer.DefaultConfig and
// input.DefaultBindings.
func Default() *File {
	cfg := zoomer.DefaultConfig()
	b := input.DefaultBindings()

	f := &File{
		ZoomSpeed:     cfg.ZoomSpeed,
		ZoomTime:      cfg.ZoomDuration,
		DragSpeedX:    cfg.DragSpeedX,
		DragSpeedY:    cfg.DragSpeedY,
		NavIncrementX: cfg.NavIncrementX,
		NavIncrementY: cfg.NavIncrementY,
		GridAlpha:     cfg.GridAlpha,
		DragButton:    ButtonName(cfg.DragButton),
		HighlightCell: cfg.HighlightCell,
		Keys: Keys{
			Quit: b.Quit.String(),
			Grid: b.Grid.String(),
			Alt:  b.Alt.String(),
			Hold: b.Hold.String(),
		},
	}
	for _, s := range b.KeySets {
		f.Keys.Sets = append(f.Keys.Sets, KeySet{
			Up:    s.Up.String(),
			Down:  s.Down.String(),
			Left:  s.Left.String(),
			Right: s.Right.String(),
		})
	}
	return f
}

// Decode reads a configuration from r. Settings absent from r keep their
// default values. Key sets are replaced as a whole: a file that lists none
// leaves Sets empty and Bindings falls back to the default sets.
func Decode(r io.Reader) (*File, error) {
	f := Default()
	f.Keys.Sets = nil

	md, err := toml.NewDecoder(r).Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	for _, key := range md.Undecoded() {
		zoomer.Logger().Warn("config: ignoring unknown setting", "key", key.String())
	}
	return f, nil
}

// Load reads the configuration file at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer fh.Close()

	f, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}

// Path returns the location of the configuration file in the XDG config
// directories, or "" if there is none.
func Path() string {
	path, err := xdg.SearchConfigFile(RelPath)
	if err != nil {
		return ""
	}
	return path
}

// LoadDefault loads the configuration from the XDG config directories. It
// returns the defaults and an empty path when no file exists.
func LoadDefault() (*File, string, error) {
	path := Path()
	if path == "" {
		zoomer.Logger().Debug("config: no configuration file, using defaults", "search", RelPath)
		return Default(), "", nil
	}
	f, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return f, path, nil
}

// Encode writes f as TOML to w.
func (f *File) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(f)
}

// Config converts the file into a normalized zoomer.Config. opts are
// applied after the file's settings, so command-line overrides win.
func (f *File) Config(opts ...zoomer.Option) (zoomer.Config, error) {
	button, err := ParseButton(f.DragButton)
	if err != nil {
		return zoomer.Config{}, err
	}
	base := []zoomer.Option{
		zoomer.WithZoomSpeed(f.ZoomSpeed),
		zoomer.WithZoomDuration(f.ZoomTime),
		zoomer.WithDragSpeed(f.DragSpeedX, f.DragSpeedY),
		zoomer.WithNavIncrement(f.NavIncrementX, f.NavIncrementY),
		zoomer.WithGridAlpha(f.GridAlpha),
		zoomer.WithDragButton(button),
		zoomer.WithHighlightCell(f.HighlightCell),
	}
	return zoomer.NewConfig(append(base, opts...)...), nil
}

// Bindings converts the [keys] table into input bindings. A file without
// key sets gets the default arrow and WASD sets.
func (f *File) Bindings() (input.Bindings, error) {
	var b input.Bindings
	fields := []struct {
		name string
		dst  *input.Key
		src  string
	}{
		{"keys.quit", &b.Quit, f.Keys.Quit},
		{"keys.grid", &b.Grid, f.Keys.Grid},
		{"keys.alt", &b.Alt, f.Keys.Alt},
		{"keys.hold", &b.Hold, f.Keys.Hold},
	}
	for _, fl := range fields {
		k, err := parseKey(fl.name, fl.src)
		if err != nil {
			return input.Bindings{}, err
		}
		*fl.dst = k
	}

	sets := f.Keys.Sets
	if len(sets) == 0 {
		zoomer.Logger().Debug("config: no key sets, using defaults")
		return withDefaultSets(b), nil
	}
	for i, s := range sets {
		var ks input.KeySet
		dirs := []struct {
			name string
			dst  *input.Key
			src  string
		}{
			{"up", &ks.Up, s.Up},
			{"down", &ks.Down, s.Down},
			{"left", &ks.Left, s.Left},
			{"right", &ks.Right, s.Right},
		}
		for _, d := range dirs {
			k, err := parseKey(fmt.Sprintf("keys.sets[%d].%s", i, d.name), d.src)
			if err != nil {
				return input.Bindings{}, err
			}
			*d.dst = k
		}
		b.KeySets = append(b.KeySets, ks)
	}
	return b, nil
}

func withDefaultSets(b input.Bindings) input.Bindings {
	b.KeySets = input.DefaultBindings().KeySets
	return b
}

// parseKey resolves a key name for setting. An empty name is unbound.
func parseKey(setting, name string) (input.Key, error) {
	if strings.TrimSpace(name) == "" {
		return input.KeyUnknown, nil
	}
	k, err := input.ParseKey(strings.TrimSpace(name))
	if err != nil {
		return input.KeyUnknown, fmt.Errorf("%w %q for %s", ErrUnknownKey, name, setting)
	}
	return k, nil
}

var buttonNames = map[string]zoomer.Buttons{
	"left":   zoomer.ButtonLeft,
	"middle": zoomer.ButtonMiddle,
	"right":  zoomer.ButtonRight,
}

// ParseButton resolves a mouse button name, case-insensitively.
func ParseButton(name string) (zoomer.Buttons, error) {
	if b, ok := buttonNames[cases.Fold().String(strings.TrimSpace(name))]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownButton, name)
}

// ButtonName returns the configuration name of a single button.
func ButtonName(b zoomer.Buttons) string {
	for name, v := range buttonNames {
		if v == b {
			return name
		}
	}
	return ""
}
