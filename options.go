package zoomer

// Configuration bounds.
const (
	// MinGridAlpha and MaxGridAlpha bound the grid line alpha.
	MinGridAlpha = 10
	MaxGridAlpha = 120

	// GridAlphaStep is the alpha change per wheel notch.
	GridAlphaStep = 10

	// MinZoomDuration keeps the easing timeline well defined when a zero or
	// negative duration is configured.
	MinZoomDuration = 1e-3

	// zoomMargin keeps the dynamic rectangle at least a few pixels wide.
	zoomMargin = 3
)

// Config holds the tunables of a session. It is built once at start-up and
// shared by reference; nothing mutates it afterwards.
type Config struct {
	// ZoomSpeed is the fraction of the view size added to the zoom goal per
	// wheel notch.
	ZoomSpeed float64

	// ZoomDuration is the length of the easing timeline in seconds.
	ZoomDuration float64

	// DragSpeedX and DragSpeedY scale pointer motion while dragging.
	DragSpeedX float64
	DragSpeedY float64

	// NavIncrementX and NavIncrementY are the key nudge step sizes.
	NavIncrementX float64
	NavIncrementY float64

	// GridAlpha is the initial grid line alpha.
	GridAlpha int

	// DragButton is the pointer button that pans the view.
	DragButton Buttons

	// HighlightCell fills the grid cell under the pointer.
	HighlightCell bool
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		ZoomSpeed:     0.05,
		ZoomDuration:  0.3,
		DragSpeedX:    1.0,
		DragSpeedY:    1.0,
		NavIncrementX: 50,
		NavIncrementY: 50,
		GridAlpha:     30,
		DragButton:    ButtonRight,
	}
}

// Option configures a Config.
//
// Example:
//
//	cfg := zoomer.NewConfig(
//	    zoomer.WithZoomDuration(0.5),
//	    zoomer.WithDragButton(zoomer.ButtonLeft),
//	)
type Option func(*Config)

// NewConfig returns DefaultConfig with opts applied and normalized.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.Normalize()
}

// WithZoomSpeed sets the per-notch zoom fraction.
func WithZoomSpeed(speed float64) Option {
	return func(c *Config) {
		c.ZoomSpeed = speed
	}
}

// WithZoomDuration sets the zoom easing duration in seconds.
func WithZoomDuration(seconds float64) Option {
	return func(c *Config) {
		c.ZoomDuration = seconds
	}
}

// WithDragSpeed sets the per-axis drag multipliers.
func WithDragSpeed(x, y float64) Option {
	return func(c *Config) {
		c.DragSpeedX = x
		c.DragSpeedY = y
	}
}

// WithNavIncrement sets the per-axis key nudge step.
func WithNavIncrement(x, y float64) Option {
	return func(c *Config) {
		c.NavIncrementX = x
		c.NavIncrementY = y
	}
}

// WithGridAlpha sets the initial grid alpha.
func WithGridAlpha(alpha int) Option {
	return func(c *Config) {
		c.GridAlpha = alpha
	}
}

// WithDragButton selects the pointer button used for dragging.
func WithDragButton(b Buttons) Option {
	return func(c *Config) {
		c.DragButton = b
	}
}

// WithHighlightCell enables the pointer cell highlight on the grid.
func WithHighlightCell(on bool) Option {
	return func(c *Config) {
		c.HighlightCell = on
	}
}

// Normalize returns c with out-of-range values clamped. Clamping is never
// reported as an error.
func (c Config) Normalize() Config {
	log := Logger()
	if c.ZoomDuration < MinZoomDuration {
		log.Debug("zoomer: zoom duration clamped", "value", c.ZoomDuration, "min", MinZoomDuration)
		c.ZoomDuration = MinZoomDuration
	}
	if c.ZoomSpeed < 0 {
		log.Debug("zoomer: zoom speed clamped", "value", c.ZoomSpeed)
		c.ZoomSpeed = 0
	}
	if c.GridAlpha < MinGridAlpha || c.GridAlpha > MaxGridAlpha {
		log.Debug("zoomer: grid alpha clamped", "value", c.GridAlpha)
		c.GridAlpha = clampInt(c.GridAlpha, MinGridAlpha, MaxGridAlpha)
	}
	if c.DragButton == 0 {
		c.DragButton = ButtonRight
	}
	return c
}
