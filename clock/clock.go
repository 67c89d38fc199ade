// Package clock measures frame time for the session loop.
//
// A Clock accumulates the elapsed time between ticks of a high-resolution
// counter into a timeline in seconds. The viewport's zoom animation is
// expressed on that timeline.
package clock

import "time"

// Counter is a monotonic tick source.
type Counter interface {
	// Count returns the current tick count.
	Count() uint64

	// Frequency returns the number of ticks per second.
	Frequency() uint64
}

// monotonic counts nanoseconds on Go's monotonic clock since its creation.
type monotonic struct {
	origin time.Time
}

// Monotonic returns a Counter backed by the runtime's monotonic clock.
func Monotonic() Counter {
	return monotonic{origin: time.Now()}
}

func (m monotonic) Count() uint64     { return uint64(time.Since(m.origin)) }
func (m monotonic) Frequency() uint64 { return uint64(time.Second) }

// Clock accumulates counter deltas into seconds.
//
// A Clock is not safe for concurrent use.
type Clock struct {
	counter Counter
	freq    float64
	last    uint64
	now     float64
}

// New returns a Clock reading c, or the monotonic counter if c is nil.
// The timeline starts at zero.
func New(c Counter) *Clock {
	if c == nil {
		c = Monotonic()
	}
	freq := c.Frequency()
	if freq == 0 {
		freq = 1
	}
	return &Clock{
		counter: c,
		freq:    float64(freq),
		last:    c.Count(),
	}
}

// Now returns the accumulated timeline in seconds.
func (c *Clock) Now() float64 { return c.now }

// Tick folds the counter delta since the previous tick into the timeline and
// returns it in seconds. A counter that went backwards contributes nothing.
func (c *Clock) Tick() float64 {
	count := c.counter.Count()
	var dt float64
	if count > c.last {
		dt = float64(count-c.last) / c.freq
	}
	c.last = count
	c.now += dt
	return dt
}
