package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	count uint64
	freq  uint64
}

func (f *fakeCounter) Count() uint64     { return f.count }
func (f *fakeCounter) Frequency() uint64 { return f.freq }

func TestClockAccumulates(t *testing.T) {
	fc := &fakeCounter{count: 5000, freq: 1000}
	c := New(fc)
	require.Equal(t, 0.0, c.Now())

	fc.count += 250
	assert.InDelta(t, 0.25, c.Tick(), 1e-12)
	assert.InDelta(t, 0.25, c.Now(), 1e-12)

	fc.count += 500
	assert.InDelta(t, 0.5, c.Tick(), 1e-12)
	assert.InDelta(t, 0.75, c.Now(), 1e-12)
}

func TestClockIdleTick(t *testing.T) {
	fc := &fakeCounter{count: 10, freq: 60}
	c := New(fc)

	assert.Equal(t, 0.0, c.Tick())
	assert.Equal(t, 0.0, c.Now())
}

func TestClockNonDecreasing(t *testing.T) {
	fc := &fakeCounter{count: 100, freq: 10}
	c := New(fc)

	fc.count = 120
	c.Tick()
	fc.count = 110
	assert.Equal(t, 0.0, c.Tick())
	assert.InDelta(t, 2.0, c.Now(), 1e-12)

	fc.count = 130
	assert.InDelta(t, 2.0, c.Tick(), 1e-12)
	assert.InDelta(t, 4.0, c.Now(), 1e-12)
}

func TestClockZeroFrequency(t *testing.T) {
	fc := &fakeCounter{count: 0, freq: 0}
	c := New(fc)
	fc.count = 3
	assert.Equal(t, 3.0, c.Tick())
}

func TestMonotonicCounter(t *testing.T) {
	m := Monotonic()
	assert.Equal(t, uint64(time.Second), m.Frequency())

	a := m.Count()
	time.Sleep(time.Millisecond)
	assert.Greater(t, m.Count(), a)
}

func TestNewDefaultsToMonotonic(t *testing.T) {
	c := New(nil)
	time.Sleep(time.Millisecond)
	assert.Positive(t, c.Tick())
}
