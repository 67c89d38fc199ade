package zoomer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60

func newTestViewport(t *testing.T, imageW, imageH int, view Rect, opts ...Option) *Viewport {
	t.Helper()
	cfg := NewConfig(opts...)
	return NewViewport(&cfg, imageW, imageH, view, nil)
}

// settle steps v with no input until the easing timeline is long over.
func settle(v *Viewport, now float64) float64 {
	for range 240 {
		v.Step(now, Point{}, 0)
		now += frame
	}
	return now
}

func TestNewViewport(t *testing.T) {
	v := newTestViewport(t, 3840, 1080, Rect{W: 1920, H: 1080})

	assert.Equal(t, Rect{W: 1920, H: 1080}, v.Stat())
	assert.Equal(t, Rect{W: 1920, H: 1080}, v.Dyn())
	assert.Equal(t, Extent{}, v.Goal())
	assert.Equal(t, Extent{}, v.Current())
	assert.Equal(t, 30, v.GridAlpha())
	assert.False(t, v.GridEnabled())
	assert.False(t, v.AltHeld())

	_, ok := v.Anchor()
	assert.False(t, ok, "no anchor before the first frame")
	_, locked := v.HeldRow()
	assert.False(t, locked)

	w, h := v.ImageSize()
	assert.Equal(t, 3840, w)
	assert.Equal(t, 1080, h)
}

func TestNewViewportClampsInitialView(t *testing.T) {
	v := newTestViewport(t, 1920, 1080, Rect{X: 2561, Y: 0, W: 1920, H: 1080})
	assert.Equal(t, 0, v.Stat().X)
}

func TestWheelZoomScenario(t *testing.T) {
	v := newTestViewport(t, 3840, 1080, Rect{W: 1920, H: 1080})

	v.Dispatch(WheelZoom(1), 0)
	assert.InDelta(t, 96, v.Goal().W, 1e-9)
	assert.InDelta(t, 54, v.Goal().H, 1e-9)

	start, end := v.ZoomTimeline()
	assert.Equal(t, 0.0, start)
	assert.InDelta(t, 0.3, end, 1e-12)

	settle(v, 0)

	assert.InDelta(t, 96, v.Current().W, 1e-6)
	assert.Equal(t, 1728, v.Dyn().W)
	assert.Equal(t, 972, v.Dyn().H)
	assert.Equal(t, v.Stat().X+96, v.Dyn().X)
}

func TestZoomFirstFrameHasNoMotion(t *testing.T) {
	v := newTestViewport(t, 3840, 1080, Rect{W: 1920, H: 1080})

	v.Dispatch(WheelZoom(1), 2)
	v.Step(2, Point{}, 0)

	assert.Equal(t, Extent{}, v.Current(), "ease is sin(0) when the animation just started")
}

func TestZoomGoalBounds(t *testing.T) {
	v := newTestViewport(t, 3840, 2160, Rect{W: 1920, H: 1080})

	for range 100 {
		v.Dispatch(WheelZoom(3), 0)
	}
	assert.Equal(t, 957.0, v.Goal().W)
	assert.Equal(t, 537.0, v.Goal().H)

	for range 100 {
		v.Dispatch(WheelZoom(-3), 0)
	}
	assert.Equal(t, Extent{}, v.Goal())
}

func TestZoomRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	v := newTestViewport(t, 2560, 1440, Rect{W: 1280, H: 720})
	limitW, limitH := zoomLimit(1280), zoomLimit(720)

	now := 0.0
	for range 2000 {
		if rng.Intn(3) == 0 {
			v.Dispatch(WheelZoom(float64(rng.Intn(21)-10)), now)
		}
		v.Step(now, Point{X: rng.Intn(1280), Y: rng.Intn(720)}, 0)
		now += rng.Float64() * 0.05

		g, c, dyn := v.Goal(), v.Current(), v.Dyn()
		require.True(t, g.W >= 0 && g.W <= limitW, "goal.W = %v", g.W)
		require.True(t, g.H >= 0 && g.H <= limitH, "goal.H = %v", g.H)
		require.True(t, c.W >= 0 && c.W <= limitW, "current.W = %v", c.W)
		require.True(t, c.H >= 0 && c.H <= limitH, "current.H = %v", c.H)
		require.Positive(t, dyn.W)
		require.Positive(t, dyn.H)
	}
}

func TestZoomMidAnimationRetarget(t *testing.T) {
	v := newTestViewport(t, 3840, 1080, Rect{W: 1920, H: 1080})

	v.Dispatch(WheelZoom(2), 0)
	for now := 0.0; now < 0.15; now += frame {
		v.Step(now, Point{}, 0)
	}
	mid := v.Current().W
	require.Positive(t, mid)

	v.Dispatch(WheelZoom(-2), 0.15)
	assert.Equal(t, 0.0, v.Goal().W)
	_, end := v.ZoomTimeline()
	assert.InDelta(t, 0.45, end, 1e-12)

	settle(v, 0.15)
	assert.InDelta(t, 0, v.Current().W, 1e-6)
}

func TestIdleFramesAreIdempotent(t *testing.T) {
	v := newTestViewport(t, 3840, 2160, Rect{X: 400, Y: 300, W: 1920, H: 1080})
	v.Dispatch(WheelZoom(2), 0)
	stat := v.Stat()

	prev := v.Current().W
	now := 0.0
	for range 120 {
		v.Step(now, Point{X: 10, Y: 10}, 0)
		now += frame

		cur := v.Current().W
		assert.GreaterOrEqual(t, cur, prev, "monotonic approach")
		assert.LessOrEqual(t, cur, v.Goal().W, "no overshoot")
		prev = cur
	}
	assert.Equal(t, stat, v.Stat())
}

func TestDispatchToggles(t *testing.T) {
	v := newTestViewport(t, 100, 100, Rect{W: 100, H: 100})

	v.Dispatch(Command{Kind: CmdToggleGrid}, 0)
	assert.True(t, v.GridEnabled())
	v.Dispatch(Command{Kind: CmdToggleGrid}, 0)
	assert.False(t, v.GridEnabled())

	v.Dispatch(Command{Kind: CmdAltDown}, 0)
	assert.True(t, v.AltHeld())
	v.Dispatch(Command{Kind: CmdAltUp}, 0)
	assert.False(t, v.AltHeld())

	before := *v
	v.Dispatch(Command{Kind: CmdQuit}, 0)
	v.Dispatch(Command{Kind: CmdNone}, 0)
	assert.Equal(t, before.Stat(), v.Stat())
}

func TestGridAlphaSaturates(t *testing.T) {
	v := newTestViewport(t, 100, 100, Rect{W: 100, H: 100})
	require.Equal(t, 30, v.GridAlpha())

	for range 10 {
		v.Dispatch(WheelGridAlpha(1), 0)
	}
	assert.Equal(t, 120, v.GridAlpha())

	for range 20 {
		v.Dispatch(WheelGridAlpha(-1), 0)
	}
	assert.Equal(t, 10, v.GridAlpha())

	v.Dispatch(WheelGridAlpha(2), 0)
	assert.Equal(t, 30, v.GridAlpha())
	assert.Equal(t, Extent{}, v.Goal(), "grid alpha wheel does not zoom")
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "Nav(Right)", Nav(DirRight).String())
	assert.Equal(t, "SelectMonitor(2)", SelectMonitor(2).String())
	assert.Equal(t, "WheelZoom(-1)", WheelZoom(-1).String())
	assert.Equal(t, "ToggleGrid", Command{Kind: CmdToggleGrid}.String())
	assert.Equal(t, "Unknown", CommandKind(200).String())
	assert.Equal(t, "Unknown", Direction(9).String())
}

func TestZoomLimit(t *testing.T) {
	assert.Equal(t, 957.0, zoomLimit(1920))
	assert.Equal(t, 0.0, zoomLimit(5))
	assert.Equal(t, 0.0, zoomLimit(0))
	assert.False(t, math.IsNaN(zoomLimit(7)))
}
