package zoomer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.InDelta(t, 0.05, cfg.ZoomSpeed, 1e-12)
	assert.InDelta(t, 0.3, cfg.ZoomDuration, 1e-12)
	assert.Equal(t, 1.0, cfg.DragSpeedX)
	assert.Equal(t, 1.0, cfg.DragSpeedY)
	assert.Equal(t, 50.0, cfg.NavIncrementX)
	assert.Equal(t, 50.0, cfg.NavIncrementY)
	assert.Equal(t, 30, cfg.GridAlpha)
	assert.Equal(t, ButtonRight, cfg.DragButton)
	assert.False(t, cfg.HighlightCell)
}

func TestNewConfigOptions(t *testing.T) {
	cfg := NewConfig(
		WithZoomSpeed(0.1),
		WithZoomDuration(0.5),
		WithDragSpeed(0.75, 0.5),
		WithNavIncrement(20, 10),
		WithGridAlpha(60),
		WithDragButton(ButtonLeft),
		WithHighlightCell(true),
	)

	assert.Equal(t, 0.1, cfg.ZoomSpeed)
	assert.Equal(t, 0.5, cfg.ZoomDuration)
	assert.Equal(t, 0.75, cfg.DragSpeedX)
	assert.Equal(t, 0.5, cfg.DragSpeedY)
	assert.Equal(t, 20.0, cfg.NavIncrementX)
	assert.Equal(t, 10.0, cfg.NavIncrementY)
	assert.Equal(t, 60, cfg.GridAlpha)
	assert.Equal(t, ButtonLeft, cfg.DragButton)
	assert.True(t, cfg.HighlightCell)
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "zero duration",
			in:   Config{ZoomDuration: 0, GridAlpha: 30, DragButton: ButtonRight},
			want: Config{ZoomDuration: MinZoomDuration, GridAlpha: 30, DragButton: ButtonRight},
		},
		{
			name: "alpha too high",
			in:   Config{ZoomDuration: 1, GridAlpha: 500, DragButton: ButtonLeft},
			want: Config{ZoomDuration: 1, GridAlpha: MaxGridAlpha, DragButton: ButtonLeft},
		},
		{
			name: "alpha too low",
			in:   Config{ZoomDuration: 1, GridAlpha: -4, DragButton: ButtonLeft},
			want: Config{ZoomDuration: 1, GridAlpha: MinGridAlpha, DragButton: ButtonLeft},
		},
		{
			name: "negative speed and no button",
			in:   Config{ZoomSpeed: -1, ZoomDuration: 1, GridAlpha: 30},
			want: Config{ZoomSpeed: 0, ZoomDuration: 1, GridAlpha: 30, DragButton: ButtonRight},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestButtonsHas(t *testing.T) {
	held := ButtonLeft | ButtonRight

	assert.True(t, held.Has(ButtonRight))
	assert.True(t, held.Has(ButtonLeft))
	assert.False(t, held.Has(ButtonMiddle))
	assert.False(t, held.Has(0))
}
