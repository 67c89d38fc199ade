package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want Key
	}{
		{"Q", KeyQ},
		{"q", KeyQ},
		{"ArrowUp", KeyArrowUp},
		{"arrowup", KeyArrowUp},
		{"ARROWLEFT", KeyArrowLeft},
		{"shiftleft", KeyShiftLeft},
		{"AltLeft", KeyAltLeft},
		{"7", Key7},
		{"up", KeyArrowUp},
		{"Esc", KeyEscape},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKey(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKeyUnknown(t *testing.T) {
	for _, in := range []string{"", "Unknown", "F13", "Hyper"} {
		_, err := ParseKey(in)
		assert.Error(t, err, in)
	}
}

func TestKeyNamesRoundTrip(t *testing.T) {
	for k := KeyA; k < keyCount; k++ {
		require.NotEmpty(t, k.String(), "key %d has no name", k)
		got, err := ParseKey(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
}

func TestKeyText(t *testing.T) {
	b, err := KeyShiftLeft.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "ShiftLeft", string(b))

	var k Key
	require.NoError(t, k.UnmarshalText([]byte("arrowright")))
	assert.Equal(t, KeyArrowRight, k)
	assert.Error(t, k.UnmarshalText([]byte("nope")))
}

func TestKeyDigit(t *testing.T) {
	d, ok := Key3.Digit()
	assert.True(t, ok)
	assert.Equal(t, 3, d)

	_, ok = KeyA.Digit()
	assert.False(t, ok)
	assert.Equal(t, "Unknown", Key(250).String())
}
