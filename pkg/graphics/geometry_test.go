package graphics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRect_ContainsIsInclusive(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}

	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"inside", Vec2{X: 15, Y: 15}, true},
		{"top-left corner", Vec2{X: 10, Y: 10}, true},
		{"bottom-right corner", Vec2{X: 30, Y: 30}, true},
		{"left of", Vec2{X: 9.9, Y: 15}, false},
		{"below", Vec2{X: 15, Y: 30.1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.p))
		})
	}
}

func TestRect_SanitizeClampsInvalidGeometry(t *testing.T) {
	r := Rect{X: math.NaN(), Y: 4, Width: -3, Height: math.Inf(1)}.Sanitize()
	assert.Equal(t, Rect{X: 0, Y: 4, Width: 0, Height: 0}, r)
}

func TestRect_InsetNeverNegative(t *testing.T) {
	r := Rect{Width: 10, Height: 30}.Inset(8)
	assert.Equal(t, Rect{X: 8, Y: 8, Width: 0, Height: 14}, r)
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#3f3f46")
	require.NoError(t, err)
	assert.Equal(t, Color(0xFF3F3F46), c)

	c, err = ParseHex("80FF0000")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, c.Alpha(), 0.01)

	c, err = ParseHex("#fff")
	require.NoError(t, err)
	assert.Equal(t, ColorWhite, c)

	_, err = ParseHex("#12345")
	assert.Error(t, err)
}

func TestRGBAF_RoundTrip(t *testing.T) {
	c := RGBAF(0.2, 0.4, 0.8, 1)
	r, g, b, a := c.Components()
	assert.InDelta(t, 0.2, r, 0.01)
	assert.InDelta(t, 0.4, g, 0.01)
	assert.InDelta(t, 0.8, b, 0.01)
	assert.InDelta(t, 1.0, a, 0.001)
}

func TestInteractiveStyle_Resolve(t *testing.T) {
	s := InteractiveStyle{
		Idle:    Style{Background: ColorRed},
		Hover:   Style{Background: ColorGreen},
		Pressed: Style{Background: ColorBlue},
	}
	assert.Equal(t, ColorGreen, s.Resolve(StateHover).Background)
	assert.Equal(t, ColorBlue, s.Resolve(StatePressed).Background)
	assert.Equal(t, ColorRed, s.Resolve(StateIdle).Background)
	assert.Equal(t, "pressed", StatePressed.String())
}
