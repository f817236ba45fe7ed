package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/strata/pkg/graphics"
)

func TestRecorder_RecordsInOrder(t *testing.T) {
	rec := NewRecorder(graphics.Size{Width: 100, Height: 100})
	rec.Clear(graphics.ColorBlack)
	rec.DrawFilledRect(graphics.Rect{Width: 10, Height: 10}, graphics.ColorRed)
	rec.DrawText("hi", graphics.Vec2{X: 1, Y: 2}, graphics.TextStyle{Color: graphics.ColorWhite})

	ops := rec.Ops()
	require.Len(t, ops, 3)
	assert.Equal(t, OpClear, ops[0].Kind)
	assert.Equal(t, OpFilledRect, ops[1].Kind)
	assert.Equal(t, []string{"hi"}, rec.Texts())

	rec.Reset()
	assert.Empty(t, rec.Ops())
}

func TestRecorder_LoadImageMissing(t *testing.T) {
	rec := NewRecorder(graphics.Size{})
	h, err := rec.LoadImage("does/not/exist.png")
	assert.Error(t, err)
	assert.False(t, h.Valid())
}

func TestRaster_FillAndEncode(t *testing.T) {
	r := NewRaster(20, 10)
	r.Clear(graphics.ColorBlack)
	r.DrawFilledRect(graphics.Rect{X: 5, Y: 0, Width: 5, Height: 5}, graphics.ColorRed)
	r.DrawText("A", graphics.Vec2{X: 0, Y: 0}, graphics.TextStyle{Color: graphics.ColorWhite})

	got := r.Image().RGBAAt(6, 2)
	assert.Equal(t, uint8(0xFF), got.R)
	assert.Equal(t, uint8(0), got.G)

	untouched := r.Image().RGBAAt(15, 8)
	assert.Equal(t, uint8(0), untouched.R)

	var buf bytes.Buffer
	require.NoError(t, r.EncodePNG(&buf))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 20, decoded.Bounds().Dx())
}

func TestMeasureText(t *testing.T) {
	s := MeasureText("abcd", 10)
	assert.InDelta(t, 24, s.Width, 1e-9)
	assert.InDelta(t, 12, s.Height, 1e-9)

	wide := MeasureText("世界", 10)
	assert.InDelta(t, 24, wide.Width, 1e-9)
}
