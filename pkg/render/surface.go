// Package render defines the drawing boundary used by components and two
// surfaces that implement it: a display-list Recorder for tests and
// tooling, and a Raster that paints into an in-memory image.
package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/go-drift/strata/pkg/graphics"
)

// ImageHandle identifies an image loaded by a Surface. The zero value is
// never a valid handle.
type ImageHandle int

// Valid reports whether h refers to a loaded image.
func (h ImageHandle) Valid() bool { return h > 0 }

// Surface receives draw calls during the render pass. Implementations own
// every backing resource; components only hold handles.
type Surface interface {
	// Clear fills the whole surface with c.
	Clear(c graphics.Color)
	DrawFilledRect(r graphics.Rect, c graphics.Color)
	DrawStrokedRect(r graphics.Rect, c graphics.Color, width float64)
	DrawText(text string, pos graphics.Vec2, style graphics.TextStyle)
	DrawImage(r graphics.Rect, img ImageHandle)
	// LoadImage loads the image at path. Repeated loads of the same path
	// return the same handle.
	LoadImage(path string) (ImageHandle, error)
	// Size returns the drawable extent.
	Size() graphics.Size
}

// DefaultFontSize is used when a TextStyle leaves FontSize unset.
const DefaultFontSize = 14

// glyphAdvance is the advance of one narrow cell relative to the font size.
const glyphAdvance = 0.6

// MeasureText returns the natural extent of a single line of text. Glyphs
// are treated as fixed-width cells; East Asian wide runes take two cells.
func MeasureText(text string, fontSize float64) graphics.Size {
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}
	cells := runewidth.StringWidth(text)
	return graphics.Size{
		Width:  float64(cells) * fontSize * glyphAdvance,
		Height: fontSize * 1.2,
	}
}
