package terminal

import (
	"math"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/render"
)

// Glyphs used for shapes that have no text.
const (
	imageFill = '░'
	hLine     = '─'
	vLine     = '│'
	cornerTL  = '┌'
	cornerTR  = '┐'
	cornerBL  = '└'
	cornerBR  = '┘'
)

var imageColor = graphics.RGB(0x80, 0x80, 0x80)

// Surface paints into the cells of a tcell screen. Logical coordinates are
// divided by the cell size to find cells; a cell is covered when its
// center lies inside a rectangle.
type Surface struct {
	screen     tcell.Screen
	cell       graphics.Size
	monochrome bool
	images     map[string]render.ImageHandle
}

func newSurface(screen tcell.Screen, cell graphics.Size, monochrome bool) *Surface {
	return &Surface{
		screen:     screen,
		cell:       cell,
		monochrome: monochrome,
		images:     make(map[string]render.ImageHandle),
	}
}

// Size returns the screen extent in logical units.
func (s *Surface) Size() graphics.Size {
	cols, rows := s.screen.Size()
	return graphics.Size{Width: float64(cols) * s.cell.Width, Height: float64(rows) * s.cell.Height}
}

// CellAt converts a logical position to the cell containing it.
func (s *Surface) CellAt(p graphics.Vec2) (col, row int) {
	return int(math.Floor(p.X / s.cell.Width)), int(math.Floor(p.Y / s.cell.Height))
}

// cellSpan returns the half-open cell ranges whose centers lie inside r,
// clipped to the screen.
func (s *Surface) cellSpan(r graphics.Rect) (c0, r0, c1, r1 int) {
	cols, rows := s.screen.Size()
	c0 = clampInt(int(math.Ceil(r.X/s.cell.Width-0.5)), 0, cols)
	c1 = clampInt(int(math.Ceil(r.Right()/s.cell.Width-0.5)), 0, cols)
	r0 = clampInt(int(math.Ceil(r.Y/s.cell.Height-0.5)), 0, rows)
	r1 = clampInt(int(math.Ceil(r.Bottom()/s.cell.Height-0.5)), 0, rows)
	return
}

func (s *Surface) Clear(c graphics.Color) {
	s.screen.Fill(' ', s.style(tcell.StyleDefault, graphics.ColorTransparent, c))
}

func (s *Surface) DrawFilledRect(r graphics.Rect, c graphics.Color) {
	if c.Alpha() == 0 {
		return
	}
	c0, r0, c1, r1 := s.cellSpan(r.Sanitize())
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			mainc, combc, st, _ := s.screen.GetContent(x, y)
			if c.Alpha() < 1 {
				// Translucent fills tint the cell and keep its content.
				fg, bg, _ := st.Decompose()
				st = s.style(st, blend(fromTcell(fg), c), blend(fromTcell(bg), c))
				s.screen.SetContent(x, y, mainc, combc, st)
				continue
			}
			s.screen.SetContent(x, y, ' ', nil, s.style(st, graphics.ColorTransparent, c))
		}
	}
}

func (s *Surface) DrawStrokedRect(r graphics.Rect, c graphics.Color, width float64) {
	if width <= 0 || c.Alpha() == 0 {
		return
	}
	c0, r0, c1, r1 := s.cellSpan(r.Sanitize())
	if c1 <= c0 || r1 <= r0 {
		return
	}
	last, bottom := c1-1, r1-1
	for x := c0; x <= last; x++ {
		s.putRune(x, r0, hLine, c)
		s.putRune(x, bottom, hLine, c)
	}
	for y := r0; y <= bottom; y++ {
		s.putRune(c0, y, vLine, c)
		s.putRune(last, y, vLine, c)
	}
	if last > c0 && bottom > r0 {
		s.putRune(c0, r0, cornerTL, c)
		s.putRune(last, r0, cornerTR, c)
		s.putRune(c0, bottom, cornerBL, c)
		s.putRune(last, bottom, cornerBR, c)
	}
}

func (s *Surface) DrawText(text string, pos graphics.Vec2, style graphics.TextStyle) {
	col, row := s.CellAt(pos)
	cols, rows := s.screen.Size()
	if row < 0 || row >= rows {
		return
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > cols {
			return
		}
		if col >= 0 {
			s.putRune(col, row, r, style.Color)
		}
		col += w
	}
}

func (s *Surface) DrawImage(r graphics.Rect, img render.ImageHandle) {
	if !img.Valid() {
		return
	}
	c0, r0, c1, r1 := s.cellSpan(r.Sanitize())
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			s.putRune(x, y, imageFill, imageColor)
		}
	}
}

// LoadImage accepts any readable file. Terminals cannot show pictures, so
// images are drawn as a shaded block of the requested size.
func (s *Surface) LoadImage(path string) (render.ImageHandle, error) {
	if h, ok := s.images[path]; ok {
		return h, nil
	}
	if _, err := os.Stat(path); err != nil {
		return 0, err
	}
	h := render.ImageHandle(len(s.images) + 1)
	s.images[path] = h
	return h, nil
}

// putRune writes r in color fg, keeping the cell background.
func (s *Surface) putRune(x, y int, r rune, fg graphics.Color) {
	_, _, st, _ := s.screen.GetContent(x, y)
	s.screen.SetContent(x, y, r, nil, s.style(st, fg, graphics.ColorTransparent))
}

// style derives a cell style from base. Transparent colors keep the base
// value. In monochrome mode colors are dropped and light fills are shown
// reversed.
func (s *Surface) style(base tcell.Style, fg, bg graphics.Color) tcell.Style {
	if s.monochrome {
		st := tcell.StyleDefault
		if bg != graphics.ColorTransparent {
			return st.Reverse(luminance(bg) > 0.5)
		}
		_, _, attr := base.Decompose()
		return st.Reverse(attr&tcell.AttrReverse != 0)
	}
	if fg != graphics.ColorTransparent {
		base = base.Foreground(toTcell(fg))
	}
	if bg != graphics.ColorTransparent {
		base = base.Background(toTcell(bg))
	}
	return base
}

func toTcell(c graphics.Color) tcell.Color {
	return tcell.NewRGBColor(int32(uint8(c>>16)), int32(uint8(c>>8)), int32(uint8(c)))
}

func fromTcell(c tcell.Color) graphics.Color {
	if !c.Valid() || c == tcell.ColorDefault {
		return graphics.ColorBlack
	}
	r, g, b := c.RGB()
	if r < 0 {
		return graphics.ColorBlack
	}
	return graphics.RGB(uint8(r), uint8(g), uint8(b))
}

// blend composites over onto an opaque base.
func blend(base, over graphics.Color) graphics.Color {
	br, bg, bb, _ := base.Components()
	or, og, ob, oa := over.Components()
	return graphics.RGBAF(br+(or-br)*oa, bg+(og-bg)*oa, bb+(ob-bb)*oa, 1)
}

func luminance(c graphics.Color) float64 {
	r, g, b, _ := c.Components()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
