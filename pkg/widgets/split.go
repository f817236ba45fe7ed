package widgets

import (
	"math"

	"github.com/go-drift/strata/pkg/core"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/layout"
)

// Split view defaults.
const (
	DefaultSplitRatio = 0.3
	DefaultMinRatio   = 0.1
	DefaultMaxRatio   = 0.9
	DefaultGutterSize = 6.0

	// Configured ratio bounds are clamped to this range so neither pane can
	// collapse completely.
	ratioFloor   = 0.05
	ratioCeiling = 0.95
)

// SplitOrientation selects how a SplitView arranges its panes.
type SplitOrientation int

const (
	// SplitHorizontal puts the panes side by side with a vertical gutter.
	SplitHorizontal SplitOrientation = iota
	// SplitVertical stacks the panes with a horizontal gutter.
	SplitVertical
)

func (o SplitOrientation) String() string {
	if o == SplitVertical {
		return "vertical"
	}
	return "horizontal"
}

func (o SplitOrientation) axis() layout.Axis {
	if o == SplitVertical {
		return layout.AxisVertical
	}
	return layout.AxisHorizontal
}

// SplitConfig configures a SplitView. Zero values select the defaults.
type SplitConfig struct {
	ID          string
	Orientation SplitOrientation
	Ratio       float64
	MinRatio    float64
	MaxRatio    float64
	GutterSize  float64
}

// SplitView divides its region between two panes separated by a draggable
// gutter. The ratio is the fraction of the main axis given to the first pane
// and always stays within [MinRatio, MaxRatio].
type SplitView struct {
	core.ContainerBase
	axis     layout.Axis
	ratio    float64
	minRatio float64
	maxRatio float64
	gutter   float64

	available graphics.Rect
	gutterRec graphics.Rect
	dragging  bool
	hovered   bool
}

// NewSplitView returns a SplitView owning first and second.
func NewSplitView(cfg SplitConfig, first, second core.Component) *SplitView {
	s := &SplitView{
		ContainerBase: core.NewContainerBase(cfg.ID, core.HitForward),
		axis:          cfg.Orientation.axis(),
		minRatio:      DefaultMinRatio,
		maxRatio:      DefaultMaxRatio,
		gutter:        DefaultGutterSize,
	}
	if cfg.MinRatio > 0 {
		s.minRatio = layout.Clamp(cfg.MinRatio, ratioFloor, ratioCeiling)
	}
	if cfg.MaxRatio > 0 {
		s.maxRatio = layout.Clamp(cfg.MaxRatio, ratioFloor, ratioCeiling)
	}
	if s.minRatio > s.maxRatio {
		s.minRatio, s.maxRatio = s.maxRatio, s.minRatio
	}
	if cfg.GutterSize > 0 {
		s.gutter = cfg.GutterSize
	}
	ratio := DefaultSplitRatio
	if cfg.Ratio > 0 {
		ratio = cfg.Ratio
	}
	s.SetRatio(ratio)
	s.Add(first, second)
	return s
}

// Ratio returns the fraction of the main axis given to the first pane.
func (s *SplitView) Ratio() float64 { return s.ratio }

// RatioBounds returns the configured minimum and maximum ratio.
func (s *SplitView) RatioBounds() (min, max float64) { return s.minRatio, s.maxRatio }

// SetRatio changes the ratio, clamped to the configured bounds.
func (s *SplitView) SetRatio(r float64) {
	if math.IsNaN(r) {
		r = s.minRatio
	}
	s.ratio = layout.Clamp(r, s.minRatio, s.maxRatio)
}

// Dragging reports whether the gutter is being dragged.
func (s *SplitView) Dragging() bool { return s.dragging }

// GutterRect returns the gutter hit region from the last layout.
func (s *SplitView) GutterRect() graphics.Rect { return s.gutterRec }

func (s *SplitView) Layout(available graphics.Rect) graphics.Size {
	available = available.Sanitize()
	s.available = available
	s.SetBounds(available)

	axis := s.axis
	length := axis.Main(available.Size())
	cross := axis.Cross(available.Size())
	start := axis.MainPos(available.Position())
	crossPos := axis.CrossPos(available.Position())
	split := start + length*s.ratio
	half := s.gutter / 2

	s.gutterRec = axis.MakeRect(split-half, crossPos, s.gutter, cross)
	firstRect := axis.MakeRect(start, crossPos, math.Max(0, split-half-start), cross)
	secondStart := split + half
	secondRect := axis.MakeRect(secondStart, crossPos, math.Max(0, start+length-secondStart), cross)

	children := s.Children()
	if len(children) > 0 {
		children[0].Layout(firstRect)
	}
	if len(children) > 1 {
		children[1].Layout(secondRect)
	}
	return available.Size()
}

// SetPosition moves the view together with its panes and gutter.
func (s *SplitView) SetPosition(x, y float64) {
	old := s.Bounds()
	s.ContainerBase.SetPosition(x, y)
	moved := s.Bounds()
	dx, dy := moved.X-old.X, moved.Y-old.Y
	s.gutterRec = s.gutterRec.Translate(dx, dy)
	s.available = s.available.Translate(dx, dy)
}

func (s *SplitView) Render(pc *core.PaintContext) {
	s.RenderChildren(pc)

	colors := pc.Theme.Colors
	color := colors.Gutter
	switch {
	case s.dragging:
		color = colors.GutterDrag
	case s.hovered:
		color = colors.GutterHover
	}
	g := s.gutterRec
	var line graphics.Rect
	if s.axis == layout.AxisHorizontal {
		line = graphics.Rect{X: g.X + g.Width/2 - 0.5, Y: g.Y, Width: 1, Height: g.Height}
	} else {
		line = graphics.Rect{X: g.X, Y: g.Y + g.Height/2 - 0.5, Width: g.Width, Height: 1}
	}
	pc.Surface.DrawFilledRect(line, color)
}

func (s *SplitView) OnEvent(e events.Event, ctx *core.Context) bool {
	switch e.Kind {
	case events.MouseDown:
		if e.Button == events.ButtonLeft && s.gutterRec.Contains(e.Position) {
			s.dragging = true
			ctx.SetCursor(s.resizeCursor())
			ctx.CapturePointer(s)
			return true
		}
	case events.MouseMove:
		if s.dragging {
			s.dragTo(e.Position)
			return true
		}
		wasHovered := s.hovered
		s.hovered = s.gutterRec.Contains(e.Position)
		if s.hovered {
			ctx.SetCursor(s.resizeCursor())
		} else if wasHovered {
			ctx.SetCursor(core.CursorDefault)
		}
	case events.MouseUp:
		if s.dragging {
			s.dragTo(e.Position)
			s.dragging = false
			ctx.ReleasePointer(s)
			if !s.gutterRec.Contains(e.Position) {
				s.hovered = false
				ctx.SetCursor(core.CursorDefault)
			}
			return true
		}
	case events.MouseLeave:
		if s.dragging && ctx.PointerCapture() != core.Component(s) {
			// The capture was taken away, so no MouseUp will follow.
			s.dragging = false
			s.hovered = false
			ctx.SetCursor(core.CursorDefault)
			return true
		}
		if s.hovered && !s.dragging {
			s.hovered = false
			ctx.SetCursor(core.CursorDefault)
		}
	}
	return s.DispatchToChildren(e, ctx)
}

// dragTo sets the ratio from a pointer position and lays the panes out again
// immediately so later events in the same frame hit-test the new geometry.
func (s *SplitView) dragTo(p graphics.Vec2) {
	length := s.axis.Main(s.available.Size())
	if length <= 0 {
		return
	}
	start := s.axis.MainPos(s.available.Position())
	s.SetRatio((s.axis.MainPos(p) - start) / length)
	s.Layout(s.available)
}

func (s *SplitView) resizeCursor() core.CursorIcon {
	if s.axis == layout.AxisHorizontal {
		return core.CursorColResize
	}
	return core.CursorRowResize
}
