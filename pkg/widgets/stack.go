package widgets

import (
	"math"

	"github.com/go-drift/strata/pkg/core"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/layout"
)

// StackConfig configures a VStack or HStack.
type StackConfig struct {
	ID string
	// Gap is the space between adjacent children. It is not applied before
	// the first child or after the last.
	Gap float64
	// Padding is applied on every edge.
	Padding float64
	// Alignment places children across the main axis.
	Alignment layout.CrossAlignment
	// Background fills the stack bounds when non-zero.
	Background graphics.Color
}

// Stack sequences children along its main axis.
//
// The main-axis size is the sum of the children's sizes plus the gaps and
// twice the padding. The cross-axis size is the largest child plus padding,
// or the full available extent with AlignStretch. Children that report more
// than the remaining space overflow; the stack never clips.
type Stack struct {
	core.ContainerBase
	axis   layout.Axis
	config StackConfig
}

// NewVStack returns a stack that lays children out top to bottom.
func NewVStack(cfg StackConfig, children ...core.Component) *Stack {
	return newStack(layout.AxisVertical, cfg, children)
}

// NewHStack returns a stack that lays children out left to right.
func NewHStack(cfg StackConfig, children ...core.Component) *Stack {
	return newStack(layout.AxisHorizontal, cfg, children)
}

func newStack(axis layout.Axis, cfg StackConfig, children []core.Component) *Stack {
	s := &Stack{
		ContainerBase: core.NewContainerBase(cfg.ID, core.HitForward),
		axis:          axis,
		config:        cfg,
	}
	s.Add(children...)
	return s
}

// Axis returns the main axis.
func (s *Stack) Axis() layout.Axis { return s.axis }

// Config returns the current configuration.
func (s *Stack) Config() StackConfig { return s.config }

// SetGap changes the space between children.
func (s *Stack) SetGap(gap float64) { s.config.Gap = gap }

// SetPadding changes the edge padding.
func (s *Stack) SetPadding(padding float64) { s.config.Padding = padding }

// SetAlignment changes the cross-axis alignment.
func (s *Stack) SetAlignment(a layout.CrossAlignment) { s.config.Alignment = a }

func (s *Stack) Layout(available graphics.Rect) graphics.Size {
	available = available.Sanitize()
	axis := s.axis
	padding := graphics.NonNegative(s.config.Padding)
	gap := graphics.NonNegative(s.config.Gap)
	children := s.Children()

	if len(children) == 0 {
		used := graphics.Size{Width: 2 * padding, Height: 2 * padding}
		s.SetBounds(graphics.RectFromPosSize(available.Position(), used))
		return used
	}

	originMain := axis.MainPos(available.Position())
	originCross := axis.CrossPos(available.Position())
	availMain := axis.Main(available.Size())
	contentCross := math.Max(0, axis.Cross(available.Size())-2*padding)
	stretch := s.config.Alignment == layout.AlignStretch

	offset := padding
	maxCross := 0.0
	farEdge := 0.0
	for i, child := range children {
		if i > 0 {
			offset += gap
		}
		remaining := math.Max(0, availMain-offset-padding)
		slot := axis.MakeRect(originMain+offset, originCross+padding, remaining, contentCross)
		used := child.Layout(slot).Sanitize()

		childMain := axis.Main(used)
		childCross := axis.Cross(used)
		crossPos := originCross + padding
		if !stretch {
			crossPos += s.config.Alignment.Offset(contentCross, childCross)
		}
		target := axis.MakeRect(originMain+offset, crossPos, childMain, childCross)
		child.SetPosition(target.X, target.Y)
		if stretch {
			size := axis.MakeSize(childMain, contentCross)
			child.SetSize(size.Width, size.Height)
			childCross = contentCross
		}

		offset += childMain
		maxCross = math.Max(maxCross, childCross)
		farEdge = math.Max(farEdge, crossPos-originCross+childCross)
	}

	crossTotal := maxCross + 2*padding
	if stretch {
		crossTotal = axis.Cross(available.Size())
	}
	used := axis.MakeSize(offset+padding, crossTotal)
	// Centered and end-aligned children sit inside the available cross
	// extent, which may exceed the reported size; bounds must cover them
	// for hit-testing.
	occupied := axis.MakeSize(offset+padding, math.Max(crossTotal, farEdge+padding))
	s.SetBounds(graphics.RectFromPosSize(available.Position(), occupied))
	return used
}

func (s *Stack) Render(pc *core.PaintContext) {
	if s.config.Background != graphics.ColorTransparent {
		pc.Surface.DrawFilledRect(s.Bounds(), s.config.Background)
	}
	s.RenderChildren(pc)
}
