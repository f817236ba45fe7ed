package widgets

import (
	"math"

	"github.com/go-drift/strata/pkg/core"
	"github.com/go-drift/strata/pkg/graphics"
)

// ZStackConfig configures a ZStack.
type ZStackConfig struct {
	ID string
	// Padding insets the region every child receives.
	Padding float64
	// Background fills the stack bounds when non-zero.
	Background graphics.Color
}

// ZStack overlays children on top of each other.
//
// Every child is laid out into the same padded region. Children are painted
// in insertion order, so the first child is the backdrop, and pointer events
// are offered in reverse order so the topmost child wins.
type ZStack struct {
	core.ContainerBase
	config ZStackConfig
}

// NewZStack returns a ZStack holding children bottom to top.
func NewZStack(cfg ZStackConfig, children ...core.Component) *ZStack {
	z := &ZStack{
		ContainerBase: core.NewContainerBase(cfg.ID, core.HitReverse),
		config:        cfg,
	}
	z.Add(children...)
	return z
}

// Config returns the current configuration.
func (z *ZStack) Config() ZStackConfig { return z.config }

func (z *ZStack) Layout(available graphics.Rect) graphics.Size {
	available = available.Sanitize()
	padding := graphics.NonNegative(z.config.Padding)
	region := available.Inset(padding)

	var maxW, maxH float64
	for _, child := range z.Children() {
		used := child.Layout(region).Sanitize()
		maxW = math.Max(maxW, used.Width)
		maxH = math.Max(maxH, used.Height)
	}

	used := graphics.Size{Width: maxW + 2*padding, Height: maxH + 2*padding}
	z.SetBounds(graphics.RectFromPosSize(available.Position(), used))
	return used
}

func (z *ZStack) Render(pc *core.PaintContext) {
	if z.config.Background != graphics.ColorTransparent {
		pc.Surface.DrawFilledRect(z.Bounds(), z.config.Background)
	}
	z.RenderChildren(pc)
}
