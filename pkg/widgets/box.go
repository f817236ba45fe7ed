package widgets

import (
	"github.com/go-drift/strata/pkg/core"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/graphics"
)

// BoxConfig configures a Box.
type BoxConfig struct {
	ID string
	// Width and Height fix the box size; zero fills the available extent.
	Width  float64
	Height float64
	// Color defaults to the theme surface color.
	Color graphics.Color
	// Focusable boxes take focus when pressed and draw a focus ring.
	Focusable bool
	// OnClick runs when the box receives a Click.
	OnClick func(ctx *core.Context)
}

// Box is a filled rectangle. It is the simplest interactive leaf.
type Box struct {
	core.Base
	config  BoxConfig
	focused bool
}

// NewBox returns a Box.
func NewBox(cfg BoxConfig) *Box {
	return &Box{Base: core.NewBase(cfg.ID), config: cfg}
}

// Focused reports whether the box last received FocusGained without a
// matching FocusLost.
func (b *Box) Focused() bool { return b.focused }

func (b *Box) IsFocusable() bool { return b.config.Focusable }

func (b *Box) Layout(available graphics.Rect) graphics.Size {
	available = available.Sanitize()
	size := graphics.Size{Width: b.config.Width, Height: b.config.Height}
	if size.Width <= 0 {
		size.Width = available.Width
	}
	if size.Height <= 0 {
		size.Height = available.Height
	}
	b.SetBounds(graphics.RectFromPosSize(available.Position(), size))
	return size
}

func (b *Box) Render(pc *core.PaintContext) {
	color := b.config.Color
	if color == graphics.ColorTransparent {
		color = pc.Theme.Colors.Surface
	}
	pc.Surface.DrawFilledRect(b.Bounds(), color)
	if b.focused {
		pc.Surface.DrawStrokedRect(b.Bounds(), pc.Theme.Colors.Primary, 2)
	}
}

func (b *Box) OnEvent(e events.Event, ctx *core.Context) bool {
	switch e.Kind {
	case events.MouseDown:
		if b.config.Focusable {
			ctx.RequestFocus(b.ID())
			return true
		}
		return b.config.OnClick != nil
	case events.Click:
		if b.config.OnClick != nil {
			b.config.OnClick(ctx)
			return true
		}
	case events.FocusGained:
		b.focused = true
		return true
	case events.FocusLost:
		b.focused = false
		return true
	}
	return false
}
