package widgets

import (
	"github.com/go-drift/strata/pkg/core"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/render"
)

// Button padding around the label.
const (
	buttonPadX = 12
	buttonPadY = 6
)

// ButtonConfig configures a Button.
type ButtonConfig struct {
	ID    string
	Label string
	// Variant selects the theme style: "primary", "secondary" or "danger".
	Variant  string
	Disabled bool
	OnClick  func(ctx *core.Context)
}

// Button is a focusable push button. It activates on Click, or on Enter or
// Space while focused.
type Button struct {
	core.Base
	config  ButtonConfig
	hovered bool
	pressed bool
	focused bool
}

// NewButton returns a Button.
func NewButton(cfg ButtonConfig) *Button {
	return &Button{Base: core.NewBase(cfg.ID), config: cfg}
}

// State returns the current interaction state.
func (b *Button) State() graphics.ComponentState {
	switch {
	case b.config.Disabled:
		return graphics.StateDisabled
	case b.pressed:
		return graphics.StatePressed
	case b.hovered:
		return graphics.StateHover
	default:
		return graphics.StateIdle
	}
}

// SetDisabled enables or disables the button.
func (b *Button) SetDisabled(disabled bool) {
	b.config.Disabled = disabled
	if disabled {
		b.pressed = false
	}
}

func (b *Button) IsFocusable() bool { return !b.config.Disabled && b.ID() != "" }

func (b *Button) Layout(available graphics.Rect) graphics.Size {
	text := render.MeasureText(b.config.Label, render.DefaultFontSize)
	size := graphics.Size{Width: text.Width + 2*buttonPadX, Height: text.Height + 2*buttonPadY}
	b.SetBounds(graphics.RectFromPosSize(available.Sanitize().Position(), size))
	return size
}

func (b *Button) Render(pc *core.PaintContext) {
	style := pc.Theme.ButtonStyle(b.config.Variant).Resolve(b.State())
	bounds := b.Bounds()
	if style.Shadow != nil {
		pc.Surface.DrawFilledRect(bounds.Translate(style.Shadow.Offset.X, style.Shadow.Offset.Y), style.Shadow.Color)
	}
	pc.Surface.DrawFilledRect(bounds, style.Background)
	if style.Border != nil {
		pc.Surface.DrawStrokedRect(bounds, style.Border.Color, style.Border.Width)
	}
	if b.focused {
		pc.Surface.DrawStrokedRect(bounds, pc.Theme.Colors.BorderHover, 2)
	}
	pos := graphics.Vec2{X: bounds.X + buttonPadX, Y: bounds.Y + buttonPadY}
	pc.Surface.DrawText(b.config.Label, pos, graphics.TextStyle{Color: style.TextColor, FontSize: render.DefaultFontSize})
}

func (b *Button) OnEvent(e events.Event, ctx *core.Context) bool {
	switch e.Kind {
	case events.MouseEnter:
		b.hovered = true
		ctx.SetCursor(core.CursorPointer)
	case events.MouseLeave:
		b.hovered = false
		b.pressed = false
		ctx.SetCursor(core.CursorDefault)
	case events.FocusGained:
		b.focused = true
		return true
	case events.FocusLost:
		b.focused = false
		return true
	}
	if b.config.Disabled {
		return false
	}

	switch e.Kind {
	case events.MouseDown:
		b.pressed = true
		if b.IsFocusable() {
			ctx.RequestFocus(b.ID())
		}
		return true
	case events.MouseUp:
		b.pressed = false
		return true
	case events.Click:
		b.activate(ctx)
		return true
	case events.KeyDown:
		if ctx.IsFocused(b.ID()) && (e.Key == events.KeyEnter || e.Key == events.KeySpace) {
			b.activate(ctx)
			return true
		}
	}
	return false
}

func (b *Button) activate(ctx *core.Context) {
	if b.config.OnClick != nil {
		b.config.OnClick(ctx)
	}
}
