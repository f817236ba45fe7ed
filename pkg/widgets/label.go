package widgets

import (
	"github.com/go-drift/strata/pkg/core"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/render"
)

// LabelConfig configures a Label.
type LabelConfig struct {
	ID   string
	Text string
	// Color overrides the theme text color when non-zero.
	Color graphics.Color
	// FontSize defaults to render.DefaultFontSize.
	FontSize float64
}

// Label draws a single line of text at its natural size.
type Label struct {
	core.Base
	config LabelConfig
}

// NewLabel returns a Label.
func NewLabel(cfg LabelConfig) *Label {
	return &Label{Base: core.NewBase(cfg.ID), config: cfg}
}

// NewPlaceholder returns the label shown in place of a component that could
// not be built.
func NewPlaceholder(typeName string) *Label {
	return NewLabel(LabelConfig{
		Text:  "[Unknown: " + typeName + "]",
		Color: graphics.ColorMagenta,
	})
}

// Text returns the label text.
func (l *Label) Text() string { return l.config.Text }

// SetText replaces the label text.
func (l *Label) SetText(text string) { l.config.Text = text }

func (l *Label) Layout(available graphics.Rect) graphics.Size {
	size := render.MeasureText(l.config.Text, l.config.FontSize)
	l.SetBounds(graphics.RectFromPosSize(available.Sanitize().Position(), size))
	return size
}

func (l *Label) Render(pc *core.PaintContext) {
	color := l.config.Color
	if color == graphics.ColorTransparent {
		color = pc.Theme.Colors.Text
	}
	size := l.config.FontSize
	if size <= 0 {
		size = render.DefaultFontSize
	}
	pc.Surface.DrawText(l.config.Text, l.Bounds().Position(), graphics.TextStyle{Color: color, FontSize: size})
}
