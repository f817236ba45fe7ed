// Package theme provides the style tokens components draw with.
//
// A Theme is an immutable value. Components read the active theme from the
// context on every render, so replacing it on the context restyles the whole
// tree on the next frame.
package theme

import "github.com/go-drift/strata/pkg/graphics"

// Brightness indicates whether a theme is light or dark.
type Brightness int

const (
	BrightnessDark Brightness = iota
	BrightnessLight
)

func (b Brightness) String() string {
	if b == BrightnessLight {
		return "light"
	}
	return "dark"
}

// Palette is the set of named colors a theme is derived from.
type Palette struct {
	Background         graphics.Color
	Surface            graphics.Color
	SurfaceAlt         graphics.Color
	SurfaceHover       graphics.Color
	Border             graphics.Color
	BorderHover        graphics.Color
	Text               graphics.Color
	TextSecondary      graphics.Color
	DisabledText       graphics.Color
	Primary            graphics.Color
	OnPrimary          graphics.Color
	Secondary          graphics.Color
	Danger             graphics.Color
	DisabledBackground graphics.Color
	DisabledBorder     graphics.Color
	Scrim              graphics.Color
	Gutter             graphics.Color
	GutterHover        graphics.Color
	GutterDrag         graphics.Color
	Shadow             graphics.Color
}

// Theme bundles a palette with the component styles derived from it.
type Theme struct {
	Name       string
	Brightness Brightness
	Colors     Palette
	FontSize   float64

	PrimaryButton   graphics.InteractiveStyle
	SecondaryButton graphics.InteractiveStyle
	DangerButton    graphics.InteractiveStyle
	Card            graphics.Style
}

// Dark returns the default dark theme.
func Dark() *Theme {
	return New("dark", BrightnessDark, DarkPalette())
}

// Light returns the default light theme.
func Light() *Theme {
	return New("light", BrightnessLight, LightPalette())
}

// DarkPalette returns the colors of the dark theme.
func DarkPalette() Palette {
	return Palette{
		Background:         graphics.RGBAF(0.1, 0.1, 0.12, 1),
		Surface:            graphics.RGBAF(0.15, 0.15, 0.18, 1),
		SurfaceAlt:         graphics.RGBAF(0.12, 0.12, 0.15, 1),
		SurfaceHover:       graphics.RGBAF(0.2, 0.2, 0.23, 1),
		Border:             graphics.RGBAF(0.3, 0.3, 0.35, 1),
		BorderHover:        graphics.RGBAF(0.4, 0.4, 0.5, 1),
		Text:               graphics.ColorWhite,
		TextSecondary:      graphics.RGBAF(0.7, 0.7, 0.75, 1),
		DisabledText:       graphics.RGBAF(0.5, 0.5, 0.5, 1),
		Primary:            graphics.RGBAF(0.2, 0.4, 0.8, 1),
		OnPrimary:          graphics.ColorWhite,
		Secondary:          graphics.RGBAF(0.3, 0.3, 0.35, 1),
		Danger:             graphics.RGBAF(0.8, 0.2, 0.2, 1),
		DisabledBackground: graphics.RGBAF(0.2, 0.2, 0.2, 1),
		DisabledBorder:     graphics.RGBAF(0.3, 0.3, 0.3, 1),
		Scrim:              graphics.ColorBlack.WithAlpha(0.7),
		Gutter:             graphics.Color(0xFF3F3F46),
		GutterHover:        graphics.Color(0xFF52525B),
		GutterDrag:         graphics.Color(0xFF6366F1),
		Shadow:             graphics.ColorBlack.WithAlpha(0.5),
	}
}

// LightPalette returns the colors of the light theme.
func LightPalette() Palette {
	return Palette{
		Background:         graphics.RGBAF(0.96, 0.96, 0.97, 1),
		Surface:            graphics.ColorWhite,
		SurfaceAlt:         graphics.RGBAF(0.93, 0.93, 0.95, 1),
		SurfaceHover:       graphics.RGBAF(0.9, 0.9, 0.92, 1),
		Border:             graphics.RGBAF(0.8, 0.8, 0.83, 1),
		BorderHover:        graphics.RGBAF(0.65, 0.65, 0.7, 1),
		Text:               graphics.RGBAF(0.1, 0.1, 0.12, 1),
		TextSecondary:      graphics.RGBAF(0.35, 0.35, 0.4, 1),
		DisabledText:       graphics.RGBAF(0.6, 0.6, 0.6, 1),
		Primary:            graphics.RGBAF(0.2, 0.4, 0.8, 1),
		OnPrimary:          graphics.ColorWhite,
		Secondary:          graphics.RGBAF(0.85, 0.85, 0.88, 1),
		Danger:             graphics.RGBAF(0.8, 0.2, 0.2, 1),
		DisabledBackground: graphics.RGBAF(0.9, 0.9, 0.9, 1),
		DisabledBorder:     graphics.RGBAF(0.8, 0.8, 0.8, 1),
		Scrim:              graphics.ColorBlack.WithAlpha(0.4),
		Gutter:             graphics.Color(0xFFD4D4D8),
		GutterHover:        graphics.Color(0xFFA1A1AA),
		GutterDrag:         graphics.Color(0xFF6366F1),
		Shadow:             graphics.ColorBlack.WithAlpha(0.2),
	}
}

// New derives a complete theme from a palette.
func New(name string, brightness Brightness, p Palette) *Theme {
	return &Theme{
		Name:            name,
		Brightness:      brightness,
		Colors:          p,
		FontSize:        14,
		PrimaryButton:   buttonStyle(p, p.Primary, p.OnPrimary),
		SecondaryButton: buttonStyle(p, p.Secondary, p.Text),
		DangerButton:    buttonStyle(p, p.Danger, p.OnPrimary),
		Card: graphics.Style{
			Background: p.Surface,
			Rounded:    8,
			Shadow:     &graphics.Shadow{Offset: graphics.Vec2{Y: 4}, Blur: 12, Color: p.Shadow},
		},
	}
}

func buttonStyle(p Palette, base, text graphics.Color) graphics.InteractiveStyle {
	idle := graphics.Style{Background: base, TextColor: text, Rounded: 4, Padding: graphics.Vec2{X: 12, Y: 6}}
	hover := idle.WithBackground(lighten(base, 0.1))
	pressed := idle.WithBackground(lighten(base, -0.05))
	disabled := graphics.Style{
		Background: p.DisabledBackground,
		TextColor:  p.DisabledText,
		Rounded:    4,
		Padding:    idle.Padding,
	}.WithBorder(1, p.DisabledBorder)
	return graphics.InteractiveStyle{Idle: idle, Hover: hover, Pressed: pressed, Disabled: disabled}
}

// lighten shifts every channel by amount (negative darkens).
func lighten(c graphics.Color, amount float64) graphics.Color {
	r, g, b, a := c.Components()
	return graphics.RGBAF(r+amount, g+amount, b+amount, a)
}

// CopyWith returns a new Theme with the given fields overridden. Component
// styles are re-derived when the palette changes.
func (t *Theme) CopyWith(colors *Palette, brightness *Brightness) *Theme {
	b := t.Brightness
	if brightness != nil {
		b = *brightness
	}
	if colors == nil {
		result := *t
		result.Brightness = b
		return &result
	}
	result := New(t.Name, b, *colors)
	result.FontSize = t.FontSize
	return result
}

// ButtonStyle returns the interactive style for a button variant name
// ("primary", "secondary" or "danger"). Unknown names get primary.
func (t *Theme) ButtonStyle(variant string) graphics.InteractiveStyle {
	switch variant {
	case "secondary":
		return t.SecondaryButton
	case "danger":
		return t.DangerButton
	default:
		return t.PrimaryButton
	}
}
