package theme

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/go-drift/strata/pkg/graphics"
)

// File is the on-disk form of a theme:
//
//	name = "ocean"
//	base = "dark"
//	font_size = 15
//
//	[colors]
//	primary = "#268bd2"
//	background = "#002b36"
type File struct {
	Name     string            `toml:"name"`
	Base     string            `toml:"base"`
	FontSize float64           `toml:"font_size"`
	Colors   map[string]string `toml:"colors"`
}

// LoadFile reads a TOML theme file.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a TOML theme. Colors not named in the file keep the value
// of the base theme ("dark" unless base = "light").
func Parse(data []byte) (*Theme, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}

	base := Dark()
	switch strings.ToLower(f.Base) {
	case "", "dark":
	case "light":
		base = Light()
	default:
		return nil, fmt.Errorf("unknown base theme %q", f.Base)
	}

	palette := base.Colors
	slots := palette.slots()
	for name, value := range f.Colors {
		slot, ok := slots[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown theme color %q", name)
		}
		c, err := graphics.ParseHex(value)
		if err != nil {
			return nil, fmt.Errorf("theme color %q: %w", name, err)
		}
		*slot = c
	}

	t := New(base.Name, base.Brightness, palette)
	if f.Name != "" {
		t.Name = f.Name
	}
	if f.FontSize > 0 {
		t.FontSize = f.FontSize
	}
	return t, nil
}

// Marshal encodes t in the TOML theme format.
func Marshal(t *Theme) ([]byte, error) {
	f := File{
		Name:     t.Name,
		Base:     t.Brightness.String(),
		FontSize: t.FontSize,
		Colors:   make(map[string]string),
	}
	p := t.Colors
	for name, slot := range p.slots() {
		f.Colors[name] = slot.Hex()
	}
	return toml.Marshal(f)
}

func (p *Palette) slots() map[string]*graphics.Color {
	return map[string]*graphics.Color{
		"background":          &p.Background,
		"surface":             &p.Surface,
		"surface_alt":         &p.SurfaceAlt,
		"surface_hover":       &p.SurfaceHover,
		"border":              &p.Border,
		"border_hover":        &p.BorderHover,
		"text":                &p.Text,
		"text_secondary":      &p.TextSecondary,
		"disabled_text":       &p.DisabledText,
		"primary":             &p.Primary,
		"on_primary":          &p.OnPrimary,
		"secondary":           &p.Secondary,
		"danger":              &p.Danger,
		"disabled_background": &p.DisabledBackground,
		"disabled_border":     &p.DisabledBorder,
		"scrim":               &p.Scrim,
		"gutter":              &p.Gutter,
		"gutter_hover":        &p.GutterHover,
		"gutter_drag":         &p.GutterDrag,
		"shadow":              &p.Shadow,
	}
}
