package graphics

// Border describes a stroked outline around a shape.
type Border struct {
	Width  float64
	Color  Color
	Radius float64
}

// Shadow describes a drop shadow. Renderers without blur support draw an
// offset fill in the shadow color.
type Shadow struct {
	Offset Vec2
	Blur   float64
	Color  Color
}

// Style is a bundle of visual properties for a box-like component.
type Style struct {
	Background Color
	Border     *Border
	Shadow     *Shadow
	TextColor  Color
	Rounded    float64
	Padding    Vec2
}

// WithBackground returns a copy of s with the given background.
func (s Style) WithBackground(c Color) Style {
	s.Background = c
	return s
}

// WithBorder returns a copy of s with a border of the given width and color.
func (s Style) WithBorder(width float64, c Color) Style {
	s.Border = &Border{Width: width, Color: c, Radius: s.Rounded}
	return s
}

// ComponentState is the interaction state of an interactive component.
type ComponentState int

const (
	StateIdle ComponentState = iota
	StateHover
	StatePressed
	StateDisabled
)

func (s ComponentState) String() string {
	switch s {
	case StateHover:
		return "hover"
	case StatePressed:
		return "pressed"
	case StateDisabled:
		return "disabled"
	default:
		return "idle"
	}
}

// InteractiveStyle holds one Style per interaction state.
type InteractiveStyle struct {
	Idle     Style
	Hover    Style
	Pressed  Style
	Disabled Style
}

// Resolve returns the style for the given state.
func (s InteractiveStyle) Resolve(state ComponentState) Style {
	switch state {
	case StateHover:
		return s.Hover
	case StatePressed:
		return s.Pressed
	case StateDisabled:
		return s.Disabled
	default:
		return s.Idle
	}
}

// TextStyle controls how text is drawn.
type TextStyle struct {
	Color    Color
	FontSize float64
}
