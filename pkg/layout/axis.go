// Package layout holds the small value types the containers share: axes,
// cross-axis alignment and clamping helpers.
package layout

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-drift/strata/pkg/graphics"
)

// Axis represents a layout direction.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis accepts "vertical"/"column" and "horizontal"/"row".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "column", "v":
		return AxisVertical, nil
	case "horizontal", "row", "h":
		return AxisHorizontal, nil
	default:
		return AxisVertical, fmt.Errorf("unknown axis %q", s)
	}
}

// Main returns the extent of s along a.
func (a Axis) Main(s graphics.Size) float64 {
	if a == AxisHorizontal {
		return s.Width
	}
	return s.Height
}

// Cross returns the extent of s across a.
func (a Axis) Cross(s graphics.Size) float64 {
	if a == AxisHorizontal {
		return s.Height
	}
	return s.Width
}

// MakeSize builds a Size from main and cross extents.
func (a Axis) MakeSize(main, cross float64) graphics.Size {
	if a == AxisHorizontal {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}

// MakeRect builds a Rect from main/cross origin and extents.
func (a Axis) MakeRect(mainPos, crossPos, main, cross float64) graphics.Rect {
	if a == AxisHorizontal {
		return graphics.Rect{X: mainPos, Y: crossPos, Width: main, Height: cross}
	}
	return graphics.Rect{X: crossPos, Y: mainPos, Width: cross, Height: main}
}

// MainPos returns the coordinate of p along a.
func (a Axis) MainPos(p graphics.Vec2) float64 {
	if a == AxisHorizontal {
		return p.X
	}
	return p.Y
}

// CrossPos returns the coordinate of p across a.
func (a Axis) CrossPos(p graphics.Vec2) float64 {
	if a == AxisHorizontal {
		return p.Y
	}
	return p.X
}

// Clamp restricts value to [min, max].
func Clamp(value, min, max float64) float64 {
	return math.Max(min, math.Min(value, max))
}
