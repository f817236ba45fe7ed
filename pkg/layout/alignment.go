package layout

import (
	"fmt"
	"strings"
)

// CrossAlignment controls how stack children are placed across the main axis.
type CrossAlignment int

const (
	// AlignStart places children at the leading edge.
	AlignStart CrossAlignment = iota
	// AlignCenter centers children.
	AlignCenter
	// AlignEnd places children flush with the trailing edge.
	AlignEnd
	// AlignStretch sizes children to the full cross extent.
	AlignStretch
)

// String returns a human-readable representation of the alignment.
func (a CrossAlignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignStretch:
		return "stretch"
	default:
		return fmt.Sprintf("CrossAlignment(%d)", int(a))
	}
}

// ParseCrossAlignment parses the String form of an alignment.
func ParseCrossAlignment(s string) (CrossAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start", "left", "top":
		return AlignStart, nil
	case "center", "middle":
		return AlignCenter, nil
	case "end", "right", "bottom":
		return AlignEnd, nil
	case "stretch", "fill":
		return AlignStretch, nil
	default:
		return AlignStart, fmt.Errorf("unknown alignment %q", s)
	}
}

// Offset returns the cross-axis offset of a child of size child inside a
// region of size available.
func (a CrossAlignment) Offset(available, child float64) float64 {
	switch a {
	case AlignCenter:
		return (available - child) / 2
	case AlignEnd:
		return available - child
	default:
		return 0
	}
}
