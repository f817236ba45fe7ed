// Package events defines the input events delivered to components.
//
// An Event is an immutable tagged value. Kind selects the variant and decides
// which of the payload fields are meaningful:
//
//	Mouse events        Position, Button (Down/Up/Click), Delta (Wheel)
//	Keyboard events     Key, Modifiers (KeyDown/KeyUp), Text (CharInput)
//	Focus events        ID of the component gaining or losing focus
//	Tick                DeltaTime
//
// Dispatch filters on the classification helpers IsMouse, IsKeyboard and
// IsFocus rather than on individual kinds.
package events

import (
	"fmt"

	"github.com/go-drift/strata/pkg/graphics"
)

// Kind identifies the variant of an Event.
type Kind int

const (
	KindNone Kind = iota
	MouseEnter
	MouseLeave
	MouseMove
	MouseDown
	MouseUp
	Click
	MouseWheel
	KeyDown
	KeyUp
	CharInput
	FocusGained
	FocusLost
	Tick
)

func (k Kind) String() string {
	switch k {
	case MouseEnter:
		return "MouseEnter"
	case MouseLeave:
		return "MouseLeave"
	case MouseMove:
		return "MouseMove"
	case MouseDown:
		return "MouseDown"
	case MouseUp:
		return "MouseUp"
	case Click:
		return "Click"
	case MouseWheel:
		return "MouseWheel"
	case KeyDown:
		return "KeyDown"
	case KeyUp:
		return "KeyUp"
	case CharInput:
		return "CharInput"
	case FocusGained:
		return "FocusGained"
	case FocusLost:
		return "FocusLost"
	case Tick:
		return "Tick"
	default:
		return "None"
	}
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
)

func (b MouseButton) String() string {
	switch b {
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "left"
	}
}

// Modifiers is the set of modifier keys held during a keyboard event.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
	Meta  bool
}

// Primary reports whether the platform shortcut modifier is held
// (Ctrl, or Meta on macOS-style keyboards).
func (m Modifiers) Primary() bool { return m.Ctrl || m.Meta }

// Event describes one input occurrence.
type Event struct {
	Kind      Kind
	Position  graphics.Vec2
	Button    MouseButton
	Delta     graphics.Vec2
	Key       Key
	Modifiers Modifiers
	Text      string
	ID        string
	DeltaTime float64
}

// IsMouse reports whether e is a pointer event.
func (e Event) IsMouse() bool {
	switch e.Kind {
	case MouseEnter, MouseLeave, MouseMove, MouseDown, MouseUp, Click, MouseWheel:
		return true
	}
	return false
}

// IsKeyboard reports whether e is a key or character event.
func (e Event) IsKeyboard() bool {
	switch e.Kind {
	case KeyDown, KeyUp, CharInput:
		return true
	}
	return false
}

// IsFocus reports whether e is a focus transition.
func (e Event) IsFocus() bool {
	return e.Kind == FocusGained || e.Kind == FocusLost
}

func (e Event) String() string {
	switch {
	case e.IsMouse():
		return fmt.Sprintf("%s(%.1f,%.1f %s)", e.Kind, e.Position.X, e.Position.Y, e.Button)
	case e.Kind == CharInput:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Text)
	case e.IsKeyboard():
		return fmt.Sprintf("%s(%s)", e.Kind, e.Key)
	case e.IsFocus():
		return fmt.Sprintf("%s(%s)", e.Kind, e.ID)
	default:
		return e.Kind.String()
	}
}

// Pointer builds a mouse event of the given kind at (x, y) with the left button.
func Pointer(kind Kind, x, y float64) Event {
	return Event{Kind: kind, Position: graphics.Vec2{X: x, Y: y}}
}

// Wheel builds a MouseWheel event.
func Wheel(x, y, dx, dy float64) Event {
	return Event{Kind: MouseWheel, Position: graphics.Vec2{X: x, Y: y}, Delta: graphics.Vec2{X: dx, Y: dy}}
}

// KeyPress builds a KeyDown event.
func KeyPress(key Key, mods Modifiers) Event {
	return Event{Kind: KeyDown, Key: key, Modifiers: mods}
}

// KeyRelease builds a KeyUp event.
func KeyRelease(key Key, mods Modifiers) Event {
	return Event{Kind: KeyUp, Key: key, Modifiers: mods}
}

// Char builds a CharInput event.
func Char(text string) Event {
	return Event{Kind: CharInput, Text: text}
}

// Focus builds a FocusGained or FocusLost event for id.
func Focus(gained bool, id string) Event {
	if gained {
		return Event{Kind: FocusGained, ID: id}
	}
	return Event{Kind: FocusLost, ID: id}
}

// TickEvent builds a Tick event carrying the frame delta in seconds.
func TickEvent(dt float64) Event {
	return Event{Kind: Tick, DeltaTime: dt}
}
