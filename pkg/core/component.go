package core

import (
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/render"
	"github.com/go-drift/strata/pkg/theme"
)

// Component is a node in the UI tree.
type Component interface {
	// Update advances time-dependent state by dt seconds.
	Update(dt float64)
	// Layout positions the component inside available and returns the size
	// it occupies. It must be idempotent for a fixed available region.
	Layout(available graphics.Rect) graphics.Size
	// Render draws the component. It must not change layout state.
	Render(pc *PaintContext)
	// OnEvent handles an event and reports whether it was consumed.
	OnEvent(e events.Event, ctx *Context) bool

	ID() string
	Bounds() graphics.Rect
	SetPosition(x, y float64)
	SetSize(width, height float64)
	IsFocusable() bool
	ChildCount() int
}

// ChildVisitor is implemented by components that have children.
type ChildVisitor interface {
	// VisitChildren calls visitor for each child in insertion order.
	VisitChildren(visitor func(Component))
}

// FocusOrderer lets a focusable component override its traversal order.
// Components without it are ordered by their position in the tree.
type FocusOrderer interface {
	FocusOrder() int
}

// PaintContext is passed to Render.
type PaintContext struct {
	Surface render.Surface
	Theme   *theme.Theme
}

// NewPaintContext returns a PaintContext drawing to s with theme t.
// A nil theme selects the default dark theme.
func NewPaintContext(s render.Surface, t *theme.Theme) *PaintContext {
	if t == nil {
		t = theme.Dark()
	}
	return &PaintContext{Surface: s, Theme: t}
}

// Base provides the bounds bookkeeping and the defaults shared by every
// component. Embed it and implement Layout and Render.
type Base struct {
	id     string
	bounds graphics.Rect
}

// NewBase returns a Base with the given id.
func NewBase(id string) Base {
	return Base{id: id}
}

// ID returns the component identifier, or "" when it has none.
func (b *Base) ID() string { return b.id }

// SetID changes the component identifier.
func (b *Base) SetID(id string) { b.id = id }

// Bounds returns the rectangle assigned by the last layout.
func (b *Base) Bounds() graphics.Rect { return b.bounds }

// SetBounds replaces position and size at once. Invalid geometry is clamped.
func (b *Base) SetBounds(r graphics.Rect) { b.bounds = r.Sanitize() }

// SetPosition moves the origin and keeps the size.
func (b *Base) SetPosition(x, y float64) {
	r := graphics.Rect{X: x, Y: y, Width: b.bounds.Width, Height: b.bounds.Height}.Sanitize()
	b.bounds.X, b.bounds.Y = r.X, r.Y
}

// SetSize changes the extent and keeps the origin. Negative sizes become zero.
func (b *Base) SetSize(width, height float64) {
	b.bounds.Width = graphics.NonNegative(width)
	b.bounds.Height = graphics.NonNegative(height)
}

// IsFocusable reports false; focusable components override it.
func (b *Base) IsFocusable() bool { return false }

// ChildCount reports zero children.
func (b *Base) ChildCount() int { return 0 }

// Update does nothing.
func (b *Base) Update(dt float64) {}

// OnEvent ignores every event.
func (b *Base) OnEvent(e events.Event, ctx *Context) bool { return false }
