package core

import (
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/graphics"
)

// HitOrder selects the order in which a container offers pointer events to
// its children.
type HitOrder int

const (
	// HitForward offers children in insertion order. Only valid for
	// containers whose children never overlap.
	HitForward HitOrder = iota
	// HitReverse offers the last-added (topmost) child first.
	HitReverse
)

// ContainerBase owns an ordered list of children and implements the shared
// dispatch protocol. Embed it and implement Layout and Render.
type ContainerBase struct {
	Base
	children []Component
	order    HitOrder
	hovered  Component
}

// NewContainerBase returns a ContainerBase with the given id and hit order.
func NewContainerBase(id string, order HitOrder) ContainerBase {
	return ContainerBase{Base: NewBase(id), order: order}
}

// Add appends children. The container takes ownership of them.
func (c *ContainerBase) Add(children ...Component) {
	for _, child := range children {
		if child != nil {
			c.children = append(c.children, child)
		}
	}
}

// Remove detaches child and reports whether it was present.
func (c *ContainerBase) Remove(child Component) bool {
	for i, existing := range c.children {
		if existing == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			if c.hovered == child {
				c.hovered = nil
			}
			return true
		}
	}
	return false
}

// Children returns the children in insertion order.
func (c *ContainerBase) Children() []Component { return c.children }

// ChildCount returns the number of children.
func (c *ContainerBase) ChildCount() int { return len(c.children) }

// VisitChildren calls visitor for each child in insertion order.
func (c *ContainerBase) VisitChildren(visitor func(Component)) {
	for _, child := range c.children {
		visitor(child)
	}
}

// Update forwards dt to every child.
func (c *ContainerBase) Update(dt float64) {
	for _, child := range c.children {
		child.Update(dt)
	}
}

// SetPosition moves the container and every descendant with it.
func (c *ContainerBase) SetPosition(x, y float64) {
	old := c.Bounds()
	c.Base.SetPosition(x, y)
	moved := c.Bounds()
	dx, dy := moved.X-old.X, moved.Y-old.Y
	for _, child := range c.children {
		Translate(child, dx, dy)
	}
}

// RenderChildren renders children back to front.
func (c *ContainerBase) RenderChildren(pc *PaintContext) {
	for _, child := range c.children {
		child.Render(pc)
	}
}

// OnEvent dispatches e to the children.
func (c *ContainerBase) OnEvent(e events.Event, ctx *Context) bool {
	return c.DispatchToChildren(e, ctx)
}

// DispatchToChildren routes e following the container protocol and returns
// the result of the child that received it.
func (c *ContainerBase) DispatchToChildren(e events.Event, ctx *Context) bool {
	switch {
	case e.IsKeyboard():
		return dispatchToSubtree(c.children, ctx.FocusedID(), e, ctx)
	case e.IsFocus():
		return dispatchToSubtree(c.children, e.ID, e, ctx)
	case e.IsMouse():
		return c.dispatchPointer(e, ctx)
	case e.Kind == events.Tick:
		for _, child := range c.children {
			child.OnEvent(e, ctx)
		}
		return false
	default:
		return false
	}
}

func dispatchToSubtree(children []Component, id string, e events.Event, ctx *Context) bool {
	if id == "" {
		return false
	}
	for _, child := range children {
		if child.ID() == id || ContainsID(child, id) {
			return child.OnEvent(e, ctx)
		}
	}
	return false
}

func (c *ContainerBase) dispatchPointer(e events.Event, ctx *Context) bool {
	if e.Kind == events.MouseLeave {
		c.leave(e, ctx)
		return false
	}
	if e.Kind == events.MouseMove || e.Kind == events.MouseEnter {
		c.updateHover(e, ctx)
		if e.Kind == events.MouseEnter {
			return false
		}
	}
	for _, child := range c.hitCandidates(e.Position) {
		if child.OnEvent(e, ctx) {
			return true
		}
	}
	return false
}

// HitTest returns the topmost child containing p, or nil.
func (c *ContainerBase) HitTest(p graphics.Vec2) Component {
	candidates := c.hitCandidates(p)
	if len(candidates) == 0 {
		return nil
	}
	return candidates[0]
}

func (c *ContainerBase) hitCandidates(p graphics.Vec2) []Component {
	var out []Component
	n := len(c.children)
	for i := 0; i < n; i++ {
		idx := i
		if c.order == HitReverse {
			idx = n - 1 - i
		}
		child := c.children[idx]
		if child.Bounds().Contains(p) {
			out = append(out, child)
		}
	}
	return out
}

func (c *ContainerBase) updateHover(e events.Event, ctx *Context) {
	top := c.HitTest(e.Position)
	if top == c.hovered {
		return
	}
	if c.hovered != nil {
		leave := e
		leave.Kind = events.MouseLeave
		c.hovered.OnEvent(leave, ctx)
	}
	c.hovered = top
	if top != nil {
		enter := e
		enter.Kind = events.MouseEnter
		top.OnEvent(enter, ctx)
	}
}

func (c *ContainerBase) leave(e events.Event, ctx *Context) {
	if c.hovered == nil {
		return
	}
	prev := c.hovered
	c.hovered = nil
	prev.OnEvent(e, ctx)
}
