package core

import (
	"github.com/rs/zerolog"

	"github.com/go-drift/strata/pkg/focus"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/theme"
)

// CursorIcon is the pointer shape a component asks the platform to show.
type CursorIcon int

const (
	CursorDefault CursorIcon = iota
	CursorPointer
	CursorText
	CursorColResize
	CursorRowResize
)

func (c CursorIcon) String() string {
	switch c {
	case CursorPointer:
		return "pointer"
	case CursorText:
		return "text"
	case CursorColResize:
		return "col-resize"
	case CursorRowResize:
		return "row-resize"
	default:
		return "default"
	}
}

// Context is the mutable state shared by every component for the lifetime
// of an application.
type Context struct {
	focus    *focus.Manager
	theme    *theme.Theme
	overlays OverlayStack
	cursor   CursorIcon
	capture  Component
	viewport graphics.Size
	logger   zerolog.Logger
}

// NewContext returns a Context with nothing focused and no overlays.
// A nil theme selects the dark theme.
func NewContext(t *theme.Theme, logger zerolog.Logger) *Context {
	if t == nil {
		t = theme.Dark()
	}
	return &Context{
		focus:  focus.NewManager(),
		theme:  t,
		logger: logger,
	}
}

// Logger returns the application logger.
func (c *Context) Logger() zerolog.Logger { return c.logger }

// Focus returns the focus manager.
func (c *Context) Focus() *focus.Manager { return c.focus }

// RequestFocus queues a focus change to id. The change is applied, and
// FocusLost/FocusGained delivered, after the current dispatch completes.
func (c *Context) RequestFocus(id string) { c.focus.Request(id) }

// Blur queues clearing focus.
func (c *Context) Blur() { c.focus.Blur() }

// FocusNext queues focus on the next registered component.
func (c *Context) FocusNext() bool { return c.focus.Next() }

// FocusPrevious queues focus on the previous registered component.
func (c *Context) FocusPrevious() bool { return c.focus.Previous() }

// FocusedID returns the id holding focus, or "".
func (c *Context) FocusedID() string { return c.focus.Focused() }

// IsFocused reports whether id holds focus.
func (c *Context) IsFocused(id string) bool { return c.focus.IsFocused(id) }

// Theme returns the active theme.
func (c *Context) Theme() *theme.Theme { return c.theme }

// SetTheme replaces the active theme. Nil is ignored.
func (c *Context) SetTheme(t *theme.Theme) {
	if t == nil {
		return
	}
	c.theme = t
	c.logger.Debug().Str("theme", t.Name).Msg("theme changed")
}

// Cursor returns the last requested cursor icon.
func (c *Context) Cursor() CursorIcon { return c.cursor }

// SetCursor requests a cursor icon.
func (c *Context) SetCursor(icon CursorIcon) { c.cursor = icon }

// Viewport returns the size of the window the tree is laid out in.
func (c *Context) Viewport() graphics.Size { return c.viewport }

// SetViewport records the window size. Called by the frame driver.
func (c *Context) SetViewport(s graphics.Size) { c.viewport = s.Sanitize() }

// Overlays returns the overlay stack.
func (c *Context) Overlays() *OverlayStack { return &c.overlays }

// PushOverlay places comp above the base tree and every existing overlay.
func (c *Context) PushOverlay(comp Component) OverlayID {
	id := c.overlays.Push(comp)
	c.logger.Debug().Uint64("overlay", uint64(id)).Int("depth", c.overlays.Len()).Msg("overlay pushed")
	return id
}

// RemoveOverlay removes the overlay with the given id. Unknown ids are ignored.
func (c *Context) RemoveOverlay(id OverlayID) bool {
	return c.overlays.Remove(id)
}

// PopOverlay removes the topmost overlay.
func (c *Context) PopOverlay() (Component, bool) {
	return c.overlays.Pop()
}

// HasOverlays reports whether any overlay is present.
func (c *Context) HasOverlays() bool { return c.overlays.Len() > 0 }

// CapturePointer routes subsequent MouseMove and MouseUp events directly to
// comp, bypassing hit-testing, until it is released. The frame driver
// releases the capture after delivering the MouseUp.
func (c *Context) CapturePointer(comp Component) { c.capture = comp }

// ReleasePointer ends a capture held by comp.
func (c *Context) ReleasePointer(comp Component) {
	if c.capture == comp {
		c.capture = nil
	}
}

// PointerCapture returns the component holding the pointer, or nil.
func (c *Context) PointerCapture() Component { return c.capture }
