// Package overlay provides modal dialogs hosted on the context overlay stack.
//
// While any overlay is present the frame driver offers events only to the
// topmost one, so a Modal blocks the base tree simply by being pushed:
//
//	m := overlay.Show(ctx, dialogContent, overlay.ModalConfig{Dismissible: true})
//	// ... from a button inside dialogContent
//	m.Dismiss(ctx)
package overlay

import (
	"github.com/go-drift/strata/pkg/core"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/graphics"
)

// ModalConfig configures a Modal.
type ModalConfig struct {
	ID string
	// Dismissible lets a click on the scrim or the Escape key close the modal.
	Dismissible bool
	// OnDismiss runs after the modal removed itself.
	OnDismiss func(ctx *core.Context)
	// Scrim overrides the theme scrim color when non-zero.
	Scrim graphics.Color
}

// Modal covers the viewport with a scrim and centers its content on top.
// It consumes every pointer event, including those outside the content.
type Modal struct {
	core.ContainerBase
	config  ModalConfig
	id      core.OverlayID
	pushed  bool
	content core.Component
}

// NewModal returns a Modal wrapping content. It is not shown until pushed.
func NewModal(content core.Component, cfg ModalConfig) *Modal {
	m := &Modal{
		ContainerBase: core.NewContainerBase(cfg.ID, core.HitReverse),
		config:        cfg,
		content:       content,
	}
	m.Add(content)
	return m
}

// Show pushes a new Modal for content onto ctx and returns it.
func Show(ctx *core.Context, content core.Component, cfg ModalConfig) *Modal {
	m := NewModal(content, cfg)
	m.Push(ctx)
	return m
}

// Push places the modal on top of the overlay stack. Pushing an already
// visible modal does nothing.
func (m *Modal) Push(ctx *core.Context) {
	if m.pushed {
		return
	}
	m.id = ctx.PushOverlay(m)
	m.pushed = true
}

// Visible reports whether the modal is on the overlay stack.
func (m *Modal) Visible() bool { return m.pushed }

// Content returns the wrapped component.
func (m *Modal) Content() core.Component { return m.content }

// Dismiss removes the modal from the overlay stack and runs OnDismiss.
// Focus held inside the modal is cleared and its holder gets FocusLost.
// Dismissing a hidden modal is a no-op.
func (m *Modal) Dismiss(ctx *core.Context) {
	if !m.pushed {
		return
	}
	if focused := ctx.FocusedID(); focused != "" {
		// The holder is unreachable once removed, so it is told here.
		if holder := core.Find(m, focused); holder != nil {
			ctx.Blur()
			holder.OnEvent(events.Focus(false, focused), ctx)
		}
	}
	ctx.RemoveOverlay(m.id)
	m.pushed = false
	if m.config.OnDismiss != nil {
		m.config.OnDismiss(ctx)
	}
}

func (m *Modal) Layout(available graphics.Rect) graphics.Size {
	available = available.Sanitize()
	m.SetBounds(available)
	used := m.content.Layout(available).Sanitize()
	m.content.SetPosition(
		available.X+(available.Width-used.Width)/2,
		available.Y+(available.Height-used.Height)/2,
	)
	return available.Size()
}

func (m *Modal) Render(pc *core.PaintContext) {
	scrim := m.config.Scrim
	if scrim == graphics.ColorTransparent {
		scrim = pc.Theme.Colors.Scrim
	}
	pc.Surface.DrawFilledRect(m.Bounds(), scrim)
	m.RenderChildren(pc)
}

func (m *Modal) OnEvent(e events.Event, ctx *core.Context) bool {
	if e.IsMouse() {
		inside := m.content.Bounds().Contains(e.Position)
		if inside || e.Kind == events.MouseMove || e.Kind == events.MouseLeave {
			m.DispatchToChildren(e, ctx)
		}
		if !inside && e.Kind == events.Click && m.config.Dismissible {
			m.Dismiss(ctx)
		}
		return true
	}
	if e.Kind == events.KeyDown && e.Key == events.KeyEscape && m.config.Dismissible {
		m.Dismiss(ctx)
		return true
	}
	return m.DispatchToChildren(e, ctx)
}
