// Package engine drives frames and input for a component tree.
//
// Each frame runs, for the whole tree and every overlay:
//
//  1. rebuild the focus traversal order from focusable components
//  2. broadcast Tick
//  3. Update(dt)
//  4. Layout(viewport)
//  5. Render onto the surface, overlays last
//
// Input is delivered with Dispatch, between frames. After every dispatch the
// pending focus change, if any, is applied and FocusLost/FocusGained are
// delivered to the components involved.
package engine

import (
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-drift/strata/pkg/core"
	"github.com/go-drift/strata/pkg/errors"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/render"
	"github.com/go-drift/strata/pkg/theme"
)

// errEventDropped is reported when a panic stops delivery of an event.
var errEventDropped = stderrors.New("event dropped after a panic in its handler")

// Options supplies collaborators for an Engine. Zero values select defaults.
type Options struct {
	Theme   *theme.Theme
	Logger  *zerolog.Logger
	Surface render.Surface
	Clock   Clock
}

// Stats counts engine activity.
type Stats struct {
	Frames     uint64
	Events     uint64
	LastFrame  time.Duration
	Overlays   int
	FocusOrder []string
}

// Engine owns the root component and the context for one application.
type Engine struct {
	cfg     AppConfig
	root    core.Component
	ctx     *core.Context
	surface render.Surface
	clock   Clock
	logger  zerolog.Logger
	size    graphics.Size

	pressed map[events.MouseButton]bool
	stats   Stats

	postMu sync.Mutex
	posted []func(ctx *core.Context)
}

// New validates cfg and returns an Engine for root.
func New(root core.Component, cfg AppConfig, opts Options) (*Engine, error) {
	if root == nil {
		return nil, fmt.Errorf("engine: root component is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	clock := opts.Clock
	if clock == nil {
		clock = realClock{}
	}
	size := graphics.Size{Width: float64(cfg.Width), Height: float64(cfg.Height)}
	surface := opts.Surface
	if surface == nil {
		surface = render.NewRecorder(size)
	}

	e := &Engine{
		cfg:     cfg,
		root:    root,
		ctx:     core.NewContext(opts.Theme, logger),
		surface: surface,
		clock:   clock,
		logger:  logger,
		pressed: make(map[events.MouseButton]bool),
	}
	e.Resize(size)
	return e, nil
}

// Context returns the application context.
func (e *Engine) Context() *core.Context { return e.ctx }

// Root returns the root component.
func (e *Engine) Root() core.Component { return e.root }

// Config returns the application configuration.
func (e *Engine) Config() AppConfig { return e.cfg }

// Surface returns the surface frames render to.
func (e *Engine) Surface() render.Surface { return e.surface }

// SetSurface replaces the render target.
func (e *Engine) SetSurface(s render.Surface) { e.surface = s }

// Size returns the viewport size.
func (e *Engine) Size() graphics.Size { return e.size }

// Resize changes the viewport. The next frame lays out at the new size.
func (e *Engine) Resize(size graphics.Size) {
	e.size = size.Sanitize()
	e.ctx.SetViewport(e.size)
}

// Stats returns a copy of the activity counters.
func (e *Engine) Stats() Stats {
	s := e.stats
	s.Overlays = e.ctx.Overlays().Len()
	s.FocusOrder = e.ctx.Focus().Registered()
	return s
}

// Post queues fn to run on the frame goroutine before the next frame. It is
// the only Engine method safe to call from other goroutines.
func (e *Engine) Post(fn func(ctx *core.Context)) {
	if fn == nil {
		return
	}
	e.postMu.Lock()
	e.posted = append(e.posted, fn)
	e.postMu.Unlock()
}

// RunPosted runs every queued Post callback.
func (e *Engine) RunPosted() {
	e.postMu.Lock()
	queued := e.posted
	e.posted = nil
	e.postMu.Unlock()
	for _, fn := range queued {
		fn(e.ctx)
	}
	e.applyFocus()
}

// Frame runs one full frame with the given delta in seconds.
func (e *Engine) Frame(dt float64) {
	start := e.clock.Now()
	defer errors.Recover("engine.Frame")

	if dt < 0 {
		dt = 0
	}
	e.rebuildFocusOrder()

	tick := events.TickEvent(dt)
	e.root.OnEvent(tick, e.ctx)
	for _, o := range e.ctx.Overlays().Components() {
		o.OnEvent(tick, e.ctx)
	}

	e.root.Update(dt)
	for _, o := range e.ctx.Overlays().Components() {
		o.Update(dt)
	}

	e.Layout()
	e.Render()

	e.stats.Frames++
	e.stats.LastFrame = e.clock.Now().Sub(start)
}

// Layout lays out the root and every overlay in the viewport.
func (e *Engine) Layout() {
	viewport := graphics.RectFromPosSize(graphics.Vec2{}, e.size)
	e.root.Layout(viewport)
	for _, o := range e.ctx.Overlays().Components() {
		o.Layout(viewport)
	}
}

// Render clears the surface and draws the root, then overlays bottom to top.
func (e *Engine) Render() {
	e.surface.Clear(e.cfg.ClearColor)
	pc := core.NewPaintContext(e.surface, e.ctx.Theme())
	e.root.Render(pc)
	for _, o := range e.ctx.Overlays().Components() {
		o.Render(pc)
	}
}

// Dispatch delivers one input event and reports whether a component
// consumed it.
//
// While any overlay is present only the topmost overlay is offered events.
// An unhandled MouseDown clears focus, an unhandled Tab moves it, and a
// MouseUp following a MouseDown of the same button is followed by a Click.
func (e *Engine) Dispatch(ev events.Event) (handled bool) {
	defer errors.RecoverWithCallback("engine.Dispatch", func(any) {
		handled = false
		errors.Report(&errors.Error{
			Op:      "engine.Dispatch",
			Kind:    errors.KindDispatch,
			Subject: ev.Kind.String(),
			Err:     errEventDropped,
		})
	})

	e.stats.Events++
	handled = e.deliver(ev)

	switch ev.Kind {
	case events.MouseDown:
		e.pressed[ev.Button] = true
		if !handled {
			e.ctx.Blur()
		}
	case events.KeyDown:
		if !handled && ev.Key == events.KeyTab {
			if ev.Modifiers.Shift {
				e.ctx.FocusPrevious()
			} else {
				e.ctx.FocusNext()
			}
			handled = true
		}
	}
	e.applyFocus()

	if ev.Kind == events.MouseUp && e.pressed[ev.Button] {
		delete(e.pressed, ev.Button)
		click := ev
		click.Kind = events.Click
		e.stats.Events++
		if e.deliver(click) {
			handled = true
		}
		e.applyFocus()
	}
	return handled
}

// deliver routes ev to the pointer capture, the topmost overlay or the root.
// A capture held outside the topmost overlay is cancelled: its holder gets a
// MouseLeave and the event goes to the overlay.
func (e *Engine) deliver(ev events.Event) bool {
	e.dropStaleCapture(ev)
	if capture := e.ctx.PointerCapture(); capture != nil &&
		(ev.Kind == events.MouseMove || ev.Kind == events.MouseUp) {
		handled := capture.OnEvent(ev, e.ctx)
		if ev.Kind == events.MouseUp {
			e.ctx.ReleasePointer(capture)
		}
		return handled
	}
	return e.target().OnEvent(ev, e.ctx)
}

func (e *Engine) dropStaleCapture(ev events.Event) {
	capture := e.ctx.PointerCapture()
	if capture == nil || !ev.IsMouse() {
		return
	}
	top, ok := e.ctx.Overlays().Top()
	if !ok || core.Contains(top, capture) {
		return
	}
	e.ctx.ReleasePointer(capture)
	e.logger.Debug().Str("id", capture.ID()).Msg("pointer capture cancelled by overlay")
	leave := ev
	leave.Kind = events.MouseLeave
	capture.OnEvent(leave, e.ctx)
}

// target is the component tree currently receiving input.
func (e *Engine) target() core.Component {
	if top, ok := e.ctx.Overlays().Top(); ok {
		return top
	}
	return e.root
}

// applyFocus applies a pending focus change and notifies both holders.
func (e *Engine) applyFocus() {
	change, ok := e.ctx.Focus().TakePendingChange()
	if !ok {
		return
	}
	e.logger.Debug().Str("from", change.Old).Str("to", change.New).Msg("focus changed")
	if old := e.find(change.Old); old != nil {
		old.OnEvent(events.Focus(false, change.Old), e.ctx)
	}
	if next := e.find(change.New); next != nil {
		next.OnEvent(events.Focus(true, change.New), e.ctx)
	}
}

// find looks for id in the overlays, topmost first, then in the root tree.
func (e *Engine) find(id string) core.Component {
	if id == "" {
		return nil
	}
	overlays := e.ctx.Overlays().Components()
	for i := len(overlays) - 1; i >= 0; i-- {
		if c := core.Find(overlays[i], id); c != nil {
			return c
		}
	}
	return core.Find(e.root, id)
}

// rebuildFocusOrder registers the focusable components of the tree that
// currently receives input, so Tab never leaves an open modal.
func (e *Engine) rebuildFocusOrder() {
	fm := e.ctx.Focus()
	fm.ClearRegistry()
	index := 0
	core.Walk(e.target(), func(c core.Component) bool {
		if c.IsFocusable() && c.ID() != "" {
			order := index
			if o, ok := c.(core.FocusOrderer); ok {
				order = o.FocusOrder()
			}
			fm.Register(c.ID(), order)
			index++
		}
		return true
	})
}
