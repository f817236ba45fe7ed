package testing

import (
	"github.com/go-drift/strata/pkg/core"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/graphics"
)

// Probe is a leaf that records everything it receives. Width and Height fix
// its size; zero fills the available extent. Handles decides the OnEvent
// result for pointer and keyboard events; focus events are always handled.
type Probe struct {
	core.Base
	Width     float64
	Height    float64
	Handles   bool
	Focusable bool
	Color     graphics.Color

	Events  []events.Event
	Updates int
	Layouts int
	Renders int
	LastDT  float64
}

// NewProbe returns a Probe with a fixed size.
func NewProbe(id string, width, height float64) *Probe {
	return &Probe{Base: core.NewBase(id), Width: width, Height: height}
}

func (p *Probe) IsFocusable() bool { return p.Focusable }

func (p *Probe) Update(dt float64) {
	p.Updates++
	p.LastDT = dt
}

func (p *Probe) Layout(available graphics.Rect) graphics.Size {
	p.Layouts++
	available = available.Sanitize()
	size := graphics.Size{Width: p.Width, Height: p.Height}
	if size.Width <= 0 {
		size.Width = available.Width
	}
	if size.Height <= 0 {
		size.Height = available.Height
	}
	p.SetBounds(graphics.RectFromPosSize(available.Position(), size))
	return size
}

func (p *Probe) Render(pc *core.PaintContext) {
	p.Renders++
	color := p.Color
	if color == graphics.ColorTransparent {
		color = pc.Theme.Colors.Surface
	}
	pc.Surface.DrawFilledRect(p.Bounds(), color)
}

func (p *Probe) OnEvent(e events.Event, ctx *core.Context) bool {
	if e.Kind == events.Tick {
		return false
	}
	p.Events = append(p.Events, e)
	if e.IsFocus() {
		return true
	}
	if e.Kind == events.MouseDown && p.Focusable && p.Handles {
		ctx.RequestFocus(p.ID())
	}
	return p.Handles
}

// Count returns how many events of kind the probe received.
func (p *Probe) Count(kind events.Kind) int {
	n := 0
	for _, e := range p.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Kinds returns the kinds of the received events in order.
func (p *Probe) Kinds() []events.Kind {
	out := make([]events.Kind, len(p.Events))
	for i, e := range p.Events {
		out[i] = e.Kind
	}
	return out
}

// Reset forgets the recorded events and counters.
func (p *Probe) Reset() {
	p.Events = nil
	p.Updates, p.Layouts, p.Renders = 0, 0, 0
}
