package testing

import (
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-drift/strata/pkg/core"
	"github.com/go-drift/strata/pkg/engine"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/render"
	"github.com/go-drift/strata/pkg/theme"
)

const (
	// DefaultTestWidth is the default viewport width.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default viewport height.
	DefaultTestHeight = 600
	// FrameInterval is the time one Pump advances the clock by.
	FrameInterval = 16 * time.Millisecond
)

// Harness runs a component tree headlessly on a recording surface.
type Harness struct {
	engine   *engine.Engine
	recorder *render.Recorder
	clock    *FakeClock
}

// NewHarness returns a Harness for root with an 800x600 viewport and the
// dark theme. It panics if the engine cannot be created, which only happens
// for a nil root.
func NewHarness(root core.Component) *Harness {
	recorder := render.NewRecorder(graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight})
	clock := NewFakeClock()
	logger := zerolog.Nop()
	e, err := engine.New(root, engine.DefaultConfig(), engine.Options{
		Theme:   theme.Dark(),
		Logger:  &logger,
		Surface: recorder,
		Clock:   clock,
	})
	if err != nil {
		panic(fmt.Sprintf("stratatest: %v", err))
	}
	return &Harness{engine: e, recorder: recorder, clock: clock}
}

// NewHarnessWithT is NewHarness reporting construction failures through t.
func NewHarnessWithT(t *testing.T, root core.Component) *Harness {
	t.Helper()
	if root == nil {
		t.Fatal("stratatest: nil root component")
	}
	return NewHarness(root)
}

// Engine returns the underlying engine.
func (h *Harness) Engine() *engine.Engine { return h.engine }

// Context returns the application context.
func (h *Harness) Context() *core.Context { return h.engine.Context() }

// Recorder returns the surface frames are recorded to.
func (h *Harness) Recorder() *render.Recorder { return h.recorder }

// Clock returns the fake clock.
func (h *Harness) Clock() *FakeClock { return h.clock }

// SetSize changes the viewport size.
func (h *Harness) SetSize(size graphics.Size) {
	h.recorder.SetSize(size)
	h.engine.Resize(size)
}

// Pump advances the clock by one frame interval and runs a frame. The
// recorder holds only that frame's draw calls afterwards.
func (h *Harness) Pump() {
	h.recorder.Reset()
	h.clock.Advance(FrameInterval)
	h.engine.RunPosted()
	h.engine.Frame(FrameInterval.Seconds())
}

// PumpFrames runs n frames.
func (h *Harness) PumpFrames(n int) {
	for i := 0; i < n; i++ {
		h.Pump()
	}
}

// Dispatch sends e through the engine.
func (h *Harness) Dispatch(e events.Event) bool {
	return h.engine.Dispatch(e)
}

// Find returns the component with the given id in the overlays or the root.
func (h *Harness) Find(id string) core.Component {
	overlays := h.Context().Overlays().Components()
	for i := len(overlays) - 1; i >= 0; i-- {
		if c := core.Find(overlays[i], id); c != nil {
			return c
		}
	}
	return core.Find(h.engine.Root(), id)
}

// TapAt presses and releases the left button at (x, y). The engine follows
// the release with a Click.
func (h *Harness) TapAt(x, y float64) bool {
	down := h.Dispatch(events.Pointer(events.MouseDown, x, y))
	up := h.Dispatch(events.Pointer(events.MouseUp, x, y))
	return down || up
}

// Tap taps the center of the component with the given id.
func (h *Harness) Tap(id string) error {
	c := h.Find(id)
	if c == nil {
		return fmt.Errorf("Tap: no component with id %q", id)
	}
	center := c.Bounds().Center()
	h.TapAt(center.X, center.Y)
	return nil
}

// Drag presses at from, moves to to in steps and releases there.
func (h *Harness) Drag(from, to graphics.Vec2, steps int) {
	if steps < 1 {
		steps = 1
	}
	h.Dispatch(events.Pointer(events.MouseDown, from.X, from.Y))
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps)
		x := from.X + (to.X-from.X)*f
		y := from.Y + (to.Y-from.Y)*f
		h.Dispatch(events.Pointer(events.MouseMove, x, y))
	}
	h.Dispatch(events.Pointer(events.MouseUp, to.X, to.Y))
}

// MoveTo sends a MouseMove to (x, y).
func (h *Harness) MoveTo(x, y float64) bool {
	return h.Dispatch(events.Pointer(events.MouseMove, x, y))
}

// Press sends KeyDown then KeyUp for key.
func (h *Harness) Press(key events.Key, mods events.Modifiers) bool {
	handled := h.Dispatch(events.KeyPress(key, mods))
	h.Dispatch(events.KeyRelease(key, mods))
	return handled
}

// Type sends one CharInput per rune of text.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.Dispatch(events.Char(string(r)))
	}
}
