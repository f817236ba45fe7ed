package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/strata/pkg/core"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/overlay"
	"github.com/go-drift/strata/pkg/render"
	stratatest "github.com/go-drift/strata/pkg/testing"
	"github.com/go-drift/strata/pkg/widgets"
)

func setup(t *testing.T) (*stratatest.Harness, *stratatest.Probe) {
	t.Helper()
	base := stratatest.NewProbe("base", 0, 0)
	base.Handles = true
	base.Focusable = true
	h := stratatest.NewHarnessWithT(t, widgets.NewVStack(widgets.StackConfig{}, base))
	h.Pump()
	return h, base
}

func TestModal_BlocksBaseTree(t *testing.T) {
	h, base := setup(t)
	clicks := 0
	content := widgets.NewBox(widgets.BoxConfig{ID: "dlg", Width: 100, Height: 100, OnClick: func(*core.Context) { clicks++ }})
	m := overlay.Show(h.Context(), content, overlay.ModalConfig{})
	h.Pump()

	assert.Equal(t, graphics.Rect{X: 350, Y: 250, Width: 100, Height: 100}, content.Bounds())

	assert.True(t, h.TapAt(10, 10))
	h.MoveTo(20, 20)
	h.Dispatch(events.Wheel(20, 20, 0, 3))
	assert.Empty(t, base.Events)
	assert.True(t, m.Visible())

	h.TapAt(400, 300)
	assert.Equal(t, 1, clicks)
	assert.Empty(t, base.Events)
}

func TestModal_DismissOnScrimClick(t *testing.T) {
	h, base := setup(t)
	dismissed := 0
	m := overlay.Show(h.Context(), widgets.NewBox(widgets.BoxConfig{Width: 100, Height: 100}), overlay.ModalConfig{
		Dismissible: true,
		OnDismiss:   func(*core.Context) { dismissed++ },
	})
	h.Pump()

	h.TapAt(400, 300)
	assert.True(t, m.Visible(), "click inside content keeps the modal")

	h.TapAt(10, 10)
	assert.False(t, m.Visible())
	assert.Equal(t, 1, dismissed)
	assert.False(t, h.Context().HasOverlays())
	assert.Empty(t, base.Events, "the dismissing click is not forwarded")

	h.TapAt(10, 10)
	assert.Equal(t, 1, base.Count(events.Click))
}

func TestModal_Escape(t *testing.T) {
	h, _ := setup(t)
	m := overlay.Show(h.Context(), widgets.NewLabel(widgets.LabelConfig{Text: "hi"}), overlay.ModalConfig{Dismissible: true})
	h.Pump()

	assert.True(t, h.Press(events.KeyEscape, events.Modifiers{}))
	assert.False(t, m.Visible())
}

func TestModal_NotDismissible(t *testing.T) {
	h, _ := setup(t)
	m := overlay.Show(h.Context(), widgets.NewLabel(widgets.LabelConfig{Text: "hi"}), overlay.ModalConfig{})
	h.Pump()

	h.TapAt(5, 5)
	h.Press(events.KeyEscape, events.Modifiers{})
	assert.True(t, m.Visible())

	m.Dismiss(h.Context())
	assert.False(t, m.Visible())
	m.Dismiss(h.Context())
	assert.False(t, h.Context().HasOverlays())
}

func TestModal_PushRemoveRoundTrip(t *testing.T) {
	h, base := setup(t)
	ctx := h.Context()
	before := ctx.Overlays().Components()

	m := overlay.NewModal(widgets.NewLabel(widgets.LabelConfig{Text: "x"}), overlay.ModalConfig{})
	m.Push(ctx)
	m.Push(ctx)
	assert.Equal(t, 1, ctx.Overlays().Len())
	m.Dismiss(ctx)

	assert.Equal(t, before, ctx.Overlays().Components())
	h.Pump()
	h.TapAt(10, 10)
	assert.Equal(t, 1, base.Count(events.MouseDown))
}

func TestModal_RendersAboveBase(t *testing.T) {
	h, _ := setup(t)
	overlay.Show(h.Context(), widgets.NewLabel(widgets.LabelConfig{Text: "top"}), overlay.ModalConfig{})
	h.Pump()

	ops := h.Recorder().Ops()
	require.NotEmpty(t, ops)
	assert.Equal(t, render.OpClear, ops[0].Kind)
	scrim := h.Context().Theme().Colors.Scrim
	scrimAt := -1
	for i, op := range ops {
		if op.Kind == render.OpFilledRect && op.Color == scrim {
			scrimAt = i
		}
	}
	require.Greater(t, scrimAt, 1, h.Recorder().Dump())
	assert.Equal(t, "top", ops[len(ops)-1].Text)
}

func TestModal_TabStaysInsideModal(t *testing.T) {
	h, _ := setup(t)
	overlay.Show(h.Context(), widgets.NewHStack(widgets.StackConfig{Gap: 4},
		widgets.NewButton(widgets.ButtonConfig{ID: "yes", Label: "Yes"}),
		widgets.NewButton(widgets.ButtonConfig{ID: "no", Label: "No"}),
	), overlay.ModalConfig{})
	h.Pump()

	var seen []string
	for i := 0; i < 4; i++ {
		h.Press(events.KeyTab, events.Modifiers{})
		seen = append(seen, h.Context().FocusedID())
	}
	assert.Equal(t, []string{"yes", "no", "yes", "no"}, seen)
}

func TestModal_DismissClearsFocusInside(t *testing.T) {
	h, base := setup(t)
	field := widgets.NewBox(widgets.BoxConfig{ID: "field", Width: 50, Height: 20, Focusable: true})
	m := overlay.Show(h.Context(), field, overlay.ModalConfig{Dismissible: true})
	h.Pump()

	h.Press(events.KeyTab, events.Modifiers{})
	require.Equal(t, "field", h.Context().FocusedID())
	require.True(t, field.Focused())

	h.Press(events.KeyEscape, events.Modifiers{})
	assert.False(t, m.Visible())
	assert.False(t, field.Focused())
	assert.Empty(t, h.Context().FocusedID())

	h.Pump()
	h.Press(events.KeyTab, events.Modifiers{})
	assert.Equal(t, "base", h.Context().FocusedID())
	assert.Equal(t, 1, base.Count(events.FocusGained))
}

func TestModal_DismissKeepsFocusOutside(t *testing.T) {
	h, base := setup(t)
	h.Press(events.KeyTab, events.Modifiers{})
	require.Equal(t, "base", h.Context().FocusedID())

	m := overlay.Show(h.Context(), widgets.NewBox(widgets.BoxConfig{Width: 50, Height: 20}), overlay.ModalConfig{})
	h.Pump()
	m.Dismiss(h.Context())
	h.Pump()

	assert.Equal(t, "base", h.Context().FocusedID())
	assert.Zero(t, base.Count(events.FocusLost))
}
