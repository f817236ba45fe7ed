package engine_test

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/strata/pkg/core"
	"github.com/go-drift/strata/pkg/engine"
	strataerrors "github.com/go-drift/strata/pkg/errors"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/render"
	stratatest "github.com/go-drift/strata/pkg/testing"
)

// fakeDriver replays batches of input, one per frame, then asks to quit.
type fakeDriver struct {
	mu         sync.Mutex
	surface    *render.Recorder
	size       graphics.Size
	batches    [][]events.Event
	polls      int
	presents   int
	pollErr    error
	presentErr error
	forever    bool
}

func newFakeDriver(batches ...[]events.Event) *fakeDriver {
	size := graphics.Size{Width: 320, Height: 240}
	return &fakeDriver{surface: render.NewRecorder(size), size: size, batches: batches}
}

func (d *fakeDriver) Surface() render.Surface { return d.surface }

func (d *fakeDriver) Size() graphics.Size {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.size
}

func (d *fakeDriver) PollEvents() ([]events.Event, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.polls++
	if d.pollErr != nil {
		return nil, d.pollErr
	}
	if d.forever {
		return nil, nil
	}
	if d.polls > len(d.batches) {
		return nil, engine.ErrQuit
	}
	return d.batches[d.polls-1], nil
}

func (d *fakeDriver) Present() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.presents++
	return d.presentErr
}

func newRunEngine(t *testing.T, root core.Component) *engine.Engine {
	t.Helper()
	cfg := engine.DefaultConfig()
	cfg.FPS = 240
	e, err := engine.New(root, cfg, engine.Options{})
	require.NoError(t, err)
	return e
}

func TestRun_QuitAfterInput(t *testing.T) {
	root := stratatest.NewProbe("root", 0, 0)
	root.Handles = true
	d := newFakeDriver(
		[]events.Event{events.Pointer(events.MouseDown, 10, 10), events.Pointer(events.MouseUp, 10, 10)},
		nil,
		[]events.Event{events.KeyPress(events.KeyEscape, events.Modifiers{})},
	)
	e := newRunEngine(t, root)

	require.NoError(t, e.Run(context.Background(), d))

	assert.Equal(t, 3, d.presents)
	assert.Equal(t, uint64(3), e.Stats().Frames)
	assert.Equal(t, 3, root.Updates)
	assert.Equal(t, 1, root.Count(events.Click))
	assert.Same(t, d.surface, e.Surface())
	assert.Equal(t, graphics.Rect{Width: 320, Height: 240}, root.Bounds())
	assert.NotEmpty(t, d.surface.Ops())
}

func TestRun_FollowsDriverResize(t *testing.T) {
	root := stratatest.NewProbe("root", 0, 0)
	d := newFakeDriver(nil, nil)
	e := newRunEngine(t, root)
	e.Post(func(*core.Context) {
		d.mu.Lock()
		d.size = graphics.Size{Width: 100, Height: 50}
		d.mu.Unlock()
	})

	require.NoError(t, e.Run(context.Background(), d))

	assert.Equal(t, graphics.Size{Width: 100, Height: 50}, e.Size())
	assert.Equal(t, graphics.Rect{Width: 100, Height: 50}, root.Bounds())
}

func TestRun_ContextCancel(t *testing.T) {
	d := newFakeDriver()
	d.forever = true
	e := newRunEngine(t, stratatest.NewProbe("", 0, 0))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, e.Run(ctx, d))
	assert.Positive(t, e.Stats().Frames)
}

func TestRun_PollError(t *testing.T) {
	boom := stderrors.New("display lost")
	d := newFakeDriver()
	d.pollErr = boom
	e := newRunEngine(t, stratatest.NewProbe("", 0, 0))

	err := e.Run(context.Background(), d)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, d.presents)
}

func TestRun_PresentErrorIsRenderKind(t *testing.T) {
	lost := stderrors.New("terminal closed")
	d := newFakeDriver(nil, nil)
	d.presentErr = lost
	e := newRunEngine(t, stratatest.NewProbe("", 0, 0))

	err := e.Run(context.Background(), d)
	require.ErrorIs(t, err, lost)
	var typed *strataerrors.Error
	require.True(t, stderrors.As(err, &typed))
	assert.Equal(t, strataerrors.KindRender, typed.Kind)
	assert.Equal(t, "engine.Present", typed.Op)
	assert.Equal(t, 1, d.presents)
}
