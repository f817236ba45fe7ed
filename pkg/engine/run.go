package engine

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/go-drift/strata/pkg/errors"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/render"
)

// ErrQuit is returned by a Driver when the user asked to close the app.
var ErrQuit = stderrors.New("engine: quit requested")

// Driver connects an Engine to a platform: it supplies the surface, the
// window size and translated input.
type Driver interface {
	// Surface returns the surface frames are rendered to.
	Surface() render.Surface
	// Size returns the current window size.
	Size() graphics.Size
	// PollEvents drains pending input without blocking. It returns ErrQuit
	// when the application should exit.
	PollEvents() ([]events.Event, error)
	// Present shows the last rendered frame.
	Present() error
}

// Run drives frames at the configured rate until ctx is cancelled or the
// driver reports ErrQuit. Input polled before a frame is dispatched before
// that frame's update, so every frame sees a consistent tree.
func (e *Engine) Run(ctx context.Context, d Driver) error {
	e.SetSurface(d.Surface())
	e.Resize(d.Size())

	interval := time.Second / time.Duration(e.cfg.FPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	e.logger.Info().
		Str("title", e.cfg.Title).
		Float64("width", e.size.Width).
		Float64("height", e.size.Height).
		Int("fps", e.cfg.FPS).
		Msg("engine started")

	last := e.clock.Now()
	for {
		select {
		case <-ctx.Done():
			e.logger.Info().Uint64("frames", e.stats.Frames).Msg("engine stopped")
			return nil
		case <-ticker.C:
		}

		quit, err := e.step(d, &last)
		if err != nil {
			return err
		}
		if quit {
			e.logger.Info().Uint64("frames", e.stats.Frames).Msg("quit requested")
			return nil
		}
	}
}

// step polls input, dispatches it, runs one frame and presents it.
func (e *Engine) step(d Driver, last *time.Time) (bool, error) {
	evs, err := d.PollEvents()
	if stderrors.Is(err, ErrQuit) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	if size := d.Size(); size != e.size {
		e.Resize(size)
	}
	e.RunPosted()
	for _, ev := range evs {
		e.Dispatch(ev)
	}

	now := e.clock.Now()
	dt := now.Sub(*last).Seconds()
	*last = now
	e.Frame(dt)
	if err := d.Present(); err != nil {
		return false, errors.New("engine.Present", errors.KindRender, err)
	}
	return false, nil
}
