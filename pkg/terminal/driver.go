// Package terminal runs a strata engine inside a character terminal using
// tcell. Each cell stands for a fixed block of logical units so that
// layouts written for pixel surfaces keep their proportions.
package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/go-drift/strata/pkg/engine"
	"github.com/go-drift/strata/pkg/events"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/render"
)

// ColorMode selects how colors reach the terminal.
type ColorMode int

const (
	// ColorAuto follows the terminal's advertised color profile.
	ColorAuto ColorMode = iota
	// ColorTrue always sends 24-bit colors.
	ColorTrue
	// ColorNone draws in the terminal's default colors only.
	ColorNone
)

// Options configures a Driver.
type Options struct {
	// CellWidth and CellHeight give the logical size of one cell. Zero
	// values match the width and line height of the default font.
	CellWidth  float64
	CellHeight float64
	Colors     ColorMode
	Logger     zerolog.Logger
}

const (
	defaultCellWidth  = 14 * 0.6
	defaultCellHeight = 14 * 1.2
	eventBuffer       = 256
	wheelStep         = 3
)

// Driver implements engine.Driver on a tcell screen.
type Driver struct {
	screen  tcell.Screen
	surface *Surface
	cell    graphics.Size
	logger  zerolog.Logger

	evCh    chan tcell.Event
	done    chan struct{}
	buttons tcell.ButtonMask
	pointer graphics.Vec2
	hasPtr  bool

	closeOnce sync.Once
}

var _ engine.Driver = (*Driver)(nil)

// New initializes screen and starts reading its events. A nil screen opens
// the controlling terminal.
func New(screen tcell.Screen, opts Options) (*Driver, error) {
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, err
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.EnablePaste()
	screen.Clear()

	cell := graphics.Size{Width: opts.CellWidth, Height: opts.CellHeight}
	if cell.Width <= 0 {
		cell.Width = defaultCellWidth
	}
	if cell.Height <= 0 {
		cell.Height = defaultCellHeight
	}

	monochrome := opts.Colors == ColorNone
	if opts.Colors == ColorAuto {
		monochrome = termenv.EnvColorProfile() == termenv.Ascii
	}

	d := &Driver{
		screen:  screen,
		surface: newSurface(screen, cell, monochrome),
		cell:    cell,
		logger:  opts.Logger,
		evCh:    make(chan tcell.Event, eventBuffer),
		done:    make(chan struct{}),
	}
	cols, rows := screen.Size()
	d.logger.Debug().
		Int("cols", cols).
		Int("rows", rows).
		Bool("monochrome", monochrome).
		Msg("terminal ready")

	go d.poll()
	return d, nil
}

// poll forwards screen events until the screen is finalized.
func (d *Driver) poll() {
	defer close(d.evCh)
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case d.evCh <- ev:
		case <-d.done:
			return
		}
	}
}

// Surface returns the cell surface.
func (d *Driver) Surface() render.Surface { return d.surface }

// Size returns the screen size in logical units.
func (d *Driver) Size() graphics.Size { return d.surface.Size() }

// Present flushes changed cells to the terminal.
func (d *Driver) Present() error {
	d.screen.Show()
	return nil
}

// Close restores the terminal. It is safe to call more than once.
func (d *Driver) Close() {
	d.closeOnce.Do(func() {
		close(d.done)
		d.screen.Fini()
	})
}

// PollEvents translates every queued terminal event. Ctrl+C and a closed
// screen report engine.ErrQuit.
func (d *Driver) PollEvents() ([]events.Event, error) {
	var out []events.Event
	for {
		select {
		case ev, ok := <-d.evCh:
			if !ok {
				return out, engine.ErrQuit
			}
			var quit bool
			out, quit = d.translate(out, ev)
			if quit {
				return out, engine.ErrQuit
			}
		default:
			return out, nil
		}
	}
}

func (d *Driver) translate(out []events.Event, ev tcell.Event) ([]events.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		d.screen.Sync()
		cols, rows := ev.Size()
		d.logger.Debug().Int("cols", cols).Int("rows", rows).Msg("terminal resized")
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return out, true
		}
		return d.translateKey(out, ev), false
	case *tcell.EventMouse:
		return d.translateMouse(out, ev), false
	}
	return out, false
}

func (d *Driver) translateKey(out []events.Event, ev *tcell.EventKey) []events.Event {
	mods := modifiers(ev.Modifiers())
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			out = append(out, events.KeyPress(events.KeySpace, mods), events.KeyRelease(events.KeySpace, mods))
		}
		return append(out, events.Char(string(r)))
	}
	key := keyFor(ev.Key())
	if ev.Key() == tcell.KeyBacktab {
		mods.Shift = true
	}
	if key == events.KeyUnknown {
		d.logger.Trace().Str("key", ev.Name()).Msg("unmapped key")
		return out
	}
	return append(out, events.KeyPress(key, mods), events.KeyRelease(key, mods))
}

func keyFor(k tcell.Key) events.Key {
	switch k {
	case tcell.KeyEnter:
		return events.KeyEnter
	case tcell.KeyEscape:
		return events.KeyEscape
	case tcell.KeyTab, tcell.KeyBacktab:
		return events.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return events.KeyBackspace
	case tcell.KeyDelete:
		return events.KeyDelete
	case tcell.KeyLeft:
		return events.KeyArrowLeft
	case tcell.KeyRight:
		return events.KeyArrowRight
	case tcell.KeyUp:
		return events.KeyArrowUp
	case tcell.KeyDown:
		return events.KeyArrowDown
	case tcell.KeyHome:
		return events.KeyHome
	case tcell.KeyEnd:
		return events.KeyEnd
	case tcell.KeyPgUp:
		return events.KeyPageUp
	case tcell.KeyPgDn:
		return events.KeyPageDown
	}
	return events.KeyUnknown
}

func modifiers(m tcell.ModMask) events.Modifiers {
	return events.Modifiers{
		Shift: m&tcell.ModShift != 0,
		Ctrl:  m&tcell.ModCtrl != 0,
		Alt:   m&tcell.ModAlt != 0,
		Meta:  m&tcell.ModMeta != 0,
	}
}

var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button events.MouseButton
}{
	{tcell.Button1, events.ButtonLeft},
	{tcell.Button2, events.ButtonRight},
	{tcell.Button3, events.ButtonMiddle},
}

// translateMouse turns tcell's button state snapshots into edge events.
// Positions land on the center of the reported cell.
func (d *Driver) translateMouse(out []events.Event, ev *tcell.EventMouse) []events.Event {
	col, row := ev.Position()
	pos := graphics.Vec2{
		X: (float64(col) + 0.5) * d.cell.Width,
		Y: (float64(row) + 0.5) * d.cell.Height,
	}
	mods := modifiers(ev.Modifiers())
	mask := ev.Buttons()

	if !d.hasPtr || pos != d.pointer {
		e := events.Pointer(events.MouseMove, pos.X, pos.Y)
		e.Modifiers = mods
		out = append(out, e)
		d.pointer, d.hasPtr = pos, true
	}

	for _, b := range mouseButtons {
		was, is := d.buttons&b.mask != 0, mask&b.mask != 0
		if was == is {
			continue
		}
		kind := events.MouseDown
		if was {
			kind = events.MouseUp
		}
		e := events.Pointer(kind, pos.X, pos.Y)
		e.Button = b.button
		e.Modifiers = mods
		out = append(out, e)
	}
	d.buttons = mask & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	switch {
	case mask&tcell.WheelUp != 0:
		out = append(out, events.Wheel(pos.X, pos.Y, 0, -wheelStep*d.cell.Height))
	case mask&tcell.WheelDown != 0:
		out = append(out, events.Wheel(pos.X, pos.Y, 0, wheelStep*d.cell.Height))
	case mask&tcell.WheelLeft != 0:
		out = append(out, events.Wheel(pos.X, pos.Y, -wheelStep*d.cell.Width, 0))
	case mask&tcell.WheelRight != 0:
		out = append(out, events.Wheel(pos.X, pos.Y, wheelStep*d.cell.Width, 0))
	}
	return out
}
