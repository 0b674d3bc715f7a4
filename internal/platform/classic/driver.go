package classic

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-scroller/internal/core"
	"github.com/vovakirdan/tui-scroller/internal/games/scroller"
	"github.com/vovakirdan/tui-scroller/internal/storage"
)

// idleSleep bounds how often the loop polls input between ticks.
const idleSleep = 5 * time.Millisecond

// MapKey translates a tcell key press into a game action.
func MapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyEnter:
		return core.ActionConfirm
	case tcell.KeyDown:
		return core.ActionHold
	case tcell.KeyUp:
		return core.ActionJump
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'w':
			return core.ActionJump
		case 'a':
			return core.ActionLeft
		case 'd':
			return core.ActionRight
		case 's':
			return core.ActionHold
		case 'p':
			return core.ActionPause
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

// Driver runs a session on a surface.
type Driver struct {
	surface *Surface
	session *scroller.Session
	pacer   *scroller.Pacer
	sink    scroller.EventSink
	logger  *log.Logger
	frame   *core.Screen
	input   core.InputFrame
}

// DriverOption configures a driver.
type DriverOption func(*Driver)

// WithEventSink forwards tick events, e.g. to the sound manager.
func WithEventSink(sink scroller.EventSink) DriverOption {
	return func(d *Driver) { d.sink = sink }
}

// WithLogger sets the driver logger.
func WithLogger(l *log.Logger) DriverOption {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithPacer replaces the wall-clock pacer, mainly for tests.
func WithPacer(p *scroller.Pacer) DriverOption {
	return func(d *Driver) {
		if p != nil {
			d.pacer = p
		}
	}
}

// NewDriver creates a driver ticking every interval.
func NewDriver(surface *Surface, session *scroller.Session, interval time.Duration, opts ...DriverOption) *Driver {
	w, h := surface.Size()
	d := &Driver{
		surface: surface,
		session: session,
		pacer:   scroller.NewPacer(interval, nil),
		logger:  log.New(io.Discard),
		frame:   core.NewScreen(w, h),
		input:   core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(d)
	}
	session.Resize(w, h)
	return d
}

// Run loops until the user quits or ctx is cancelled.
func (d *Driver) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		quit, err := d.Step(ctx)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		time.Sleep(idleSleep)
	}
}

// Step drains pending input, runs at most one tick and redraws.
// It reports whether the user asked to quit.
func (d *Driver) Step(ctx context.Context) (bool, error) {
	for {
		key, ok := d.surface.PollKey()
		if !ok {
			break
		}
		if d.handleKey(key) {
			return true, nil
		}
	}

	if d.surface.TakeResize() {
		w, h := d.surface.Size()
		d.frame.Resize(w, h)
		d.session.Resize(w, h)
	}

	if d.session.AwaitingName() {
		if err := d.readName(ctx); err != nil {
			if errors.Is(err, ErrInterrupted) {
				return true, nil
			}
			return false, err
		}
	}

	if d.session.Ticking() && d.pacer.Ready() {
		events := d.session.Tick(d.input)
		d.input.Clear()
		if d.sink != nil && len(events) > 0 {
			d.sink.HandleEvents(events)
		}
	}

	d.draw()
	return false, nil
}

func (d *Driver) handleKey(key *tcell.EventKey) bool {
	action := MapKey(key)
	switch action {
	case core.ActionQuit:
		return true
	case core.ActionConfirm:
		if !d.session.Ticking() {
			d.session.Confirm()
			d.pacer.Reset()
		}
	case core.ActionPause:
		d.session.TogglePause()
		d.pacer.Reset()
	case core.ActionNone:
	default:
		if d.session.Ticking() {
			d.input.Set(action)
		}
	}
	return false
}

// readName blocks in line-input mode until the name is entered.
func (d *Driver) readName(ctx context.Context) error {
	d.draw()
	x, y := scroller.NamePromptOrigin(d.frame.Width(), d.frame.Height())
	name, err := d.surface.ReadLine(ctx, x, y, storage.MaxNameLength, func(text string) {
		d.session.SetNameDraft(text)
		d.draw()
	})
	if err != nil {
		return err
	}
	if err := d.session.SubmitName(name); err != nil {
		// Already logged by the session; the leaderboard still shows
		d.logger.Debug("name submission failed", "err", err)
	}
	d.pacer.Reset()
	return nil
}

func (d *Driver) draw() {
	d.session.Render(d.frame)
	d.surface.Draw(d.frame)
}

// Play opens the terminal and runs session until the user quits.
func Play(ctx context.Context, session *scroller.Session, interval time.Duration, opts ...DriverOption) error {
	surface, err := Open()
	if err != nil {
		return err
	}
	defer surface.Close()

	return NewDriver(surface, session, interval, opts...).Run(ctx)
}
