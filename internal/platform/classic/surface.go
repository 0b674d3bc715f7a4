// Package classic runs the scroller on a raw tcell screen with a poll-driven loop.
// Key polling never blocks during play; name entry switches to blocking line input.
package classic

import (
	"context"
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-scroller/internal/core"
)

// ErrInterrupted is returned by blocking input when the user presses Ctrl+C or Esc.
var ErrInterrupted = errors.New("classic: input interrupted")

// ErrClosed is returned by blocking input after Close.
var ErrClosed = errors.New("classic: surface closed")

// colorStyles maps core colors to tcell styles.
var colorStyles = map[core.Color]tcell.Style{
	core.ColorDefault:     tcell.StyleDefault,
	core.ColorRed:         tcell.StyleDefault.Foreground(tcell.ColorMaroon),
	core.ColorGreen:       tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorYellow:      tcell.StyleDefault.Foreground(tcell.ColorOlive),
	core.ColorBlue:        tcell.StyleDefault.Foreground(tcell.ColorNavy),
	core.ColorMagenta:     tcell.StyleDefault.Foreground(tcell.ColorPurple),
	core.ColorCyan:        tcell.StyleDefault.Foreground(tcell.ColorTeal),
	core.ColorWhite:       tcell.StyleDefault.Foreground(tcell.ColorSilver),
	core.ColorBrightWhite: tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	core.ColorOrange:      tcell.StyleDefault.Foreground(tcell.ColorOrange),
	core.ColorGray:        tcell.StyleDefault.Foreground(tcell.ColorGray),
	core.ColorDarkGray:    tcell.StyleDefault.Foreground(tcell.ColorDimGray),
}

// Surface is the display and keyboard of the classic frontend.
// Events are pumped from tcell into a buffered channel by one goroutine.
type Surface struct {
	screen tcell.Screen
	events chan tcell.Event

	done      chan struct{}
	closeOnce sync.Once

	resized bool
}

// Open initializes the terminal.
func Open() (*Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewSurface(screen)
}

// NewSurface takes ownership of screen and initializes it.
func NewSurface(screen tcell.Screen) (*Surface, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.Clear()
	screen.HideCursor()

	s := &Surface{
		screen: screen,
		events: make(chan tcell.Event, 32),
		done:   make(chan struct{}),
	}
	go s.pump()
	return s, nil
}

func (s *Surface) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return // Screen finalized
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Close restores the terminal.
func (s *Surface) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.screen.Fini()
	})
}

// Size returns the terminal size in cells.
func (s *Surface) Size() (w, h int) {
	return s.screen.Size()
}

// TakeResize reports whether the terminal was resized since the last call.
func (s *Surface) TakeResize() bool {
	r := s.resized
	s.resized = false
	return r
}

// PollKey returns the next pending key press without blocking.
// Resize events are consumed and recorded for TakeResize.
func (s *Surface) PollKey() (*tcell.EventKey, bool) {
	for {
		select {
		case ev := <-s.events:
			if key := s.filter(ev); key != nil {
				return key, true
			}
		default:
			return nil, false
		}
	}
}

// WaitKey blocks until a key is pressed.
func (s *Surface) WaitKey(ctx context.Context) (*tcell.EventKey, error) {
	for {
		select {
		case ev := <-s.events:
			if key := s.filter(ev); key != nil {
				return key, nil
			}
		case <-s.done:
			return nil, ErrClosed
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (s *Surface) filter(ev tcell.Event) *tcell.EventKey {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return e
	case *tcell.EventResize:
		s.resized = true
		s.screen.Sync()
	}
	return nil
}

// ReadLine reads a line at (x, y) with a visible cursor, up to maxLen runes.
// onChange is called with the current text after every edit so the caller can redraw.
// Enter accepts; Esc or Ctrl+C returns ErrInterrupted.
func (s *Surface) ReadLine(ctx context.Context, x, y, maxLen int, onChange func(string)) (string, error) {
	var buf []rune
	s.ShowCursor(x, y)
	defer s.HideCursor()

	for {
		key, err := s.WaitKey(ctx)
		if err != nil {
			return string(buf), err
		}

		switch key.Key() {
		case tcell.KeyEnter:
			return string(buf), nil
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return string(buf), ErrInterrupted
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case tcell.KeyRune:
			if len(buf) < maxLen {
				buf = append(buf, key.Rune())
			}
		default:
			continue
		}

		if onChange != nil {
			onChange(string(buf))
		}
		s.ShowCursor(x+len(buf), y)
	}
}

// ShowCursor places a visible cursor at (x, y).
func (s *Surface) ShowCursor(x, y int) {
	s.screen.ShowCursor(x, y)
	s.screen.Show()
}

// HideCursor hides the cursor.
func (s *Surface) HideCursor() {
	s.screen.HideCursor()
	s.screen.Show()
}

// Draw copies a frame onto the terminal and shows it.
func (s *Surface) Draw(frame *core.Screen) {
	w, h := s.screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := frame.GetCell(x, y)
			style, ok := colorStyles[cell.Color]
			if !ok {
				style = tcell.StyleDefault
			}
			s.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	s.screen.Show()
}
