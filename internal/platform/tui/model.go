package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-scroller/internal/core"
	"github.com/vovakirdan/tui-scroller/internal/games/scroller"
	"github.com/vovakirdan/tui-scroller/internal/storage"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one player's session.
type Model struct {
	session  *scroller.Session
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	name     textinput.Model
	input    core.InputFrame
	interval time.Duration
	sink     scroller.EventSink
	logger   *log.Logger
	shotDir  string
	width    int
	height   int
	quitting bool
}

// ModelOption configures a model.
type ModelOption func(*Model)

// WithEventSink forwards tick events, e.g. to the sound manager.
func WithEventSink(sink scroller.EventSink) ModelOption {
	return func(m *Model) { m.sink = sink }
}

// WithLogger sets the model logger.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithScreenshotDir sets where Ctrl+S writes screen dumps.
// Without it screenshots are disabled.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) { m.shotDir = dir }
}

// DefaultScreenshotDir returns ~/.scroller/screenshots, or "" without a home directory.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".scroller", "screenshots")
}

// NewModel creates a model for session sized from cfg until the first resize.
func NewModel(session *scroller.Session, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	name := textinput.New()
	name.CharLimit = storage.MaxNameLength
	name.Prompt = ""
	name.Placeholder = storage.AnonymousName

	m := Model{
		session:  session,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		name:     name,
		input:    core.NewInputFrame(),
		interval: cfg.TickInterval(),
		logger:   log.New(io.Discard),
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
	}
	for _, opt := range opts {
		opt(&m)
	}
	w, h := m.playfield()
	m.screen = core.NewScreen(w, h)
	session.Resize(w, h)
	return m
}

// playfield returns the grid size left after the help line.
func (m Model) playfield() (int, int) {
	return m.width, core.Max(1, m.height-helpHeight)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.session.AwaitingName() {
			return m.handleNameKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		w, h := m.playfield()
		m.screen.Resize(w, h)
		m.session.Resize(w, h)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	if m.name.Focused() {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input outside name entry.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionConfirm:
		if !m.session.Ticking() {
			m.session.Confirm()
		}
	case core.ActionPause:
		m.session.TogglePause()
	case core.ActionNone:
	default:
		if m.session.Ticking() {
			m.input.Set(action)
		}
	}
	return m, nil
}

// handleNameKey feeds the name field; Enter submits it.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		if err := m.session.SubmitName(m.name.Value()); err != nil {
			m.logger.Debug("name submission failed", "err", err)
		}
		m.name.Blur()
		m.name.Reset()
		return m, nil
	}

	if !m.name.Focused() {
		m.name.Focus()
	}
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	m.session.SetNameDraft(m.name.Value())
	return m, cmd
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(m.interval)}

	if m.session.Ticking() {
		events := m.session.Tick(m.input)
		m.input.Clear()
		if m.sink != nil && len(events) > 0 {
			m.sink.HandleEvents(events)
		}
	}

	if m.session.AwaitingName() && !m.name.Focused() {
		m.name.Reset()
		cmds = append(cmds, m.name.Focus())
	}
	return m, tea.Batch(cmds...)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	m.session.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}
	filename := fmt.Sprintf("scroller_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.session.Phase() == scroller.PhaseHighScores {
		w, h := m.playfield()
		body = renderBoard(m.session.Board(), w, h)
	} else {
		m.session.Render(m.screen)
		body = RenderScreen(m.screen)
	}
	return body + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Quitting reports whether the user asked to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for session.
func Run(session *scroller.Session, cfg core.RuntimeConfig, opts ...ModelOption) error {
	p := tea.NewProgram(
		NewModel(session, cfg, opts...),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
