package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-scroller/internal/config"
	"github.com/vovakirdan/tui-scroller/internal/core"
	"github.com/vovakirdan/tui-scroller/internal/games/scroller"
	"github.com/vovakirdan/tui-scroller/internal/storage"
)

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T, opts ...ModelOption) (Model, *scroller.Session) {
	t.Helper()
	store := storage.NewFileStore(filepath.Join(t.TempDir(), "high_scores.txt"))
	rt := core.DefaultConfig()
	rt.Seed = 7
	session := scroller.NewSession(config.DefaultScrollerConfig(), rt, store)
	return NewModel(session, rt, opts...), session
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

type countingSink struct {
	batches int
}

func (c *countingSink) HandleEvents([]scroller.Event) { c.batches++ }

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space jumps", runeMsg(' '), core.ActionJump},
		{"w jumps", runeMsg('w'), core.ActionJump},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"a moves left", runeMsg('a'), core.ActionLeft},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d moves right", runeMsg('d'), core.ActionRight},
		{"s holds", runeMsg('s'), core.ActionHold},
		{"down holds", tea.KeyMsg{Type: tea.KeyDown}, core.ActionHold},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"p pauses", runeMsg('p'), core.ActionPause},
		{"q quits", runeMsg('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeMsg('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawTextColor(2, 1, "hello", core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "hello") {
		t.Errorf("line 1 = %q, expected it to contain hello", lines[1])
	}
}

func TestRenderBoard(t *testing.T) {
	empty := renderBoard(nil, 80, 24)
	if !strings.Contains(empty, "No scores recorded yet.") {
		t.Errorf("empty board missing placeholder:\n%s", empty)
	}

	records := []storage.Record{
		{Score: 900, Name: "amy", Level: 3},
		{Score: 120, Name: "bo", Level: 1},
	}
	out := renderBoard(records, 80, 24)
	for _, want := range []string{"Top 10 High Scores", "amy", "900", "bo", "120"} {
		if !strings.Contains(out, want) {
			t.Errorf("board missing %q:\n%s", want, out)
		}
	}
}

func TestBoardRows(t *testing.T) {
	rows := boardRows([]storage.Record{{Score: 42, Name: "cat", Level: 2}})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	want := []string{"1.", "cat", "42", "2"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("cell %d = %q, expected %q", i, rows[0][i], cell)
		}
	}
}

func TestModelReservesHelpLine(t *testing.T) {
	m, _ := newTestModel(t)
	if m.screen.Width() != 80 || m.screen.Height() != 23 {
		t.Errorf("playfield = %dx%d, expected 80x23", m.screen.Width(), m.screen.Height())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("after resize playfield = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}

func TestModelTitleView(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()
	if !strings.Contains(view, "Press Enter to start") {
		t.Errorf("title view missing prompt:\n%s", view)
	}
	if !strings.Contains(view, "jump") {
		t.Errorf("view missing help line:\n%s", view)
	}
}

func TestModelStartTickAndPause(t *testing.T) {
	sink := &countingSink{}
	m, session := newTestModel(t, WithEventSink(sink))

	// Ticks before the run starts are ignored
	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("a tick should schedule the next one")
	}
	if session.Phase() != scroller.PhaseTitle {
		t.Fatalf("phase = %v, expected title", session.Phase())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if session.Phase() != scroller.PhasePlaying {
		t.Fatalf("phase = %v, expected playing", session.Phase())
	}

	m, _ = update(t, m, runeMsg('p'))
	if !session.Paused() {
		t.Fatal("p should pause")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should say PAUSED")
	}

	// Enter during play does not restart anything
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if session.Phase() != scroller.PhasePlaying {
		t.Fatalf("phase = %v, expected playing", session.Phase())
	}

	m, _ = update(t, m, runeMsg('p'))
	if session.Paused() {
		t.Fatal("second p should resume")
	}
	m, _ = update(t, m, runeMsg('d'))
	if !m.input.Has(core.ActionRight) {
		t.Error("d should be buffered for the next tick")
	}
	m, _ = update(t, m, TickMsg(time.Now()))
	if m.input.Has(core.ActionRight) {
		t.Error("input should be cleared after a tick")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)
	m, cmd := update(t, m, runeMsg('q'))
	if !m.Quitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	m, _ := newTestModel(t, WithScreenshotDir(dir))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 screenshot, got %d", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Press Enter to start") {
		t.Errorf("screenshot missing title text:\n%s", data)
	}
	if m.Quitting() {
		t.Error("screenshot should not quit")
	}
}

func TestModelScreenshotDisabled(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.shotDir != "" {
		t.Errorf("shotDir = %q, expected disabled", m.shotDir)
	}
}
