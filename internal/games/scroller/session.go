// Package scroller implements the ASCII side-scroller: a runner who jumps
// and sidesteps scrolling obstacles and structures while the world speeds up
// every level, plus the menu flow around it and a persistent top-10 table.
//
// Session is UI-agnostic. Frontends feed it input frames at the tick rate,
// forward Enter presses and typed names, and draw it into a core.Screen.
package scroller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-scroller/internal/config"
	"github.com/vovakirdan/tui-scroller/internal/core"
	"github.com/vovakirdan/tui-scroller/internal/storage"
)

// Phase is the screen the session is showing.
type Phase int

const (
	PhaseTitle      Phase = iota // Title banner, waiting for Enter
	PhasePlaying                 // Simulation running
	PhaseLevelUp                 // Level-up banner, simulation frozen
	PhaseLifeLost                // Life lost with more than one left
	PhaseLastLife                // Life lost, one left
	PhaseGameOver                // Final score and optional name entry
	PhaseHighScores              // Leaderboard
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhaseLevelUp:
		return "level_up"
	case PhaseLifeLost:
		return "life_lost"
	case PhaseLastLife:
		return "last_life"
	case PhaseGameOver:
		return "game_over"
	case PhaseHighScores:
		return "high_scores"
	default:
		return "unknown"
	}
}

// Session drives title, play, modal screens and the leaderboard for one player.
// It is not safe for concurrent use; each frontend owns one session.
type Session struct {
	cfg    config.ScrollerConfig
	levels *config.LevelManager
	rt     core.RuntimeConfig
	rng    core.Rand
	store  storage.Store
	logger *log.Logger
	now    func() time.Time

	phase  Phase
	run    RunState
	life   *Life
	paused bool

	best      int // Personal high score, carried across games
	board     []storage.Record
	qualifies bool
	submitted bool
	nameDraft string

	runID     string
	startedAt time.Time
	endedAt   time.Time
}

// SessionOption configures a session.
type SessionOption func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRand replaces the seeded random source.
func WithRand(r core.Rand) SessionOption {
	return func(s *Session) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithClock sets the time source used for run durations.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSession creates a session on the title screen.
// The personal high score starts at the store's best entry.
func NewSession(cfg config.ScrollerConfig, rt core.RuntimeConfig, store storage.Store, opts ...SessionOption) *Session {
	s := &Session{
		cfg:    cfg,
		levels: config.NewLevelManager(cfg),
		rt:     rt,
		rng:    core.NewRand(rt.Seed),
		store:  store,
		logger: log.New(io.Discard),
		now:    time.Now,
		phase:  PhaseTitle,
	}
	for _, opt := range opts {
		opt(s)
	}

	if records, err := s.store.Load(); err != nil {
		s.logger.Warn("cannot load high scores", "err", err)
	} else {
		s.board = records
		s.best = storage.Best(records)
	}
	return s
}

// Phase returns the current screen.
func (s *Session) Phase() Phase {
	return s.phase
}

// Run returns the state of the current game.
func (s *Session) Run() RunState {
	return s.run
}

// Life returns the running life, or nil outside a game.
func (s *Session) Life() *Life {
	return s.life
}

// RunID identifies the current game in logs and the SQLite history.
func (s *Session) RunID() string {
	return s.runID
}

// Board returns the last loaded leaderboard.
func (s *Session) Board() []storage.Record {
	return s.board
}

// Paused reports whether play is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// TogglePause pauses or resumes play. It has no effect outside play.
func (s *Session) TogglePause() {
	if s.phase == PhasePlaying {
		s.paused = !s.paused
	}
}

// Resize adapts the session and the running life to a new screen size.
func (s *Session) Resize(w, h int) {
	s.rt.ScreenW, s.rt.ScreenH = w, h
	if s.life != nil {
		s.life.Resize(w, h)
	}
}

// Ticking reports whether the session consumes ticks right now.
func (s *Session) Ticking() bool {
	return s.phase == PhasePlaying && !s.paused
}

// Tick advances play by one simulation step. Outside play, or while paused, it does nothing.
func (s *Session) Tick(in core.InputFrame) []Event {
	if !s.Ticking() || s.life == nil {
		return nil
	}

	res := s.life.Step(in)
	if res.LevelUp {
		s.logger.Info("level up", "run", s.runID, "level", s.run.Level, "score", s.run.Score)
		s.phase = PhaseLevelUp
	}
	if res.LifeLost {
		return append(res.Events, s.loseLife(res.Outcome)...)
	}
	return res.Events
}

func (s *Session) loseLife(out Outcome) []Event {
	s.run.Lives--
	if s.run.HighScore > s.best {
		s.best = s.run.HighScore
	}
	s.logger.Info("life lost", "run", s.runID, "score", out.Score, "level", out.Level, "lives", s.run.Lives)

	switch {
	case s.run.Lives <= 0:
		s.enterGameOver()
		return []Event{EventGameOver}
	case s.run.Lives == 1:
		s.phase = PhaseLastLife
	default:
		s.phase = PhaseLifeLost
	}
	return nil
}

// Confirm handles Enter on the current screen.
// It is ignored while a name is being entered.
func (s *Session) Confirm() {
	switch s.phase {
	case PhaseTitle:
		s.startRun()
	case PhaseLevelUp:
		s.phase = PhasePlaying
	case PhaseLifeLost, PhaseLastLife:
		s.startLife()
	case PhaseGameOver:
		if s.AwaitingName() {
			return
		}
		s.reloadBoard()
		s.phase = PhaseHighScores
	case PhaseHighScores:
		s.life = nil
		s.phase = PhaseTitle
	}
}

// AwaitingName reports whether the game-over screen is asking for a name.
func (s *Session) AwaitingName() bool {
	return s.phase == PhaseGameOver && s.qualifies && !s.submitted
}

// SetNameDraft updates the name shown in the entry field while it is being typed.
func (s *Session) SetNameDraft(name string) {
	runes := []rune(name)
	if len(runes) > storage.MaxNameLength {
		runes = runes[:storage.MaxNameLength]
	}
	s.nameDraft = string(runes)
}

// SubmitName records the final score under name. Store failures are logged
// and returned, and the session moves on either way.
func (s *Session) SubmitName(name string) error {
	if !s.AwaitingName() {
		return nil
	}
	s.submitted = true
	s.nameDraft = ""

	rec := storage.Record{
		Score: s.run.Score,
		Name:  storage.SanitizeName(name),
		Level: s.run.Level,
		RunID: s.runID,
	}
	s.recordRun(rec.Name)
	board, err := s.store.Update(rec)
	if err != nil {
		s.logger.Error("cannot save high score", "run", s.runID, "err", err)
		return fmt.Errorf("scroller: save high score: %w", err)
	}
	s.board = board
	s.logger.Info("high score saved", "run", s.runID, "name", rec.Name, "score", rec.Score)
	return nil
}

func (s *Session) startRun() {
	s.run = NewRunState(s.cfg.Progression, s.best)
	s.runID = uuid.NewString()
	s.startedAt = s.now()
	s.qualifies = false
	s.submitted = false
	s.nameDraft = ""
	s.logger.Info("run started", "run", s.runID, "seed", s.rt.Seed, "lives", s.run.Lives)
	s.startLife()
}

func (s *Session) startLife() {
	s.life = NewLife(&s.cfg, s.levels, s.rng, s.rt, &s.run)
	s.paused = false
	s.phase = PhasePlaying
}

func (s *Session) enterGameOver() {
	s.phase = PhaseGameOver
	s.reloadBoard()
	s.qualifies = storage.Qualifies(s.board, s.run.Score)
	s.submitted = false
	s.endedAt = s.now()

	// Qualifying runs are recorded once the player has named them
	if !s.qualifies {
		s.recordRun("")
	}
	s.logger.Info("game over", "run", s.runID, "score", s.run.Score, "level", s.run.Level, "qualifies", s.qualifies)
}

func (s *Session) recordRun(name string) {
	rr, ok := s.store.(storage.RunRecorder)
	if !ok {
		return
	}
	err := rr.RecordRun(storage.Run{
		ID:       s.runID,
		Name:     name,
		Score:    s.run.Score,
		Level:    s.run.Level,
		Duration: s.endedAt.Sub(s.startedAt),
	})
	if err != nil {
		s.logger.Error("cannot record run", "run", s.runID, "err", err)
	}
}

func (s *Session) reloadBoard() {
	records, err := s.store.Load()
	if err != nil {
		s.logger.Warn("cannot load high scores", "err", err)
		return
	}
	s.board = records
}

// Render draws the current screen.
func (s *Session) Render(dst *core.Screen) {
	switch s.phase {
	case PhaseTitle:
		s.renderTitle(dst)
	case PhasePlaying:
		if s.life != nil {
			s.life.Render(dst)
		}
		if s.paused {
			drawCenteredMessage(dst, "PAUSED", "Press P to resume")
		}
	case PhaseLevelUp:
		s.renderLevelUp(dst)
	case PhaseLifeLost:
		s.renderLifeLost(dst)
	case PhaseLastLife:
		s.renderLastLife(dst)
	case PhaseGameOver:
		s.renderGameOver(dst)
	case PhaseHighScores:
		s.renderHighScores(dst)
	}
}

func (s *Session) renderTitle(dst *core.Screen) {
	cx, cy := dst.Width()/2, dst.Height()/2
	dst.Clear()
	dst.DrawLines(cx-25, cy-7, titleBanner, colorBanner)
	dst.DrawLines(cx+20, cy-5, controlsBox, colorHUD)
	dst.DrawTextColor(cx-10, cy+4, "Press Enter to start", colorPrompt)
}

func (s *Session) renderLevelUp(dst *core.Screen) {
	cx, cy := dst.Width()/2, dst.Height()/2
	dst.Clear()
	dst.DrawLines(cx-30, cy-5, levelUpBanner, colorBanner)
	dst.DrawTextColor(cx-10, cy+5, fmt.Sprintf("Level %d - Press Enter to continue", s.run.Level), colorPrompt)
}

func (s *Session) renderLifeLost(dst *core.Screen) {
	cx, cy := dst.Width()/2, dst.Height()/2
	dst.Clear()
	dst.DrawLines(cx-30, cy-3, lifeLostBanner, colorBanner)
	dst.DrawTextColor(cx-10, cy+6, fmt.Sprintf("Lives remaining: %d", s.run.Lives), colorPrompt)
	dst.DrawTextColor(cx-10, cy+8, "Press Enter to continue", colorPrompt)
}

func (s *Session) renderLastLife(dst *core.Screen) {
	cx, cy := dst.Width()/2, dst.Height()/2
	dst.Clear()
	dst.DrawLines(cx-30, cy-5, lastLifeBanner, core.ColorRed)
	dst.DrawTextColor(cx-10, cy+1, "Press Enter to continue", colorPrompt)
}

// NamePromptOrigin returns where the name entry field starts on a screen of the given size.
func NamePromptOrigin(w, h int) (x, y int) {
	return w/2 - 10, h/2 + 9
}

func (s *Session) renderGameOver(dst *core.Screen) {
	cx, cy := dst.Width()/2, dst.Height()/2
	dst.Clear()
	dst.DrawLines(cx-30, cy-7, gameOverBanner, core.ColorRed)
	dst.DrawTextColor(cx-10, cy+5, fmt.Sprintf("Final Score: %d", s.run.Score), colorPrompt)
	dst.DrawTextColor(cx-10, cy+6, fmt.Sprintf("Personal High Score: %d", s.best), colorPrompt)

	if s.AwaitingName() {
		dst.DrawTextColor(cx-10, cy+8, "New High Score! Enter your name: ", colorHUD)
		x, y := NamePromptOrigin(dst.Width(), dst.Height())
		field := s.nameDraft + strings.Repeat("_", storage.MaxNameLength-len([]rune(s.nameDraft)))
		dst.DrawTextColor(x, y, field, core.ColorBrightWhite)
		return
	}
	dst.DrawTextColor(cx-10, cy+11, "Press Enter to view High Scores", colorPrompt)
}

func (s *Session) renderHighScores(dst *core.Screen) {
	cx, cy := dst.Width()/2, dst.Height()/2
	dst.Clear()
	dst.DrawLines(cx-30, cy-7, leaderboardBanner, colorBanner)
	dst.DrawTextColor(cx-10, cy, "Top 10 High Scores", colorHUD)
	for i, line := range BoardLines(s.board) {
		dst.DrawTextColor(cx-10, cy+i+1, line, colorPrompt)
	}
	dst.DrawTextColor(cx-10, cy+13, "Press Enter to return to the main menu", colorPrompt)
}

// BoardLines formats the leaderboard rows as "N. name - score (Level L)".
func BoardLines(records []storage.Record) []string {
	lines := make([]string, 0, len(records))
	for i, r := range records {
		lines = append(lines, fmt.Sprintf("%d. %s - %d (Level %d)", i+1, r.Name, r.Score, r.Level))
	}
	return lines
}
