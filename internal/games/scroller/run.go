package scroller

import "github.com/vovakirdan/tui-scroller/internal/config"

// RunState is the per-game state that survives across lives.
type RunState struct {
	Lives           int
	Score           int
	Level           int
	SpeedMultiplier float64
	CountMultiplier float64
	HighScore       int // Best score seen this session, seeded from the store
}

// NewRunState returns the state of a fresh game.
func NewRunState(prog config.ProgressionConfig, highScore int) RunState {
	return RunState{
		Lives:           prog.Lives,
		Score:           0,
		Level:           1,
		SpeedMultiplier: prog.StartSpeed,
		CountMultiplier: prog.StartCount,
		HighScore:       highScore,
	}
}

// ExtraLives returns the lives beyond the one being played.
func (r RunState) ExtraLives() int {
	if r.Lives <= 1 {
		return 0
	}
	return r.Lives - 1
}

// Outcome is what a life reports back to the session when it ends.
type Outcome struct {
	Lost            bool
	Score           int
	SpeedMultiplier float64
	HighScore       int
	Level           int
	CountMultiplier float64
}

// Outcome snapshots the run as the result of a life.
func (r RunState) Outcome(lost bool) Outcome {
	return Outcome{
		Lost:            lost,
		Score:           r.Score,
		SpeedMultiplier: r.SpeedMultiplier,
		HighScore:       r.HighScore,
		Level:           r.Level,
		CountMultiplier: r.CountMultiplier,
	}
}

// Event is a notable thing that happened during a tick.
type Event int

const (
	EventJumped Event = iota
	EventLifeLost
	EventLevelUp
	EventGameOver
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventJumped:
		return "jumped"
	case EventLifeLost:
		return "life_lost"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EventSink receives the events of every tick, e.g. to play sounds.
type EventSink interface {
	HandleEvents(events []Event)
}
