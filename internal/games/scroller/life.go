package scroller

import (
	"github.com/vovakirdan/tui-scroller/internal/config"
	"github.com/vovakirdan/tui-scroller/internal/core"
)

// StepResult reports the effects of one tick.
type StepResult struct {
	LifeLost bool
	LevelUp  bool
	Events   []Event
	Outcome  Outcome // Valid when LifeLost is set
}

// Life simulates one life-attempt, from spawn to the first fatal hit.
// Step is deterministic given the random source and the input frames.
type Life struct {
	cfg     *config.ScrollerConfig
	levels  *config.LevelManager
	physics *Physics
	world   *World
	run     *RunState

	player Player
	intent core.Action
	lost   bool
	ticks  int
}

// NewLife spawns the player on the ground at a sixth of the screen width.
// run is shared with the caller and updated in place.
func NewLife(cfg *config.ScrollerConfig, levels *config.LevelManager, rng core.Rand, rt core.RuntimeConfig, run *RunState) *Life {
	pc := cfg.Player
	l := &Life{
		cfg:     cfg,
		levels:  levels,
		physics: NewPhysics(cfg, rt.ScreenW, rt.ScreenH),
		world:   NewWorld(cfg, levels, rng, rt.ScreenW, rt.ScreenH, run.Level),
		run:     run,
		player: Player{
			X: rt.ScreenW / pc.StartDivisor,
			W: pc.Width,
			H: pc.Height,
		},
	}
	l.player.Y = l.physics.Floor(l.player)
	return l
}

// Player returns the player's current state.
func (l *Life) Player() Player {
	return l.player
}

// World returns the entities of this life.
func (l *Life) World() *World {
	return l.world
}

// Lost reports whether the life has ended.
func (l *Life) Lost() bool {
	return l.lost
}

// Ticks returns the number of simulated ticks.
func (l *Life) Ticks() int {
	return l.ticks
}

// Resize adapts the playfield to a new screen size.
func (l *Life) Resize(w, h int) {
	l.physics.Resize(w, h)
	l.world.Resize(w, h)
	l.player.X = core.Clamp(l.player.X, 0, core.Max(0, w-l.player.W))
	l.player.Y = core.ClampF(l.player.Y, 0, float64(core.Max(0, h-l.player.H-1)))
}

// Step advances the life by one tick using the actions collected since the last tick.
func (l *Life) Step(in core.InputFrame) StepResult {
	if l.lost {
		return StepResult{LifeLost: true, Outcome: l.run.Outcome(true)}
	}

	var res StepResult
	l.ticks++

	if in.Has(core.ActionJump) && l.physics.Jump(&l.player) {
		res.Events = append(res.Events, EventJumped)
	}
	l.intent = in.Direction()
	prevBottom := l.player.Bottom()

	l.physics.Integrate(&l.player)
	if l.physics.MoveHorizontal(&l.player, l.intent) {
		return l.lose(res)
	}

	l.world.Spawn(l.run.CountMultiplier, l.run.Level)
	l.world.UpdateBackground(l.run.Level)

	speed := l.world.ScrollSpeed(l.run.SpeedMultiplier)
	var hit bool
	l.world.Obstacles, hit = l.physics.ScrollObstacles(l.player, l.world.Obstacles, speed)
	if hit {
		return l.lose(res)
	}
	// A structure may push the player past the left edge; only walking off it is fatal
	l.world.Structures = l.physics.ScrollStructures(&l.player, prevBottom, l.world.Structures, speed, &l.intent)
	l.world.ScrollGrass(speed)

	l.run.Score++
	if l.run.Score > l.run.HighScore {
		l.run.HighScore = l.run.Score
	}

	if l.levels.ShouldLevelUp(l.run.Score) {
		l.run.SpeedMultiplier, l.run.CountMultiplier = l.levels.Advance(l.run.SpeedMultiplier, l.run.CountMultiplier)
		l.run.Level++
		l.world.SetLevel(l.run.Level)
		res.LevelUp = true
		res.Events = append(res.Events, EventLevelUp)
	}
	return res
}

func (l *Life) lose(res StepResult) StepResult {
	l.lost = true
	res.LifeLost = true
	res.Outcome = l.run.Outcome(true)
	res.Events = append(res.Events, EventLifeLost)
	return res
}
