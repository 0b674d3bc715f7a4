// Package config provides YAML-based game configuration loading and
// level progression for the scroller.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-scroller/internal/core"
)

// ScrollerConfig contains all tunables of the scroller.
type ScrollerConfig struct {
	Timing      TimingConfig      `yaml:"timing"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Player      PlayerConfig      `yaml:"player"`
	Obstacles   ObstacleConfig    `yaml:"obstacles"`
	Structures  StructureConfig   `yaml:"structures"`
	Scenery     SceneryConfig     `yaml:"scenery"`
	Progression ProgressionConfig `yaml:"progression"`
}

// TimingConfig defines simulation pacing.
type TimingConfig struct {
	TickMillis int `yaml:"tick_ms"` // Wall-clock gate between simulated ticks
}

// Interval returns the tick gate as a duration, or core.DefaultTick when unset.
func (t TimingConfig) Interval() time.Duration {
	if t.TickMillis <= 0 {
		return core.DefaultTick
	}
	return time.Duration(t.TickMillis) * time.Millisecond
}

// Runtime builds the runtime config for a w x h screen.
// A zero seed is replaced with one taken from the clock.
func (c ScrollerConfig) Runtime(w, h int, seed int64) core.RuntimeConfig {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW: w,
		ScreenH: h,
		Tick:    c.Timing.Interval(),
		Seed:    seed,
	}
}

// PhysicsConfig defines player physics and world scroll speed.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Added to vertical velocity every tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity set by a jump (negative = up)
	BaseSpeed   float64 `yaml:"base_speed"`   // Scroll speed at multiplier 1.0
}

// PlayerConfig defines the player's footprint and spawn column.
type PlayerConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	StartDivisor int `yaml:"start_divisor"` // Spawn column is screen width / divisor
}

// ObstacleConfig defines obstacle spawning.
type ObstacleConfig struct {
	Gap                int             `yaml:"gap"`                 // Nominal spacing between obstacle waves
	SpawnChance        float64         `yaml:"spawn_chance"`        // Roll gating a new wave
	MinSpacing         int             `yaml:"min_spacing"`         // Minimum distance to another obstacle
	StructureClearance int             `yaml:"structure_clearance"` // Minimum distance to a structure
	TopMargin          int             `yaml:"top_margin"`          // Lowest spawn row
	BottomMargin       int             `yaml:"bottom_margin"`       // Highest spawn row is height - margin
	Weights            ObstacleWeights `yaml:"weights"`
}

// ObstacleWeights are the probabilities of each obstacle kind. They should sum to 1.
type ObstacleWeights struct {
	Small      float64 `yaml:"small"`
	Large      float64 `yaml:"large"`
	Decorative float64 `yaml:"decorative"`
}

// StructureConfig defines the solid structures appearing from level 2.
type StructureConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	GroundOffset int     `yaml:"ground_offset"` // Top row is screen height - offset
	MinLevel     int     `yaml:"min_level"`
	BaseChance   float64 `yaml:"base_chance"`
	ChanceStep   float64 `yaml:"chance_step"` // Added per level above min_level + 1
	Clearance    int     `yaml:"clearance"`   // Distance from the right edge before another may spawn
}

// SceneryConfig defines the purely visual layers.
type SceneryConfig struct {
	GrassChance     float64 `yaml:"grass_chance"`
	GrassGapFactor  float64 `yaml:"grass_gap_factor"` // Fraction of the obstacle gap between grass tufts
	GrassInset      int     `yaml:"grass_inset"`      // Spawn column is screen width - inset
	StarCount       int     `yaml:"star_count"`
	StarSpeed       float64 `yaml:"star_speed"`
	MountainSpeed   float64 `yaml:"mountain_speed"`
	MountainSpacing int     `yaml:"mountain_spacing"`
	MountainEvery   int     `yaml:"mountain_every"`  // Mountains show on levels divisible by this
	MountainOffset  int     `yaml:"mountain_offset"` // Mountain row is screen height - offset
}

// ProgressionConfig defines lives and level-up scaling.
type ProgressionConfig struct {
	Lives           int     `yaml:"lives"`
	LevelEvery      int     `yaml:"level_every"`  // Score interval between level-ups
	SpeedFactor     float64 `yaml:"speed_factor"` // Speed multiplier growth per level
	CountFactor     float64 `yaml:"count_factor"` // Count multiplier growth per level
	StartSpeed      float64 `yaml:"start_speed"`
	StartCount      float64 `yaml:"start_count"`
	MaxScoreRecords int     `yaml:"max_score_records"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// The empty string means "use the loaded config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Validate reports configuration values the simulation cannot run with.
func (c ScrollerConfig) Validate() error {
	var errs []error
	if c.Timing.TickMillis <= 0 {
		errs = append(errs, errors.New("timing.tick_ms must be positive"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Player.StartDivisor <= 0 {
		errs = append(errs, errors.New("player.start_divisor must be positive"))
	}
	if c.Obstacles.Gap <= 0 {
		errs = append(errs, errors.New("obstacles.gap must be positive"))
	}
	if c.Structures.Width <= 0 || c.Structures.Height <= 0 {
		errs = append(errs, errors.New("structure size must be positive"))
	}
	if c.Scenery.StarCount < 0 {
		errs = append(errs, errors.New("scenery.star_count must not be negative"))
	}
	if c.Scenery.MountainEvery <= 0 || c.Scenery.MountainSpacing <= 0 {
		errs = append(errs, errors.New("mountain cadence and spacing must be positive"))
	}
	if c.Progression.Lives <= 0 {
		errs = append(errs, errors.New("progression.lives must be positive"))
	}
	if c.Progression.LevelEvery <= 0 {
		errs = append(errs, errors.New("progression.level_every must be positive"))
	}
	if c.Progression.MaxScoreRecords <= 0 {
		errs = append(errs, errors.New("progression.max_score_records must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
