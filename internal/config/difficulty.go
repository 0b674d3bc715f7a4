package config

import "math"

// LevelManager calculates level progression and the chances that depend on level.
type LevelManager struct {
	prog   ProgressionConfig
	struc  StructureConfig
	scenic SceneryConfig
}

// NewLevelManager creates a new level manager.
func NewLevelManager(cfg ScrollerConfig) *LevelManager {
	return &LevelManager{
		prog:   cfg.Progression,
		struc:  cfg.Structures,
		scenic: cfg.Scenery,
	}
}

// ShouldLevelUp reports whether reaching score triggers a level-up.
// Only positive multiples of the level interval qualify.
func (m *LevelManager) ShouldLevelUp(score int) bool {
	every := m.prog.LevelEvery
	if every <= 0 {
		return false
	}
	return score > 0 && score%every == 0
}

// Advance returns the multipliers after one level-up.
func (m *LevelManager) Advance(speed, count float64) (float64, float64) {
	return speed * m.prog.SpeedFactor, count * m.prog.CountFactor
}

// StructureChance returns the per-tick structure spawn probability for level.
// Below the minimum level it is zero.
func (m *LevelManager) StructureChance(level int) float64 {
	if level < m.struc.MinLevel {
		return 0
	}
	if level == m.struc.MinLevel {
		return m.struc.BaseChance
	}
	// The step counts from the level after the first structure level, so
	// the level right after it repeats the base chance.
	chance := m.struc.BaseChance + m.struc.ChanceStep*float64(level-m.struc.MinLevel-1)
	return clampF(chance, 0.0, 1.0)
}

// MountainsActive reports whether the mountain layer shows on level.
func (m *LevelManager) MountainsActive(level int) bool {
	every := m.scenic.MountainEvery
	if every <= 0 {
		return false
	}
	return level%every == 0
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
