package config

import (
	_ "embed"
)

//go:embed defaults/scroller.yaml
var defaultScrollerYAML []byte

// DefaultScrollerConfig returns the hardcoded default configuration.
// It mirrors defaults/scroller.yaml and is used if the embedded file fails to parse.
func DefaultScrollerConfig() ScrollerConfig {
	return ScrollerConfig{
		Timing: TimingConfig{
			TickMillis: 50,
		},
		Physics: PhysicsConfig{
			Gravity:     0.2,
			JumpImpulse: -2.0,
			BaseSpeed:   2.0,
		},
		Player: PlayerConfig{
			Width:        3,
			Height:       3,
			StartDivisor: 6,
		},
		Obstacles: ObstacleConfig{
			Gap:                30,
			SpawnChance:        0.7,
			MinSpacing:         5,
			StructureClearance: 2,
			TopMargin:          2,
			BottomMargin:       5,
			Weights: ObstacleWeights{
				Small:      0.5,
				Large:      0.3,
				Decorative: 0.2,
			},
		},
		Structures: StructureConfig{
			Width:        6,
			Height:       5,
			GroundOffset: 6,
			MinLevel:     2,
			BaseChance:   0.01,
			ChanceStep:   0.05,
			Clearance:    40,
		},
		Scenery: SceneryConfig{
			GrassChance:     0.6,
			GrassGapFactor:  0.25,
			GrassInset:      6,
			StarCount:       90,
			StarSpeed:       0.5,
			MountainSpeed:   0.8,
			MountainSpacing: 40,
			MountainEvery:   3,
			MountainOffset:  10,
		},
		Progression: ProgressionConfig{
			Lives:           4,
			LevelEvery:      500,
			SpeedFactor:     1.2,
			CountFactor:     1.3,
			StartSpeed:      1.0,
			StartCount:      1.0,
			MaxScoreRecords: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultScrollerYAML
}
