package scroller

import (
	"github.com/vovakirdan/tui-scroller/internal/config"
	"github.com/vovakirdan/tui-scroller/internal/core"
)

// scriptedRand replays fixed values. Exhausted queues fall back to the defaults.
type scriptedRand struct {
	ints       []int
	floats     []float64
	defaultInt int
	defaultF   float64
}

func (r *scriptedRand) Intn(n int) int {
	v := r.defaultInt
	if len(r.ints) > 0 {
		v, r.ints = r.ints[0], r.ints[1:]
	}
	if v >= n {
		v = n - 1
	}
	return v
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) > 0 {
		v := r.floats[0]
		r.floats = r.floats[1:]
		return v
	}
	return r.defaultF
}

// quietRand fails every spawn roll, so only decorative obstacles appear
// and only when the field is empty.
func quietRand() *scriptedRand {
	return &scriptedRand{defaultF: 0.99}
}

// quietConfig keeps structures away so the player can idle indefinitely.
func quietConfig() config.ScrollerConfig {
	cfg := config.DefaultScrollerConfig()
	cfg.Structures.MinLevel = 1000
	return cfg
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Tick: core.DefaultTick, Seed: 42}
}

func newTestLife(cfg *config.ScrollerConfig, rng core.Rand) (*Life, *RunState) {
	run := NewRunState(cfg.Progression, 0)
	life := NewLife(cfg, config.NewLevelManager(*cfg), rng, testRuntime(), &run)
	return life, &run
}
