package scroller

import (
	"math"

	"github.com/vovakirdan/tui-scroller/internal/config"
	"github.com/vovakirdan/tui-scroller/internal/core"
)

// World owns every scrolling entity of one life and decides spawns.
// Collections are filtered in place each tick; order is spawn order.
type World struct {
	cfg    *config.ScrollerConfig
	levels *config.LevelManager
	rng    core.Rand
	w, h   int

	Obstacles  []Obstacle
	Structures []Structure
	Grass      []Grass
	Stars      []Star
	Mountains  []Mountain
}

// NewWorld creates a world for a screen of w x h cells at the given level.
// Stars are scattered across the screen and mountains laid out if the level shows them.
func NewWorld(cfg *config.ScrollerConfig, levels *config.LevelManager, rng core.Rand, w, h, level int) *World {
	wd := &World{
		cfg:        cfg,
		levels:     levels,
		rng:        rng,
		w:          w,
		h:          h,
		Obstacles:  make([]Obstacle, 0, 16),
		Structures: make([]Structure, 0, 4),
		Grass:      make([]Grass, 0, 16),
		Stars:      make([]Star, 0, cfg.Scenery.StarCount),
	}
	for i := 0; i < cfg.Scenery.StarCount; i++ {
		wd.Stars = append(wd.Stars, Star{
			X: float64(core.RandRange(rng, 0, w-1)),
			Y: core.RandRange(rng, 0, h-1),
		})
	}
	wd.SetLevel(level)
	return wd
}

// SetLevel lays out or clears the mountain range for level.
// Tiles already scrolling are kept when the range stays active.
func (wd *World) SetLevel(level int) {
	if !wd.levels.MountainsActive(level) {
		wd.Mountains = wd.Mountains[:0]
		return
	}
	if len(wd.Mountains) > 0 {
		return
	}
	y := wd.h - wd.cfg.Scenery.MountainOffset
	for x := 0; x < wd.w; x += wd.cfg.Scenery.MountainSpacing {
		wd.Mountains = append(wd.Mountains, Mountain{X: float64(x), Y: y})
	}
}

// Resize changes the playfield size used for spawning.
func (wd *World) Resize(w, h int) {
	wd.w, wd.h = w, h
}

// ScrollSpeed returns the whole-cell displacement per tick for the multiplier.
func (wd *World) ScrollSpeed(speedMultiplier float64) int {
	return int(wd.cfg.Physics.BaseSpeed * speedMultiplier)
}

// Spawn runs the obstacle, structure and grass generators for one tick.
func (wd *World) Spawn(countMultiplier float64, level int) {
	wd.spawnObstacles(countMultiplier)
	wd.spawnStructure(level)
	wd.spawnGrass()
}

// spawnObstacles adds a wave at the right edge when the field is empty, or when
// the last obstacle has cleared a random gap and the spawn roll succeeds.
func (wd *World) spawnObstacles(countMultiplier float64) {
	oc := wd.cfg.Obstacles
	if n := len(wd.Obstacles); n > 0 {
		gap := core.RandRange(wd.rng, oc.Gap/2, int(float64(oc.Gap)*1.5))
		if wd.Obstacles[n-1].X >= wd.w-gap {
			return
		}
		if wd.rng.Float64() >= oc.SpawnChance {
			return
		}
	}

	count := core.RandRange(wd.rng, 1, int(math.Ceil(countMultiplier))+1)
	for i := 0; i < count; i++ {
		cand := Obstacle{
			X:    wd.w - 1,
			Y:    core.RandRange(wd.rng, oc.TopMargin, wd.h-oc.BottomMargin),
			Kind: wd.rollKind(),
		}
		if wd.obstacleFits(cand) {
			wd.Obstacles = append(wd.Obstacles, cand)
		}
	}
}

func (wd *World) rollKind() ObstacleKind {
	weights := wd.cfg.Obstacles.Weights
	roll := wd.rng.Float64()
	switch {
	case roll < weights.Small:
		return ObstacleSmall
	case roll < weights.Small+weights.Large:
		return ObstacleLarge
	default:
		return ObstacleDecorative
	}
}

// obstacleFits checks spacing against structures and every obstacle,
// including ones appended earlier in the same wave.
func (wd *World) obstacleFits(cand Obstacle) bool {
	oc := wd.cfg.Obstacles
	for _, s := range wd.Structures {
		if core.Abs(cand.X-s.X) < oc.StructureClearance {
			return false
		}
	}
	for _, o := range wd.Obstacles {
		if core.Abs(cand.X-o.X) < oc.MinSpacing {
			return false
		}
	}
	return true
}

// spawnStructure places a structure just past the right edge from the first structure level on.
func (wd *World) spawnStructure(level int) {
	sc := wd.cfg.Structures
	if level < sc.MinLevel {
		return
	}
	if n := len(wd.Structures); n > 0 {
		if wd.Structures[n-1].X >= wd.w-sc.Clearance {
			return
		}
		if wd.rng.Float64() >= wd.levels.StructureChance(level) {
			return
		}
	}
	wd.Structures = append(wd.Structures, Structure{X: wd.w, Y: wd.h - sc.GroundOffset})
}

func (wd *World) spawnGrass() {
	sc := wd.cfg.Scenery
	if n := len(wd.Grass); n > 0 {
		threshold := float64(wd.w) - sc.GrassGapFactor*float64(wd.cfg.Obstacles.Gap)
		if float64(wd.Grass[n-1].X) >= threshold {
			return
		}
	}
	if wd.rng.Float64() >= sc.GrassChance {
		return
	}
	wd.Grass = append(wd.Grass, Grass{
		X:       wd.w - sc.GrassInset,
		Y:       wd.h - 1,
		Pattern: wd.rng.Intn(len(grassPatterns)),
	})
}

// UpdateBackground scrolls stars and mountains.
// A star leaving the screen respawns on the right edge, so the pool size never changes.
func (wd *World) UpdateBackground(level int) {
	sc := wd.cfg.Scenery
	for i := range wd.Stars {
		st := &wd.Stars[i]
		st.X -= sc.StarSpeed
		if st.X < 0 || st.X >= float64(wd.w) || st.Y < 0 || st.Y >= wd.h {
			st.X = float64(wd.w - 1)
			st.Y = core.RandRange(wd.rng, 0, wd.h-1)
		}
	}

	if !wd.levels.MountainsActive(level) {
		return
	}
	limit := -float64(sc.MountainSpacing)
	for i := range wd.Mountains {
		m := &wd.Mountains[i]
		m.X -= sc.MountainSpeed
		if m.X <= limit {
			m.X = float64(wd.w - 1)
		}
	}
}

// ScrollGrass moves grass left and drops tufts that reached the left edge.
func (wd *World) ScrollGrass(speed int) {
	valid := wd.Grass[:0]
	for _, g := range wd.Grass {
		g.X -= speed
		if g.X > 0 {
			valid = append(valid, g)
		}
	}
	wd.Grass = valid
}
