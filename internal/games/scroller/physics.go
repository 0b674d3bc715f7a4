package scroller

import (
	"github.com/vovakirdan/tui-scroller/internal/config"
	"github.com/vovakirdan/tui-scroller/internal/core"
)

// Physics integrates the player and resolves collisions for a w x h playfield.
type Physics struct {
	cfg  *config.ScrollerConfig
	w, h int
}

// NewPhysics creates the physics engine for a playfield.
func NewPhysics(cfg *config.ScrollerConfig, w, h int) *Physics {
	return &Physics{cfg: cfg, w: w, h: h}
}

// Resize changes the playfield bounds.
func (p *Physics) Resize(w, h int) {
	p.w, p.h = w, h
}

// Floor returns the lowest row the player's top edge may occupy.
func (p *Physics) Floor(pl Player) float64 {
	return float64(p.h - pl.H - 1)
}

// Jump starts a jump unless one is in progress.
func (p *Physics) Jump(pl *Player) bool {
	if pl.Jumping {
		return false
	}
	pl.VY = p.cfg.Physics.JumpImpulse
	pl.Jumping = true
	return true
}

// Integrate applies gravity and clamps the player to the vertical bounds.
// Landing on the floor ends a jump; hitting the ceiling only stops the climb.
func (p *Physics) Integrate(pl *Player) {
	pl.VY += p.cfg.Physics.Gravity
	pl.Y += pl.VY

	if floor := p.Floor(*pl); pl.Y > floor {
		pl.Y = floor
		pl.VY = 0
		pl.Jumping = false
	} else if pl.Y < 0 {
		pl.Y = 0
		pl.VY = 0
	}
}

// MoveHorizontal applies the tick's movement intent.
// It reports true when moving left pushed the player off the screen.
func (p *Physics) MoveHorizontal(pl *Player, intent core.Action) bool {
	switch intent {
	case core.ActionLeft:
		pl.X--
		return pl.X < 0
	case core.ActionRight:
		pl.X = core.Min(p.w-pl.W, pl.X+1)
	}
	return false
}

// Hits reports whether o costs the player a life at their current positions.
func Hits(pl Player, o Obstacle) bool {
	return o.Kind.Collides() && pl.Rect().Intersects(o.Rect())
}

// ScrollObstacles moves every obstacle left by speed, then tests it against the player.
// Obstacles reaching the left edge are dropped. On a hit the scan stops and
// the unscanned obstacles are kept as they were.
func (p *Physics) ScrollObstacles(pl Player, obstacles []Obstacle, speed int) (kept []Obstacle, hit bool) {
	kept = obstacles[:0]
	for i := range obstacles {
		o := obstacles[i]
		o.X -= speed
		if Hits(pl, o) {
			return append(kept, obstacles[i:]...), true
		}
		if o.X > 0 {
			kept = append(kept, o)
		}
	}
	return kept, false
}

// ScrollStructures moves structures left by speed and resolves contact with the player.
// prevBottom is the player's bottom edge before this tick's integration; a
// player that was at or above a structure's roof lands on it instead of being
// pushed sideways. intent is cleared in the direction of a push.
func (p *Physics) ScrollStructures(pl *Player, prevBottom float64, structures []Structure, speed int, intent *core.Action) []Structure {
	sw := p.cfg.Structures.Width
	sh := p.cfg.Structures.Height
	half := sw / 2

	kept := structures[:0]
	for _, s := range structures {
		s.X -= speed
		box := core.NewRect(s.X, s.Y, sw, sh).Float()
		top := float64(s.Y)

		if pl.Rect().Intersects(box) {
			switch {
			case prevBottom <= top && pl.VY >= 0:
				pl.Y = top - float64(pl.H)
			case pl.X+pl.W > s.X && pl.X < s.X+half:
				pl.X = s.X - pl.W
				if *intent == core.ActionRight {
					*intent = core.ActionNone
				}
			case pl.X < s.X+sw && pl.X > s.X+half:
				pl.X = s.X + sw
				if *intent == core.ActionLeft {
					*intent = core.ActionNone
				}
			}
			pl.VY = 0
			pl.Jumping = false
		}

		// Standing flush on the roof
		if pl.Bottom() == top && pl.Rect().OverlapsX(box) {
			pl.Y = top - float64(pl.H)
			pl.VY = 0
			pl.Jumping = false
		}

		if s.X > 0 {
			kept = append(kept, s)
		}
	}
	return kept
}
