package scroller

import "github.com/vovakirdan/tui-scroller/internal/core"

// ObstacleKind selects an obstacle's footprint and whether it collides.
type ObstacleKind int

const (
	ObstacleSmall      ObstacleKind = iota // 2x2 spike
	ObstacleLarge                          // 5x3 drone
	ObstacleDecorative                     // Invisible, never collides
)

// String returns a short name for the kind.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleSmall:
		return "small"
	case ObstacleLarge:
		return "large"
	case ObstacleDecorative:
		return "decorative"
	default:
		return "unknown"
	}
}

// Size returns the collision footprint of the kind.
// Decorative obstacles report the small footprint but never collide.
func (k ObstacleKind) Size() (w, h int) {
	if k == ObstacleLarge {
		return 5, 3
	}
	return 2, 2
}

// Collides reports whether the kind can cost the player a life.
func (k ObstacleKind) Collides() bool {
	return k == ObstacleSmall || k == ObstacleLarge
}

// Player is the runner. X is a column; Y is sub-cell so gravity accumulates smoothly.
type Player struct {
	X       int
	Y       float64
	VY      float64 // Vertical velocity (negative = up)
	Jumping bool
	W, H    int
}

// Rect returns the player's collision box.
func (p Player) Rect() core.RectF {
	return core.NewRectF(float64(p.X), p.Y, float64(p.W), float64(p.H))
}

// Bottom returns the row just below the player.
func (p Player) Bottom() float64 {
	return p.Y + float64(p.H)
}

// Obstacle is a scrolling hazard.
type Obstacle struct {
	X, Y int
	Kind ObstacleKind
}

// Rect returns the obstacle's collision box.
func (o Obstacle) Rect() core.RectF {
	w, h := o.Kind.Size()
	return core.NewRect(o.X, o.Y, w, h).Float()
}

// Structure is a solid building the player can stand on or be pushed by.
type Structure struct {
	X, Y int
}

// Grass is a two-line ground decoration.
type Grass struct {
	X, Y    int
	Pattern int // Index into grassPatterns
}

// Star is a background point scrolling at parallax speed.
type Star struct {
	X float64
	Y int
}

// Mountain is one tile of the background range.
type Mountain struct {
	X float64
	Y int
}
