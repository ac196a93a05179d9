package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/geodash/internal/core"
)

// Kind is the shape of an obstacle.
type Kind int

const (
	KindSmallSquare Kind = iota
	KindTallRect
	KindWideRect
	KindTriangle
	KindTallTriangle

	kindCount = 5
)

// String returns the shape name.
func (k Kind) String() string {
	switch k {
	case KindSmallSquare:
		return "SmallSquare"
	case KindTallRect:
		return "TallRect"
	case KindWideRect:
		return "WideRect"
	case KindTriangle:
		return "Triangle"
	case KindTallTriangle:
		return "TallTriangle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsTriangle reports whether the kind is drawn as a polygon.
func (k Kind) IsTriangle() bool {
	return k == KindTriangle || k == KindTallTriangle
}

// Shape heights above the ground and widths, in world units.
const (
	shortHeight = 50
	tallHeight  = 150
	narrowWidth = 50
	wideWidth   = 100
)

// ObstacleID identifies an obstacle for the lifetime of a Session.
type ObstacleID uint64

// Obstacle is a ground hazard. Only Box.X changes after spawn.
type Obstacle struct {
	ID   ObstacleID
	Kind Kind
	Box  core.Rect // Bounding box, used for collision and rectangle rendering
}

// Polygon returns the triangle outline (base left, base right, apex) for
// triangle kinds and the four box corners otherwise.
func (o Obstacle) Polygon() []core.Point {
	b := o.Box
	if o.Kind.IsTriangle() {
		return []core.Point{
			{X: b.X, Y: b.Bottom()},
			{X: b.Right(), Y: b.Bottom()},
			{X: b.X + b.W/2, Y: b.Y},
		}
	}
	return []core.Point{
		{X: b.X, Y: b.Y},
		{X: b.Right(), Y: b.Y},
		{X: b.Right(), Y: b.Bottom()},
		{X: b.X, Y: b.Bottom()},
	}
}

// shapeBox returns the bounding box of a kind spawned at x on the given ground.
// An unknown kind is a programming error and panics.
func shapeBox(kind Kind, x, groundY int) core.Rect {
	switch kind {
	case KindSmallSquare, KindTriangle:
		return core.RectFromCorners(x, groundY-shortHeight, x+narrowWidth, groundY)
	case KindTallRect, KindTallTriangle:
		return core.RectFromCorners(x, groundY-tallHeight, x+narrowWidth, groundY)
	case KindWideRect:
		return core.RectFromCorners(x, groundY-shortHeight, x+wideWidth, groundY)
	default:
		panic(fmt.Sprintf("game: invalid obstacle kind %d", int(kind)))
	}
}

// ObstacleManager handles spawning, movement, and removal of obstacles.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       *rand.Rand
	groundY   int
	nextID    ObstacleID
	spawned   int // Spawn events since the last reset
}

// NewObstacleManager creates an empty obstacle manager with the given RNG seed.
func NewObstacleManager(seed int64, groundY int) *ObstacleManager {
	return &ObstacleManager{
		obstacles: make([]Obstacle, 0, 4),
		rng:       rand.New(rand.NewSource(seed)),
		groundY:   groundY,
	}
}

// Reset removes every obstacle. IDs keep increasing so a renderer never
// confuses a new obstacle with one from a previous round.
func (om *ObstacleManager) Reset() {
	om.obstacles = om.obstacles[:0]
	om.spawned = 0
}

// Spawn appends an obstacle of a uniformly random kind at x.
func (om *ObstacleManager) Spawn(x int) Obstacle {
	return om.SpawnKind(x, Kind(om.rng.Intn(kindCount)))
}

// SpawnKind appends an obstacle of the given kind at x.
func (om *ObstacleManager) SpawnKind(x int, kind Kind) Obstacle {
	om.nextID++
	o := Obstacle{
		ID:   om.nextID,
		Kind: kind,
		Box:  shapeBox(kind, x, om.groundY),
	}
	om.obstacles = append(om.obstacles, o)
	om.spawned++
	return o
}

// Scroll moves every obstacle left by speed and drops those whose right edge
// has reached x <= 0. Returns the IDs that were dropped.
func (om *ObstacleManager) Scroll(speed int) []ObstacleID {
	for i := range om.obstacles {
		om.obstacles[i].Box.X -= speed
	}

	var culled []ObstacleID
	live := make([]Obstacle, 0, len(om.obstacles))
	for _, o := range om.obstacles {
		if o.Box.Right() > 0 {
			live = append(live, o)
		} else {
			culled = append(culled, o.ID)
		}
	}
	om.obstacles = live
	return culled
}

// Obstacles returns the live obstacles in spawn order.
// The slice is owned by the manager; callers must not modify it.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// Spawned returns the number of spawn events since the last reset.
func (om *ObstacleManager) Spawned() int {
	return om.spawned
}
