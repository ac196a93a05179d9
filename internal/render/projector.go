package render

import (
	"fmt"

	"github.com/vovakirdan/geodash/internal/config"
	"github.com/vovakirdan/geodash/internal/core"
	"github.com/vovakirdan/geodash/internal/game"
)

// Fixed primitive IDs.
const (
	ShapePlayer     ShapeID = "player"
	ShapeScore      ShapeID = "score"
	ShapeGameOver   ShapeID = "game-over"
	ShapeFinalScore ShapeID = "final-score"
	ShapeRestart    ShapeID = "restart"
)

// Colors of the game elements.
const (
	PlayerColor   = core.ColorBlue
	ObstacleColor = core.ColorRed
)

const (
	buttonW = 100
	buttonH = 30
)

// ObstacleShapeID returns the primitive ID of an obstacle.
func ObstacleShapeID(id game.ObstacleID) ShapeID {
	return ShapeID(fmt.Sprintf("obstacle-%d", id))
}

// Projector mirrors session snapshots onto a Surface. The surface is never
// read back; the session stays the only source of truth.
type Projector struct {
	surface Surface
	world   config.WorldConfig
	drawn   map[game.ObstacleID]struct{}
	over    bool
}

// NewProjector creates a projector writing to surface.
func NewProjector(surface Surface, world config.WorldConfig) *Projector {
	return &Projector{
		surface: surface,
		world:   world,
		drawn:   make(map[game.ObstacleID]struct{}),
	}
}

// Sync updates the surface to match the snapshot. Obstacles missing from the
// snapshot (culled since the last sync) have their primitives deleted.
func (p *Projector) Sync(snap game.Snapshot) {
	if snap.GameOver() {
		if !p.over {
			p.showGameOver(snap.Score)
		}
		return
	}

	if p.over {
		// First frame of a new round
		p.surface.Clear()
		p.drawn = make(map[game.ObstacleID]struct{})
		p.over = false
	}

	p.surface.DrawRect(ShapePlayer, snap.Player.Box, PlayerColor)

	seen := make(map[game.ObstacleID]struct{}, len(snap.Obstacles))
	for _, o := range snap.Obstacles {
		seen[o.ID] = struct{}{}
		if o.Kind.IsTriangle() {
			p.surface.DrawPolygon(ObstacleShapeID(o.ID), o.Polygon(), ObstacleColor)
		} else {
			p.surface.DrawRect(ObstacleShapeID(o.ID), o.Box, ObstacleColor)
		}
	}
	for id := range p.drawn {
		if _, ok := seen[id]; !ok {
			p.surface.Delete(ObstacleShapeID(id))
		}
	}
	p.drawn = seen

	p.surface.DrawText(ShapeScore, core.Point{X: 60, Y: 20}, fmt.Sprintf("Score: %d", snap.Score), core.ColorGray, TextNormal)
}

// showGameOver replaces the playfield with the final score and the restart button.
func (p *Projector) showGameOver(score int) {
	cx, cy := p.world.Width/2, p.world.Height/2

	p.surface.Clear()
	p.drawn = make(map[game.ObstacleID]struct{})
	p.surface.DrawText(ShapeGameOver, core.Point{X: cx, Y: cy}, "Game Over!", core.ColorRed, TextLarge)
	p.surface.DrawText(ShapeFinalScore, core.Point{X: cx, Y: cy + 50}, fmt.Sprintf("Score: %d", score), core.ColorBlue, TextNormal)
	p.surface.DrawButton(ShapeRestart, core.NewRect(cx-buttonW/2, cy+100, buttonW, buttonH), "Play Again")
	p.over = true
}
