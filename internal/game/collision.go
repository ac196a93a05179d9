package game

import (
	"github.com/Tarliton/collision2d"

	"github.com/vovakirdan/geodash/internal/core"
)

// CheckCollision tests the player box against every obstacle's bounding box.
// Triangles are treated as their bounding rectangle.
func CheckCollision(player core.Rect, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if player.Intersects(o.Box) {
			return true
		}
	}
	return false
}

// CheckCollisionPrecise is CheckCollision with triangle hits confirmed
// against the triangle outline instead of its bounding box.
func CheckCollisionPrecise(player core.Rect, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if !player.Intersects(o.Box) {
			continue
		}
		if !o.Kind.IsTriangle() {
			return true
		}
		hit, _ := collision2d.TestPolygonPolygon(rectPolygon(player), outlinePolygon(o.Polygon()))
		if hit {
			return true
		}
	}
	return false
}

// rectPolygon converts a rectangle to a collision2d polygon.
func rectPolygon(r core.Rect) collision2d.Polygon {
	pos := collision2d.NewVector(float64(r.X), float64(r.Y))
	return collision2d.NewBox(pos, float64(r.W), float64(r.H)).ToPolygon()
}

// outlinePolygon converts world points to a collision2d polygon at the origin.
func outlinePolygon(pts []core.Point) collision2d.Polygon {
	pointList := make([]float64, 0, len(pts)*2)
	for _, p := range pts {
		pointList = append(pointList, float64(p.X), float64(p.Y))
	}
	pos := collision2d.NewVector(0.0, 0.0)
	offset := collision2d.NewVector(0.0, 0.0)
	return collision2d.NewPolygon(pos, offset, 0.0, pointList)
}
