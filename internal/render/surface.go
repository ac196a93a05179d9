// Package render is the boundary between the game session and whatever
// displays it. Backends implement Surface; Projector is its only writer.
package render

import "github.com/vovakirdan/geodash/internal/core"

// ShapeID names a primitive on a surface.
type ShapeID string

// TextSize selects a label's font size where the backend supports sizes.
type TextSize int

const (
	TextNormal TextSize = iota
	TextLarge
)

// Surface is the drawing capability a backend offers. Draw calls create the
// primitive on first use and update it afterwards; coordinates are world units.
type Surface interface {
	DrawRect(id ShapeID, r core.Rect, fill core.Color)
	DrawPolygon(id ShapeID, pts []core.Point, fill core.Color)
	DrawText(id ShapeID, at core.Point, text string, fg core.Color, size TextSize)
	DrawButton(id ShapeID, r core.Rect, label string)
	Delete(id ShapeID)
	Clear()
}
