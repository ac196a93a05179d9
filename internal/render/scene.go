package render

import (
	"github.com/vovakirdan/geodash/internal/core"
)

// PrimitiveKind is the type of a retained primitive.
type PrimitiveKind int

const (
	PrimRect PrimitiveKind = iota
	PrimPolygon
	PrimText
	PrimButton
)

// Primitive is one retained drawable. Fields unused by its kind are zero.
type Primitive struct {
	ID     ShapeID
	Kind   PrimitiveKind
	Rect   core.Rect    // PrimRect, PrimButton
	Points []core.Point // PrimPolygon
	At     core.Point   // PrimText anchor (horizontal center, vertical middle)
	Text   string       // PrimText, PrimButton
	Color  core.Color
	Size   TextSize
}

// Bounds returns the primitive's bounding box. Text has no geometry.
func (p Primitive) Bounds() (core.Rect, bool) {
	switch p.Kind {
	case PrimRect, PrimButton:
		return p.Rect, true
	case PrimPolygon:
		if len(p.Points) == 0 {
			return core.Rect{}, false
		}
		minX, minY := p.Points[0].X, p.Points[0].Y
		maxX, maxY := minX, minY
		for _, pt := range p.Points[1:] {
			minX, maxX = core.Min(minX, pt.X), core.Max(maxX, pt.X)
			minY, maxY = core.Min(minY, pt.Y), core.Max(maxY, pt.Y)
		}
		return core.RectFromCorners(minX, minY, maxX, maxY), true
	default:
		return core.Rect{}, false
	}
}

// Scene is a retained-mode Surface. Primitives keep their creation order,
// which is also their drawing order. Backends rasterize it every frame.
type Scene struct {
	prims map[ShapeID]Primitive
	order []ShapeID
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{prims: make(map[ShapeID]Primitive)}
}

var _ Surface = (*Scene)(nil)

func (s *Scene) put(p Primitive) {
	if _, ok := s.prims[p.ID]; !ok {
		s.order = append(s.order, p.ID)
	}
	s.prims[p.ID] = p
}

// DrawRect creates or updates a filled rectangle.
func (s *Scene) DrawRect(id ShapeID, r core.Rect, fill core.Color) {
	s.put(Primitive{ID: id, Kind: PrimRect, Rect: r, Color: fill})
}

// DrawPolygon creates or updates a filled polygon.
func (s *Scene) DrawPolygon(id ShapeID, pts []core.Point, fill core.Color) {
	cp := make([]core.Point, len(pts))
	copy(cp, pts)
	s.put(Primitive{ID: id, Kind: PrimPolygon, Points: cp, Color: fill})
}

// DrawText creates or updates a text label centered on at.
func (s *Scene) DrawText(id ShapeID, at core.Point, text string, fg core.Color, size TextSize) {
	s.put(Primitive{ID: id, Kind: PrimText, At: at, Text: text, Color: fg, Size: size})
}

// DrawButton creates or updates a clickable button.
func (s *Scene) DrawButton(id ShapeID, r core.Rect, label string) {
	s.put(Primitive{ID: id, Kind: PrimButton, Rect: r, Text: label, Color: core.ColorWhite})
}

// Delete removes a primitive. Unknown IDs are ignored.
func (s *Scene) Delete(id ShapeID) {
	if _, ok := s.prims[id]; !ok {
		return
	}
	delete(s.prims, id)
	order := make([]ShapeID, 0, len(s.order))
	for _, o := range s.order {
		if o != id {
			order = append(order, o)
		}
	}
	s.order = order
}

// Clear removes every primitive.
func (s *Scene) Clear() {
	s.prims = make(map[ShapeID]Primitive)
	s.order = nil
}

// Len returns the number of primitives.
func (s *Scene) Len() int {
	return len(s.order)
}

// Get returns the primitive with the given ID.
func (s *Scene) Get(id ShapeID) (Primitive, bool) {
	p, ok := s.prims[id]
	return p, ok
}

// Geometry returns the current bounding box of a primitive.
func (s *Scene) Geometry(id ShapeID) (core.Rect, bool) {
	p, ok := s.prims[id]
	if !ok {
		return core.Rect{}, false
	}
	return p.Bounds()
}

// Primitives returns the primitives in drawing order.
func (s *Scene) Primitives() []Primitive {
	out := make([]Primitive, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.prims[id])
	}
	return out
}

// HitTest returns the topmost button containing the world point.
func (s *Scene) HitTest(pt core.Point) (ShapeID, bool) {
	for i := len(s.order) - 1; i >= 0; i-- {
		p := s.prims[s.order[i]]
		if p.Kind == PrimButton && p.Rect.Contains(pt) {
			return p.ID, true
		}
	}
	return "", false
}
