package render

import (
	"testing"

	"github.com/vovakirdan/geodash/internal/core"
)

func TestSceneCreateUpdateDelete(t *testing.T) {
	s := NewScene()

	s.DrawRect("a", core.NewRect(0, 0, 10, 10), core.ColorRed)
	s.DrawPolygon("b", []core.Point{{X: 0, Y: 10}, {X: 10, Y: 10}, {X: 5, Y: 0}}, core.ColorRed)
	s.DrawRect("a", core.NewRect(5, 0, 10, 10), core.ColorBlue) // update keeps order

	prims := s.Primitives()
	if len(prims) != 2 {
		t.Fatalf("expected 2 primitives, got %d", len(prims))
	}
	if prims[0].ID != "a" || prims[0].Rect.X != 5 || prims[0].Color != core.ColorBlue {
		t.Errorf("update should modify in place, got %+v", prims[0])
	}

	s.Delete("a")
	s.Delete("missing")
	if s.Len() != 1 {
		t.Fatalf("expected 1 primitive after delete, got %d", s.Len())
	}
	if _, ok := s.Get("a"); ok {
		t.Error("deleted primitive still present")
	}

	s.Clear()
	if s.Len() != 0 {
		t.Error("Clear should remove everything")
	}
}

func TestSceneGeometry(t *testing.T) {
	s := NewScene()
	s.DrawPolygon("tri", []core.Point{{X: 800, Y: 400}, {X: 850, Y: 400}, {X: 825, Y: 250}}, core.ColorRed)
	s.DrawText("label", core.Point{X: 1, Y: 1}, "hi", core.ColorGray, TextNormal)

	r, ok := s.Geometry("tri")
	if !ok || r != core.RectFromCorners(800, 250, 850, 400) {
		t.Errorf("Geometry(tri) = %+v, %v", r, ok)
	}
	if _, ok := s.Geometry("label"); ok {
		t.Error("text should have no geometry")
	}
	if _, ok := s.Geometry("nope"); ok {
		t.Error("unknown shape should have no geometry")
	}
}

func TestScenePolygonIsCopied(t *testing.T) {
	s := NewScene()
	pts := []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	s.DrawPolygon("p", pts, core.ColorRed)
	pts[0].X = 99

	p, _ := s.Get("p")
	if p.Points[0].X != 0 {
		t.Error("scene must not alias the caller's point slice")
	}
}

func TestSceneHitTest(t *testing.T) {
	s := NewScene()
	s.DrawRect("rect", core.NewRect(0, 0, 800, 400), core.ColorRed)
	s.DrawButton("btn", core.NewRect(350, 300, 100, 30), "Play Again")

	if id, ok := s.HitTest(core.Point{X: 360, Y: 310}); !ok || id != "btn" {
		t.Errorf("HitTest inside button = %q, %v", id, ok)
	}
	if _, ok := s.HitTest(core.Point{X: 10, Y: 10}); ok {
		t.Error("rectangles are not clickable")
	}
}
