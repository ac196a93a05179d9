package render

import (
	"testing"

	"github.com/vovakirdan/geodash/internal/config"
	"github.com/vovakirdan/geodash/internal/game"
)

func newProjected(seed int64) (*game.Session, *Scene, *Projector) {
	cfg := config.DefaultConfig()
	s := game.New(cfg, seed)
	scene := NewScene()
	return s, scene, NewProjector(scene, cfg.World)
}

func TestProjectorDrawsSession(t *testing.T) {
	s, scene, proj := newProjected(1)
	proj.Sync(s.Snapshot())

	player, ok := scene.Get(ShapePlayer)
	if !ok || player.Rect != s.Player().Box || player.Color != PlayerColor {
		t.Errorf("player primitive = %+v, %v", player, ok)
	}

	o := s.Obstacles()[0]
	prim, ok := scene.Get(ObstacleShapeID(o.ID))
	if !ok {
		t.Fatal("obstacle primitive missing")
	}
	wantKind := PrimRect
	if o.Kind.IsTriangle() {
		wantKind = PrimPolygon
	}
	if prim.Kind != wantKind {
		t.Errorf("obstacle %v drawn as %v", o.Kind, prim.Kind)
	}
	if geom, _ := scene.Geometry(ObstacleShapeID(o.ID)); geom != o.Box {
		t.Errorf("obstacle geometry %+v, expected %+v", geom, o.Box)
	}

	if _, ok := scene.Get(ShapeScore); !ok {
		t.Error("running score label missing")
	}
}

func TestProjectorDeletesCulledObstacles(t *testing.T) {
	s, scene, proj := newProjected(2)
	first := s.Obstacles()[0].ID

	// Walk far left so nothing ever reaches the player.
	for i := 0; i < 200; i++ {
		s.MoveLeft()
	}

	culledAt := -1
	for i := 0; i < 200; i++ {
		res := s.Tick()
		proj.Sync(s.Snapshot())
		for _, id := range res.Culled {
			if id == first {
				culledAt = i
			}
		}
	}
	if s.State() != game.StateRunning {
		t.Fatal("player parked off to the left should survive")
	}
	if culledAt < 0 {
		t.Fatal("first obstacle was never culled")
	}
	if _, ok := scene.Get(ObstacleShapeID(first)); ok {
		t.Error("culled obstacle primitive was not deleted")
	}
}

func TestProjectorGameOverAndRestart(t *testing.T) {
	s, scene, proj := newProjected(3)
	for s.State() == game.StateRunning {
		s.Tick()
		proj.Sync(s.Snapshot())
	}

	for _, id := range []ShapeID{ShapeGameOver, ShapeFinalScore, ShapeRestart} {
		if _, ok := scene.Get(id); !ok {
			t.Errorf("game over screen missing %q", id)
		}
	}
	if scene.Len() != 3 {
		t.Errorf("game over screen should only hold labels and the button, got %d primitives", scene.Len())
	}
	if over, _ := scene.Get(ShapeGameOver); over.Text != "Game Over!" {
		t.Errorf("game over text = %q", over.Text)
	}
	if final, _ := scene.Get(ShapeFinalScore); final.Text != "Score: 141" {
		t.Errorf("final score text = %q, expected %q", final.Text, "Score: 141")
	}
	btn, _ := scene.Get(ShapeRestart)
	if btn.Rect.X != 350 || btn.Rect.Y != 300 {
		t.Errorf("restart button at (%d,%d), expected (350,300)", btn.Rect.X, btn.Rect.Y)
	}
	if id, ok := scene.HitTest(btn.Rect.Center()); !ok || id != ShapeRestart {
		t.Error("restart button should be clickable")
	}

	s.Restart()
	proj.Sync(s.Snapshot())

	if _, ok := scene.Get(ShapeRestart); ok {
		t.Error("restart button should disappear once running again")
	}
	if _, ok := scene.Get(ShapePlayer); !ok {
		t.Error("player should be drawn after restart")
	}
	if scene.Len() != 3 { // player, one obstacle, score
		t.Errorf("fresh round should draw 3 primitives, got %d", scene.Len())
	}
}
