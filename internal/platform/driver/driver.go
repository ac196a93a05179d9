// Package driver connects a game session to its scene. Backends own the
// clock and the input devices; they feed actions, clicks and ticks here.
package driver

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/geodash/internal/core"
	"github.com/vovakirdan/geodash/internal/game"
	"github.com/vovakirdan/geodash/internal/registry"
	"github.com/vovakirdan/geodash/internal/render"
)

// Driver runs rounds of one session and keeps a scene in sync with it.
// Like the session, it must be used from a single goroutine.
type Driver struct {
	session   *game.Session
	scene     *render.Scene
	projector *render.Projector
	logger    *log.Logger
	round     int
}

// New creates a driver with a fresh session seeded from the runtime config.
func New(opts registry.RunOptions) *Driver {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Runtime.ResolveSeed()

	scene := render.NewScene()
	d := &Driver{
		session:   game.New(opts.Game, seed),
		scene:     scene,
		projector: render.NewProjector(scene, opts.Game.World),
		logger:    logger,
		round:     1,
	}
	d.projector.Sync(d.session.Snapshot())
	d.logger.Debug("session created", "seed", seed)
	d.logger.Info("round started", "round", d.round)
	return d
}

// Apply dispatches an input action. Restart only takes effect after game
// over; it returns true when a new round was started. Quit is left to the
// backend.
func (d *Driver) Apply(a core.Action) bool {
	switch a {
	case core.ActionNone, core.ActionQuit:
		return false
	case core.ActionRestart:
		return d.Restart()
	}
	d.session.Apply(a)
	d.projector.Sync(d.session.Snapshot())
	return false
}

// Click handles a pointer press at a world position.
func (d *Driver) Click(pt core.Point) bool {
	if id, ok := d.scene.HitTest(pt); ok && id == render.ShapeRestart {
		return d.Restart()
	}
	return false
}

// Restart begins a new round if the current one is over.
func (d *Driver) Restart() bool {
	if d.session.State() != game.StateGameOver {
		return false
	}
	d.session.Restart()
	d.round++
	d.projector.Sync(d.session.Snapshot())
	d.logger.Info("round started", "round", d.round)
	return true
}

// Tick advances a running session by one step. A finished round is not
// advanced; the result then reports the GameOver state.
func (d *Driver) Tick() game.TickResult {
	if d.session.State() == game.StateGameOver {
		return game.TickResult{Score: d.session.Score(), State: game.StateGameOver}
	}

	res := d.session.Tick()
	d.projector.Sync(d.session.Snapshot())
	for _, id := range res.Spawned {
		d.logger.Debug("obstacle spawned", "id", id, "score", res.Score)
	}
	for _, id := range res.Culled {
		d.logger.Debug("obstacle culled", "id", id)
	}
	if res.GameOver {
		d.logger.Info("game over", "round", d.round, "score", res.Score, "ticks", d.session.Ticks())
	}
	return res
}

// Running reports whether the current round is still in play.
func (d *Driver) Running() bool {
	return d.session.State() == game.StateRunning
}

// Round returns the 1-based number of the current round.
func (d *Driver) Round() int {
	return d.round
}

// Session returns the driven session.
func (d *Driver) Session() *game.Session {
	return d.session
}

// Scene returns the scene mirroring the session.
func (d *Driver) Scene() *render.Scene {
	return d.scene
}
