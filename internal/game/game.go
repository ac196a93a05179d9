// Package game implements the geodash session: a box that falls under
// gravity and jumps over obstacles scrolling in from the right.
// It holds no rendering or timing code; a platform backend calls Tick at a
// fixed period and applies input between ticks.
package game

import (
	"github.com/vovakirdan/geodash/internal/config"
	"github.com/vovakirdan/geodash/internal/core"
)

// State is the round state.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// TickResult describes what happened during one tick.
type TickResult struct {
	Score    int
	State    State
	Spawned  []ObstacleID // Obstacles created this tick
	Culled   []ObstacleID // Obstacles removed this tick, to be disposed by the renderer
	GameOver bool         // True only on the tick that ended the round
}

// Session holds all mutable state of one game and advances it tick by tick.
// It is not safe for concurrent use; drive it from a single goroutine.
type Session struct {
	cfg       config.GameConfig
	player    Player
	obstacles *ObstacleManager
	collides  func(core.Rect, []Obstacle) bool
	score     int
	ticks     int
	state     State
}

// New creates a running session and spawns the first obstacle.
func New(cfg config.GameConfig, seed int64) *Session {
	s := &Session{
		cfg:       cfg,
		obstacles: NewObstacleManager(seed, cfg.World.GroundY),
		collides:  CheckCollision,
	}
	if cfg.Collision.PreciseTriangles {
		s.collides = CheckCollisionPrecise
	}
	s.reset()
	return s
}

// reset puts the session in its initial running state.
func (s *Session) reset() {
	p := s.cfg.Player
	s.player = newPlayer(p.X, p.Y, p.Width, p.Height, s.cfg.World.GroundY, p.StartOnGround)
	s.obstacles.Reset()
	s.score = 0
	s.ticks = 0
	s.state = StateRunning
	s.obstacles.Spawn(s.cfg.Obstacles.SpawnX)
}

// Restart starts a new round. Calling it while running simply resets.
func (s *Session) Restart() {
	s.reset()
}

// Tick advances the simulation by one fixed step.
// Order: physics, score, spawn, scroll and cull, ground clamp, collision.
// A session in GameOver does not advance.
func (s *Session) Tick() TickResult {
	if s.state == StateGameOver {
		return TickResult{Score: s.score, State: s.state}
	}

	s.ticks++
	s.player.integrate(s.cfg.Physics.Gravity)

	s.score++
	var spawned []ObstacleID
	if s.score%s.cfg.Obstacles.SpawnEvery == 0 {
		o := s.obstacles.Spawn(s.cfg.Obstacles.SpawnX)
		spawned = append(spawned, o.ID)
	}

	culled := s.obstacles.Scroll(s.cfg.Obstacles.ScrollSpeed)

	s.player.clampToGround(s.cfg.World.GroundY)

	result := TickResult{
		Score:   s.score,
		Spawned: spawned,
		Culled:  culled,
	}
	if s.collides(s.player.Box, s.obstacles.Obstacles()) {
		s.state = StateGameOver
		result.GameOver = true
	}
	result.State = s.state
	return result
}

// Jump starts a jump if the player is on the ground.
// Returns whether the jump took effect.
func (s *Session) Jump() bool {
	if s.state != StateRunning {
		return false
	}
	return s.player.jump(s.cfg.Physics.JumpImpulse)
}

// MoveLeft shifts the player left by one move step.
func (s *Session) MoveLeft() {
	s.move(-s.cfg.Player.MoveStep)
}

// MoveRight shifts the player right by one move step.
func (s *Session) MoveRight() {
	s.move(s.cfg.Player.MoveStep)
}

func (s *Session) move(dx int) {
	if s.state != StateRunning {
		return
	}
	s.player.Box.X += dx
	if s.cfg.Player.ClampToWorld {
		s.player.Box.X = core.Clamp(s.player.Box.X, 0, s.cfg.World.Width-s.player.Box.W)
	}
}

// Apply dispatches an input action. Restart is honored only after game over.
func (s *Session) Apply(a core.Action) {
	switch a {
	case core.ActionJump:
		s.Jump()
	case core.ActionLeft:
		s.MoveLeft()
	case core.ActionRight:
		s.MoveRight()
	case core.ActionRestart:
		if s.state == StateGameOver {
			s.Restart()
		}
	}
}

// State returns the round state.
func (s *Session) State() State {
	return s.state
}

// Score returns the current score (ticks survived this round).
func (s *Session) Score() int {
	return s.score
}

// Ticks returns the number of ticks advanced this round.
func (s *Session) Ticks() int {
	return s.ticks
}

// Spawned returns the number of spawn events this round, including the initial one.
func (s *Session) Spawned() int {
	return s.obstacles.Spawned()
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	return s.player
}

// Obstacles returns a copy of the live obstacles in spawn order.
func (s *Session) Obstacles() []Obstacle {
	live := s.obstacles.Obstacles()
	out := make([]Obstacle, len(live))
	copy(out, live)
	return out
}

// Config returns the configuration the session was created with.
func (s *Session) Config() config.GameConfig {
	return s.cfg
}
