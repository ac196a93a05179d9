// Package config provides YAML-based game configuration loading
// and validation for geodash.
package config

import (
	"errors"
	"fmt"
	"time"
)

// GameConfig contains all tuning for a geodash session.
type GameConfig struct {
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Collision CollisionConfig `yaml:"collision"`
	Tick      TickConfig      `yaml:"tick"`
}

// WorldConfig defines the play area in world units.
type WorldConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	GroundY int `yaml:"ground_y"`
}

// PhysicsConfig defines vertical motion. Units are world units per tick.
type PhysicsConfig struct {
	Gravity     int `yaml:"gravity"`
	JumpImpulse int `yaml:"jump_impulse"` // Negative = up
}

// PlayerConfig defines the player's initial box and horizontal movement.
type PlayerConfig struct {
	X             int  `yaml:"x"`
	Y             int  `yaml:"y"`
	Width         int  `yaml:"width"`
	Height        int  `yaml:"height"`
	MoveStep      int  `yaml:"move_step"`
	ClampToWorld  bool `yaml:"clamp_to_world"`  // Keep the player inside [0, world.width]
	StartOnGround bool `yaml:"start_on_ground"` // Allow a jump before first touching the ground
}

// ObstacleConfig defines spawning and scrolling.
type ObstacleConfig struct {
	SpawnX      int `yaml:"spawn_x"`
	SpawnEvery  int `yaml:"spawn_every"`  // Spawn whenever score is a positive multiple of this
	ScrollSpeed int `yaml:"scroll_speed"` // Leftward translation per tick
}

// CollisionConfig selects the collision model.
type CollisionConfig struct {
	// PreciseTriangles refines bounding-box hits on triangles with a polygon test.
	PreciseTriangles bool `yaml:"precise_triangles"`
}

// TickConfig defines the fixed simulation period.
type TickConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// Interval returns the tick period as a duration.
func (t TickConfig) Interval() time.Duration {
	return time.Duration(t.IntervalMS) * time.Millisecond
}

// Validate reports every setting that would make the simulation meaningless.
func (c *GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0, "world.width must be positive, got %d", c.World.Width)
	check(c.World.Height > 0, "world.height must be positive, got %d", c.World.Height)
	check(c.World.GroundY > 0 && c.World.GroundY <= c.World.Height,
		"world.ground_y must be in (0, %d], got %d", c.World.Height, c.World.GroundY)
	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %d", c.Physics.Gravity)
	check(c.Physics.JumpImpulse < 0, "physics.jump_impulse must be negative, got %d", c.Physics.JumpImpulse)
	check(c.Player.Width > 0 && c.Player.Height > 0,
		"player size must be positive, got %dx%d", c.Player.Width, c.Player.Height)
	check(c.Player.Y+c.Player.Height <= c.World.GroundY,
		"player must start at or above the ground, bottom %d > ground %d", c.Player.Y+c.Player.Height, c.World.GroundY)
	check(c.Player.MoveStep >= 0, "player.move_step must not be negative, got %d", c.Player.MoveStep)
	check(c.Obstacles.SpawnEvery > 0, "obstacles.spawn_every must be positive, got %d", c.Obstacles.SpawnEvery)
	check(c.Obstacles.ScrollSpeed > 0, "obstacles.scroll_speed must be positive, got %d", c.Obstacles.ScrollSpeed)
	check(c.Tick.IntervalMS > 0, "tick.interval_ms must be positive, got %d", c.Tick.IntervalMS)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
