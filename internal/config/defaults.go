package config

import (
	_ "embed"
)

//go:embed defaults/geodash.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in geodash configuration.
// It mirrors defaults/geodash.yaml and is the fallback when that fails to parse.
func DefaultConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Width:   800,
			Height:  400,
			GroundY: 400,
		},
		Physics: PhysicsConfig{
			Gravity:     1,
			JumpImpulse: -20,
		},
		Player: PlayerConfig{
			X:             50,
			Y:             300,
			Width:         50,
			Height:        50,
			MoveStep:      10,
			StartOnGround: true,
		},
		Obstacles: ObstacleConfig{
			SpawnX:      800,
			SpawnEvery:  100,
			ScrollSpeed: 5,
		},
		Collision: CollisionConfig{
			PreciseTriangles: false,
		},
		Tick: TickConfig{
			IntervalMS: 20,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
