package core

import "time"

// RuntimeConfig contains per-run settings passed from the CLI to a backend.
// Gameplay tuning lives in config.GameConfig; this carries what the platform decides.
type RuntimeConfig struct {
	ScreenW      int           // Terminal width in characters (tui backend)
	ScreenH      int           // Terminal height in characters (tui backend)
	TickInterval time.Duration // Fixed simulation period (default 20ms)
	Seed         int64         // RNG seed for obstacle kinds, 0 = time-based
	MaxTicks     int           // Headless only: stop after this many ticks, 0 = unlimited
	Autopilot    bool          // Headless only: jump automatically in front of obstacles
	Realtime     bool          // Headless only: pace ticks with a wall-clock ticker
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 20 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// ResolveSeed returns the configured seed, or a time-based one when unset.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
