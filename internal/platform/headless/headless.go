// Package headless drives geodash without any display. It backs the sim
// command and is used to check gameplay over long deterministic runs.
package headless

import (
	"context"
	"time"

	"github.com/vovakirdan/geodash/internal/core"
	"github.com/vovakirdan/geodash/internal/game"
	"github.com/vovakirdan/geodash/internal/platform/driver"
	"github.com/vovakirdan/geodash/internal/registry"
)

const backendID = "headless"

// Autopilot jump window: jump when the gap to the next obstacle is in (jumpGapMin, jumpGapMax].
const (
	jumpGapMin = 40
	jumpGapMax = 45
)

func init() {
	registry.Register(backendID, func() registry.Backend { return &Backend{} })
}

// RoundResult summarizes one round.
type RoundResult struct {
	Round    int
	Score    int
	Ticks    int
	Finished bool // False for a round cut short by the tick limit or cancellation
}

// Report is the outcome of a simulation.
type Report struct {
	Seed   int64
	Ticks  int
	Rounds []RoundResult
}

// Best returns the highest score across all rounds.
func (r Report) Best() int {
	best := 0
	for _, rr := range r.Rounds {
		best = core.Max(best, rr.Score)
	}
	return best
}

// Simulate plays rounds back to back, restarting after each game over,
// until opts.Runtime.MaxTicks ticks have run or ctx is cancelled.
// With Realtime set, ticks are paced by a ticker at the configured interval.
func Simulate(ctx context.Context, opts registry.RunOptions) (Report, error) {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = rt.ResolveSeed()
	}
	opts.Runtime = rt

	d := driver.New(opts)
	report := Report{Seed: rt.Seed}

	var tick <-chan time.Time
	if rt.Realtime {
		interval := rt.TickInterval
		if interval <= 0 {
			interval = opts.Game.Tick.Interval()
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	// finish records the current round. A round cut short before its first
	// tick is not reported.
	finish := func(finished bool) {
		s := d.Session()
		if !finished && s.Ticks() == 0 {
			return
		}
		report.Rounds = append(report.Rounds, RoundResult{
			Round:    d.Round(),
			Score:    s.Score(),
			Ticks:    s.Ticks(),
			Finished: finished,
		})
	}

	for rt.MaxTicks <= 0 || report.Ticks < rt.MaxTicks {
		if tick != nil {
			select {
			case <-ctx.Done():
				finish(false)
				return report, ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			finish(false)
			return report, err
		}

		if rt.Autopilot && ShouldJump(d.Session().Player(), d.Session().Obstacles()) {
			d.Apply(core.ActionJump)
		}

		res := d.Tick()
		report.Ticks++
		if res.GameOver {
			finish(true)
			d.Restart()
		}
	}

	finish(false)
	return report, nil
}

// ShouldJump reports whether the autopilot jumps this tick: the player is on
// the ground and the nearest obstacle not yet passed is just far enough
// ahead for the jump arc to clear it.
func ShouldJump(p game.Player, obstacles []game.Obstacle) bool {
	if !p.OnGround {
		return false
	}

	var next *game.Obstacle
	for i := range obstacles {
		o := &obstacles[i]
		if o.Box.Right() <= p.Box.X {
			continue
		}
		if next == nil || o.Box.X < next.Box.X {
			next = o
		}
	}
	if next == nil {
		return false
	}

	gap := next.Box.X - p.Box.Right()
	return gap > jumpGapMin && gap <= jumpGapMax
}

// Backend runs a simulation and logs its report.
type Backend struct{}

// ID returns the backend identifier.
func (b *Backend) ID() string { return backendID }

// Title returns the display name.
func (b *Backend) Title() string { return "Headless simulation" }

// Interactive reports whether the backend takes user input.
func (b *Backend) Interactive() bool { return false }

// Run simulates and logs every round. Cancellation is not an error.
func (b *Backend) Run(ctx context.Context, opts registry.RunOptions) error {
	report, err := Simulate(ctx, opts)
	if opts.Logger != nil {
		for _, r := range report.Rounds {
			opts.Logger.Info("round", "round", r.Round, "score", r.Score, "ticks", r.Ticks, "finished", r.Finished)
		}
		opts.Logger.Info("simulation done", "seed", report.Seed, "ticks", report.Ticks, "best", report.Best())
	}
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
