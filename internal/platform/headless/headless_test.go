package headless

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/geodash/internal/config"
	"github.com/vovakirdan/geodash/internal/core"
	"github.com/vovakirdan/geodash/internal/game"
	"github.com/vovakirdan/geodash/internal/registry"
)

func simOptions(seed int64, ticks int, autopilot bool) registry.RunOptions {
	return registry.RunOptions{
		Game: config.DefaultConfig(),
		Runtime: core.RuntimeConfig{
			Seed:      seed,
			MaxTicks:  ticks,
			Autopilot: autopilot,
		},
	}
}

func TestIdleRounds(t *testing.T) {
	report, err := Simulate(context.Background(), simOptions(1, 1000, false))
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	if report.Ticks != 1000 {
		t.Errorf("ran %d ticks, expected 1000", report.Ticks)
	}

	// 1000 ticks hold 7 idle rounds of 141 ticks and a partial one.
	if len(report.Rounds) != 8 {
		t.Fatalf("got %d rounds, expected 8: %+v", len(report.Rounds), report.Rounds)
	}
	for i, r := range report.Rounds[:7] {
		if !r.Finished || r.Score != 141 || r.Round != i+1 {
			t.Errorf("round %d = %+v, expected a finished round scoring 141", i+1, r)
		}
	}
	last := report.Rounds[7]
	if last.Finished || last.Ticks != 1000-7*141 {
		t.Errorf("last round = %+v, expected unfinished with %d ticks", last, 1000-7*141)
	}
	if report.Best() != 141 {
		t.Errorf("Best() = %d, expected 141", report.Best())
	}
}

func TestAutopilotSurvives(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 99} {
		report, err := Simulate(context.Background(), simOptions(seed, 5000, true))
		if err != nil {
			t.Fatalf("seed %d: Simulate() failed: %v", seed, err)
		}
		if len(report.Rounds) != 1 || report.Rounds[0].Finished {
			t.Errorf("seed %d: autopilot should survive 5000 ticks, got %+v", seed, report.Rounds)
		}
		if report.Best() != 5000 {
			t.Errorf("seed %d: Best() = %d, expected 5000", seed, report.Best())
		}
	}
}

func TestSimulateDeterministic(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Obstacles.ScrollSpeed = 9

	run := func() Report {
		opts := simOptions(77, 3000, true)
		opts.Game = cfg
		report, err := Simulate(context.Background(), opts)
		if err != nil {
			t.Fatalf("Simulate() failed: %v", err)
		}
		return report
	}

	a, b := run(), run()
	if len(a.Rounds) != len(b.Rounds) {
		t.Fatalf("round counts differ: %d vs %d", len(a.Rounds), len(b.Rounds))
	}
	for i := range a.Rounds {
		if a.Rounds[i] != b.Rounds[i] {
			t.Errorf("round %d differs: %+v vs %+v", i, a.Rounds[i], b.Rounds[i])
		}
	}
}

func TestSimulateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := Simulate(ctx, simOptions(1, 0, false))
	if err == nil {
		t.Fatal("cancelled simulation should return the context error")
	}
	if report.Ticks != 0 || len(report.Rounds) != 0 {
		t.Errorf("cancelled before the first tick, got %+v", report)
	}
}

func TestTickLimitOnGameOverTick(t *testing.T) {
	// The limit is reached on the tick that ends the first idle round.
	report, err := Simulate(context.Background(), simOptions(1, 141, false))
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	if len(report.Rounds) != 1 {
		t.Fatalf("got %d rounds, expected only the finished one: %+v", len(report.Rounds), report.Rounds)
	}
	if r := report.Rounds[0]; !r.Finished || r.Score != 141 || r.Ticks != 141 {
		t.Errorf("round = %+v, expected a finished round scoring 141", r)
	}
}

func TestSimulateRealtime(t *testing.T) {
	opts := simOptions(1, 5, false)
	opts.Runtime.Realtime = true
	opts.Runtime.TickInterval = time.Millisecond

	report, err := Simulate(context.Background(), opts)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	if report.Ticks != 5 {
		t.Errorf("ran %d ticks, expected 5", report.Ticks)
	}
}

func TestShouldJump(t *testing.T) {
	grounded := game.Player{Box: core.NewRect(50, 350, 50, 50), OnGround: true}
	airborne := grounded
	airborne.OnGround = false

	obstacleAt := func(x int) game.Obstacle {
		return game.Obstacle{Kind: game.KindSmallSquare, Box: core.NewRect(x, 350, 50, 50)}
	}

	tests := []struct {
		name      string
		player    game.Player
		obstacles []game.Obstacle
		want      bool
	}{
		{"no obstacles", grounded, nil, false},
		{"too far", grounded, []game.Obstacle{obstacleAt(146)}, false},
		{"window upper edge", grounded, []game.Obstacle{obstacleAt(145)}, true},
		{"window lower edge", grounded, []game.Obstacle{obstacleAt(140)}, false},
		{"inside window", grounded, []game.Obstacle{obstacleAt(143)}, true},
		{"in the air", airborne, []game.Obstacle{obstacleAt(143)}, false},
		{"passed obstacle ignored", grounded, []game.Obstacle{obstacleAt(0), obstacleAt(143)}, true},
		{"nearest wins", grounded, []game.Obstacle{obstacleAt(600), obstacleAt(120)}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShouldJump(tc.player, tc.obstacles); got != tc.want {
				t.Errorf("ShouldJump() = %v, expected %v", got, tc.want)
			}
		})
	}
}
