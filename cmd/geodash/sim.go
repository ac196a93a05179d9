package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/geodash/internal/platform/headless"
	"github.com/vovakirdan/geodash/internal/registry"
)

var (
	flagTicks     int
	flagAutopilot bool
	flagRealtime  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Play rounds back to back without a display, restarting after every
game over, and print the result of each round.

Without --autopilot the player never jumps, so every round ends when the
first obstacle arrives. With --autopilot the player jumps in front of each
obstacle.

Examples:
  geodash sim
  geodash sim --ticks 10000 --autopilot --seed 7
  geodash sim --realtime --ticks 500`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 5000, "Number of ticks to simulate (0 = until interrupted)")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Jump automatically in front of obstacles")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks at the configured tick period")
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagTicks < 0 {
		return fmt.Errorf("--ticks must not be negative, got %d", flagTicks)
	}

	cfg, rt, err := loadConfig()
	if err != nil {
		return err
	}
	rt.MaxTicks = flagTicks
	rt.Autopilot = flagAutopilot
	rt.Realtime = flagRealtime

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	report, err := headless.Simulate(cmd.Context(), registry.RunOptions{
		Game:    cfg,
		Runtime: rt,
		Logger:  logger,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("simulation failed: %w", err)
	}

	fmt.Printf("Seed %d, %d ticks, %d rounds\n\n", report.Seed, report.Ticks, len(report.Rounds))
	fmt.Printf("  %5s  %7s  %s\n", "Round", "Score", "Result")
	fmt.Printf("  %5s  %7s  %s\n", "-----", "-----", "------")
	for _, r := range report.Rounds {
		result := "game over"
		if !r.Finished {
			result = "still running"
		}
		fmt.Printf("  %5d  %7d  %s\n", r.Round, r.Score, result)
	}
	fmt.Println()
	fmt.Printf("Best score: %d\n", report.Best())
	return nil
}
