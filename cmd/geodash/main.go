// geodash is a side-scrolling reflex game: jump a box over obstacles that
// scroll in from the right.
//
// Usage:
//
//	geodash play             - Play in the terminal
//	geodash play -b window   - Play in a desktop window
//	geodash sim              - Run a headless simulation
//	geodash backends         - List available backends
//	geodash config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: ~/.geodash/config.yaml, then embedded)
//	--seed <value>      - Set RNG seed for reproducible obstacle sequences
//	--tick-ms <ms>      - Override the tick period
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Append logs to a file
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/geodash/internal/config"
	"github.com/vovakirdan/geodash/internal/core"

	// Import backends to register them
	_ "github.com/vovakirdan/geodash/internal/platform/headless"
	_ "github.com/vovakirdan/geodash/internal/platform/tui"
	_ "github.com/vovakirdan/geodash/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagTickMS   int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "geodash",
	Short: "Geodash - jump over obstacles in your terminal or a window",
	Long: `Geodash is a minimal side-scrolling reflex game. A box falls under
gravity and jumps over obstacles scrolling in from the right. The round
ends on the first touch; your score is the number of ticks survived.

Available commands:
  play      - Play a round (terminal or desktop window)
  sim       - Run a headless simulation
  backends  - Show available backends
  config    - Print the effective configuration

Examples:
  geodash play
  geodash play --backend window --seed 42
  geodash sim --ticks 10000 --autopilot
  geodash config --config ./my-geodash.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagTickMS, "tick-ms", 0, "Tick period in milliseconds (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game config and applies the global flag overrides.
func loadConfig() (config.GameConfig, core.RuntimeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, core.RuntimeConfig{}, err
	}
	if flagTickMS < 0 {
		return config.GameConfig{}, core.RuntimeConfig{}, fmt.Errorf("--tick-ms must be positive, got %d", flagTickMS)
	}
	if flagTickMS > 0 {
		cfg.Tick.IntervalMS = flagTickMS
	}

	rt := core.DefaultConfig()
	rt.TickInterval = cfg.Tick.Interval()
	rt.Seed = flagSeed
	return cfg, rt, nil
}

// newLogger builds the logger from the global flags. Without a log file,
// output goes to fallback. The returned close function is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "geodash",
		Level:           level,
	})
	return logger, closeFn, nil
}
