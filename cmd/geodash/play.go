package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/geodash/internal/registry"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play geodash",
	Long: `Start a game on the selected backend.

Controls:
  Space/Up/W   - Jump (only on the ground)
  Left/A       - Step left
  Right/D      - Step right
  R/Enter      - Play again (after game over, or click the button)
  Q/Esc/Ctrl+C - Quit

Backends:
  tui     - Terminal, scaled to the window size
  window  - Desktop window at 800x400

Examples:
  geodash play
  geodash play --backend window
  geodash play --seed 42 --tick-ms 30
  geodash play --config ./my-geodash.yaml`,
	Args: cobra.NoArgs,
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagBackend, "backend", "b", "tui", "Backend: tui or window")
}

func runPlay(cmd *cobra.Command, args []string) error {
	backend, err := registry.CreateInteractive(flagBackend)
	if errors.Is(err, registry.ErrNotInteractive) {
		return fmt.Errorf("%w, use 'geodash sim' instead", err)
	}
	if err != nil {
		return fmt.Errorf("%w, run 'geodash backends' to see available backends", err)
	}

	cfg, rt, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal is owned by the UI while the tui backend runs
	var fallback io.Writer = os.Stderr
	if flagBackend == "tui" {
		fallback = io.Discard
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			rt.ScreenW = w
			rt.ScreenH = h
		}
	}

	logger, closeLog, err := newLogger(fallback)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	logger.Info("backend starting", "backend", backend.ID(), "tick", rt.TickInterval, "seed", rt.Seed)
	runErr := backend.Run(cmd.Context(), registry.RunOptions{
		Game:    cfg,
		Runtime: rt,
		Logger:  logger,
	})
	logger.Info("backend stopped", "backend", backend.ID())

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
