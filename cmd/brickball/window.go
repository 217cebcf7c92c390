package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickball/internal/core"
	"github.com/vovakirdan/brickball/internal/platform/window"
	"github.com/vovakirdan/brickball/internal/registry"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play the given variant (default: brickball)
at full resolution.

Controls:
  Arrows/WASD  - Push your ball
  P/Space      - Pause
  R            - Restart
  Esc/Q        - Quit

Examples:
  brickball window
  brickball window brickball_sun --width 1600 --height 1200`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().IntVar(&flagWidth, "width", 0, "Window width (0 = world width)")
	windowCmd.Flags().IntVar(&flagHeight, "height", 0, "Window height (0 = world height)")
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID := "brickball"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'brickball list' to see them", gameID)
	}

	logger, closeLog, err := setupLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := applyGameFlags(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return window.Run(game, cfg, window.Options{
		Width:  flagWidth,
		Height: flagHeight,
		Logger: logger,
	})
}
