package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickball/internal/core"
	"github.com/vovakirdan/brickball/internal/platform/tui"
	"github.com/vovakirdan/brickball/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start playing the given variant (default: brickball) in the terminal.

Controls:
  Arrows/WASD  - Push your ball
  P/Space      - Pause
  R            - Restart
  ?            - More keys
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Fewer, slower enemies and shorter walls
  normal - The configured arena, difficulty rises with your score
  hard   - More, faster enemies; bricks break along the contact normal
  fixed  - No progression, stays at config's initial level

Examples:
  brickball play
  brickball play brickball_flat --difficulty easy
  brickball play --config ./my-brickball.yaml --log-file brickball.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// terminalConfig reads the terminal size into a runtime config.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "brickball"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'brickball list' to see them", gameID)
	}

	logger, closeLog, err := setupLogger(io.Discard)
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
	return tui.Run(game, terminalConfig(), logger)
}
