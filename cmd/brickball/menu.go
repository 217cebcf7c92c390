package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickball/internal/games/brickball"
	"github.com/vovakirdan/brickball/internal/platform/tui"
	"github.com/vovakirdan/brickball/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and difficulty interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a variant, left/right to change the
difficulty and Enter to play. Quitting a game returns to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Play
  Q               - Quit

Examples:
  brickball menu
  brickball menu --fps 30`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom brickball config YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := setupLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	brickball.SetConfigPath(flagConfig)
	cfg := terminalConfig()

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = result.Config
		if result.Quit {
			return nil
		}

		brickball.SetDifficultyPreset(string(result.Difficulty))
		game, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}
		if err := tui.Run(game, cfg, logger); err != nil {
			return fmt.Errorf("%s: %w", result.GameID, err)
		}
	}
}
