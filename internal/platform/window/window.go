// Package window runs a game in a desktop window with ebiten.
// The window shows the world at its native pixel size; ebiten scales it
// when the window is resized.
package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/brickball/internal/core"
	"github.com/vovakirdan/brickball/internal/registry"
)

// Options configures the window.
type Options struct {
	// Width and Height are the initial window size. Zero uses the world size.
	Width, Height int
	Logger        *log.Logger
}

// heldKeys map keys that act while held down.
var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// pressKeys map keys that act once per press.
var pressKeys = map[core.Action][]ebiten.Key{
	core.ActionPause:   {ebiten.KeyP, ebiten.KeySpace},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionQuit:    {ebiten.KeyEscape, ebiten.KeyQ},
}

// readInput builds the frame for this tick.
func readInput() core.InputFrame {
	frame := core.NewInputFrame()
	for action, keys := range heldKeys {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				frame.Set(action)
			}
		}
	}
	for action, keys := range pressKeys {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				frame.Set(action)
			}
		}
	}
	return frame
}

// adapter implements ebiten.Game on top of a registry game.
type adapter struct {
	game   registry.Game
	config core.RuntimeConfig
	canvas *Canvas
	logger *log.Logger
	fixed  bool // Keep the seed across restarts
}

// Update runs one simulation tick.
func (a *adapter) Update() error {
	in := readInput()
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if in.Has(core.ActionRestart) {
		if !a.fixed {
			a.config.Seed = time.Now().UnixNano()
		}
		if err := a.game.Reset(a.config); err != nil {
			return fmt.Errorf("window: restart: %w", err)
		}
		a.logger.Info("restarted", "seed", a.config.Seed)
		return nil
	}
	a.game.Step(in)
	return nil
}

// Draw renders the game.
func (a *adapter) Draw(screen *ebiten.Image) {
	a.canvas.Target(screen)
	a.game.Render(a.canvas)
}

// Layout keeps the logical screen at the world size.
func (a *adapter) Layout(_, _ int) (int, int) {
	size := a.canvas.Size()
	return int(size.X), int(size.Y)
}

// Run opens a window and plays game until it is closed.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return err
	}
	defer game.Close()

	size := game.WorldSize()
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = int(size.X), int(size.Y)
	}

	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	logger.Info("window opened", "game", game.ID(), "width", w, "height", h, "seed", cfg.Seed)
	err := ebiten.RunGame(&adapter{
		game:   game,
		config: cfg,
		canvas: NewCanvas(white, size),
		logger: logger,
		fixed:  fixed,
	})
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
