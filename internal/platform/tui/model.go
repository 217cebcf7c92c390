package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickball/internal/core"
	"github.com/vovakirdan/brickball/internal/registry"
)

// footerRows is the space below the playfield kept for the help line.
const footerRows = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	canvas   *core.CellCanvas
	renderer *ScreenRenderer
	logger   *log.Logger

	config    core.RuntimeConfig
	fixedSeed bool
	input     core.InputFrame
	held      *HeldKeys
	keys      *KeyMapper
	help      help.Model
	gameState core.GameState

	quitting   bool
	backToMenu bool
	err        error
}

// NewModel resets game and wraps it in a Bubble Tea model.
// A zero seed picks a time-based one for every session.
func NewModel(game registry.Game, cfg core.RuntimeConfig, r *lipgloss.Renderer, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return Model{}, err
	}

	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 1))
	size := game.WorldSize()

	return Model{
		game:      game,
		screen:    screen,
		canvas:    core.NewCellCanvas(screen, size.X, size.Y),
		renderer:  NewScreenRenderer(r),
		logger:    logger,
		config:    cfg,
		fixedSeed: fixedSeed,
		input:     core.NewInputFrame(),
		held:      NewHeldKeys(holdWindow(cfg.TickRate)),
		keys:      NewKeyMapper(),
		help:      help.New(),
		gameState: game.State(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
		}
	case isDirection(action):
		m.held.Press(action)
	case action != core.ActionNone:
		m.input.Set(action)
	}
	return m, nil
}

// handleResize fits the playfield to the new terminal size.
// The world keeps its size; only the cell scale changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerRows, 1))
	m.canvas.Refit()
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if m.input.Has(core.ActionRestart) {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		if err := m.game.Reset(m.config); err != nil {
			m.logger.Error("restart failed", "game", m.game.ID(), "err", err)
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		m.gameState = m.game.State()
		m.input.Clear()
		m.held.Release()
		return m, tickCmd(m.config.TickRate)
	}

	m.held.Apply(&m.input)
	result := m.game.Step(m.input)
	m.gameState = result.State

	m.held.Tick()
	m.input.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.canvas)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".brickball", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)
	m.drawBanner()
	return m.renderer.Render(m.screen) + "\n" + m.help.View(m.keys.Keys)
}

// drawBanner boxes a hint in the middle of the playfield while the game
// is paused or over. Too small a screen gets no banner.
func (m Model) drawBanner() {
	var title string
	switch {
	case m.gameState.GameOver:
		title = "GAME OVER"
	case m.gameState.Paused:
		title = "PAUSED"
	default:
		return
	}
	hint := "r restart, esc menu"

	w, h := len(hint)+4, 4
	if m.screen.Width() < w || m.screen.Height() < h {
		return
	}
	box := core.NewRect((m.screen.Width()-w)/2, (m.screen.Height()-h)/2, w, h)
	m.screen.DrawRect(box, ' ')
	m.screen.DrawBox(box)
	m.screen.DrawTextCentered(box.Y+1, title, core.ColorWhite)
	m.screen.DrawTextCentered(box.Y+2, hint, core.ColorGray)
}

// State returns the game state seen at the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for game and closes it afterwards.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(game, cfg, nil, logger)
	if err != nil {
		return err
	}
	defer game.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
