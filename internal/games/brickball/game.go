// Package brickball implements the brick-wall fracture game: a player ball,
// a few enemy balls and two walls of bricks that break loose when hit hard
// enough. All simulation goes through internal/physics.
package brickball

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickball/internal/config"
	"github.com/vovakirdan/brickball/internal/core"
	"github.com/vovakirdan/brickball/internal/light"
	"github.com/vovakirdan/brickball/internal/palette"
	"github.com/vovakirdan/brickball/internal/physics"
	"github.com/vovakirdan/brickball/internal/registry"
)

// Updater is an entity that advances once per tick after the world step.
type Updater interface {
	Update(ctx *Context)
}

// Renderable is an entity that draws itself.
type Renderable interface {
	Render(dst core.Canvas, ctx *Context)
}

// Variant selects the light used by a registered game.
type Variant struct {
	ID    string
	Title string
	Light string // config.LightPoint, config.LightDirectional, config.LightNone, or "" for the config's choice
}

// Variants lists the registered flavours of the game.
var Variants = []Variant{
	{ID: "brickball", Title: "Brickball", Light: ""},
	{ID: "brickball_sun", Title: "Brickball (Sunlight)", Light: config.LightDirectional},
	{ID: "brickball_flat", Title: "Brickball (Unlit)", Light: config.LightNone},
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives session and fracture logs
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger replaces the package logger. A nil logger discards output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game is one brickball session host. Reset builds a session and Close
// tears it down; a Game can be reset any number of times.
type Game struct {
	variant Variant
	fixed   *config.BrickballConfig // When set, used instead of loading
	preset  config.DifficultyPreset // Overrides the package preset when set

	runtime    core.RuntimeConfig
	cfg        config.BrickballConfig
	ctx        *Context
	difficulty *config.DifficultyManager
	background core.Color

	player  *Ball
	enemies []*Ball
	walls   []*Wall

	updaters    []Updater
	renderables []Renderable

	tick        int
	score       int
	totalBricks int
	paused      bool
	over        bool
}

// New creates a game for a variant. No session exists until Reset.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// NewWithConfig creates a game that always uses cfg instead of loading
// configuration from disk.
func NewWithConfig(v Variant, cfg config.BrickballConfig) *Game {
	return &Game{variant: v, fixed: &cfg}
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	return g.variant.Title
}

func (g *Game) loadConfig() (config.BrickballConfig, error) {
	var cfg config.BrickballConfig
	if g.fixed != nil {
		cfg = *g.fixed
	} else {
		loaded, err := config.LoadBrickball(configPath)
		if err != nil {
			return loaded, err
		}
		cfg = loaded
	}

	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyBrickballPreset(&cfg, preset)
	}
	return cfg, nil
}

// SetDifficulty picks the preset this game uses on its next Reset,
// overriding the one set with SetDifficultyPreset.
func (g *Game) SetDifficulty(name string) error {
	p, err := config.ParsePreset(name)
	if err != nil {
		return fmt.Errorf("brickball: %w", err)
	}
	g.preset = p
	return nil
}

// Reset tears down the previous session and builds a new one.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	g.Close()

	cfg, err := g.loadConfig()
	if err != nil {
		return fmt.Errorf("brickball: %w", err)
	}
	if g.variant.Light != "" {
		cfg.Light.Type = g.variant.Light
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("brickball: %w", err)
	}
	background, err := palette.Parse(cfg.Render.Background)
	if err != nil {
		return fmt.Errorf("brickball: render.background: %w", err)
	}

	world, err := physics.NewWorld(physics.Def{
		Gravity:              core.V(cfg.World.Gravity.X, cfg.World.Gravity.Y),
		Iterations:           cfg.World.Iterations,
		CollisionSlop:        physics.DefaultDef().CollisionSlop,
		HitEventThreshold:    cfg.World.HitEventThreshold,
		RestitutionThreshold: cfg.World.RestitutionThreshold,
		MaxLinearSpeed:       cfg.World.MaxLinearSpeed,
	})
	if err != nil {
		return fmt.Errorf("brickball: %w", err)
	}

	g.runtime = runtime
	g.cfg = cfg
	g.background = background
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.tick, g.score, g.totalBricks = 0, 0, 0
	g.paused, g.over = false, false

	g.ctx = NewContext(world, &g.cfg, newLight(cfg.Light), logger.With("game", g.variant.ID), newRand(runtime.Seed))
	g.ctx.EnemySpeed = g.difficulty.Speed(cfg.Enemies.MaxSpeed, 0, 0)

	if err := g.populate(); err != nil {
		g.Close()
		return err
	}

	g.ctx.Logger.Info("session started",
		"seed", runtime.Seed,
		"enemies", len(g.enemies),
		"bricks", g.totalBricks,
		"light", cfg.Light.Type,
	)
	return nil
}

func newLight(cfg config.LightConfig) light.Light {
	switch cfg.Type {
	case config.LightPoint:
		p := light.NewPoint(core.V(cfg.Position.X, cfg.Position.Y))
		p.SetAttenuation(cfg.Attenuation.Constant, cfg.Attenuation.Linear, cfg.Attenuation.Quadratic)
		return p
	case config.LightDirectional:
		return light.NewDirectional(core.V(cfg.Direction.X, cfg.Direction.Y))
	default:
		return nil
	}
}

// populate creates bounds, balls and walls in the fresh world.
func (g *Game) populate() error {
	ctx, cfg := g.ctx, g.cfg
	size := g.WorldSize()

	g.buildBounds()

	playerColor, err := palette.Parse(cfg.Player.Color)
	if err != nil {
		return fmt.Errorf("brickball: player.color: %w", err)
	}
	g.player = NewBall(ctx, core.V(size.X*cfg.Player.Start.X, size.Y*cfg.Player.Start.Y), playerColor, false)

	colors := make([]core.Color, len(cfg.Enemies.Colors))
	for i, hex := range cfg.Enemies.Colors {
		if colors[i], err = palette.Parse(hex); err != nil {
			return fmt.Errorf("brickball: enemies.colors[%d]: %w", i, err)
		}
	}
	count := g.difficulty.EnemyCount(cfg.Enemies.Count, 0, 0)
	if count > 0 && len(colors) == 0 {
		return fmt.Errorf("brickball: %d enemies but enemies.colors is empty", count)
	}
	for i := range count {
		pos := core.V(
			uniform(ctx.Rand, size.X*0.125, size.X*0.875),
			uniform(ctx.Rand, size.Y*1/6, size.Y*5/6),
		)
		g.enemies = append(g.enemies, NewBall(ctx, pos, colors[i%len(colors)], true))
	}

	for _, spec := range []struct {
		name  string
		place config.WallPlacement
		o     Orientation
	}{
		{"horizontal", cfg.Walls.Horizontal, Horizontal},
		{"vertical", cfg.Walls.Vertical, Vertical},
	} {
		color, err := palette.Parse(spec.place.Color)
		if err != nil {
			return fmt.Errorf("brickball: walls.%s.color: %w", spec.name, err)
		}
		length := cfg.Walls.MinLength + ctx.Rand.IntN(cfg.Walls.MaxLength-cfg.Walls.MinLength+1)
		start := core.V(size.X*spec.place.At.X, size.Y*spec.place.At.Y)
		w := NewWall(ctx, spec.name, start, length, spec.o, color)
		g.walls = append(g.walls, w)
		g.totalBricks += w.Len()
	}

	// Walls update before balls so fractures see this step's events first.
	for _, w := range g.walls {
		g.updaters = append(g.updaters, w)
		g.renderables = append(g.renderables, w)
	}
	for _, b := range g.balls() {
		g.updaters = append(g.updaters, b)
		g.renderables = append(g.renderables, b)
	}
	return nil
}

// buildBounds surrounds the world with four thick static slabs whose inner
// faces lie on the world edges.
func (g *Game) buildBounds() {
	ctx := g.ctx
	size := g.WorldSize()
	t := g.cfg.World.BoundsThickness
	def := physics.ShapeDef{Density: 1, Friction: 0.3, Restitution: g.cfg.World.BoundsRestitution}

	slabs := []struct {
		center       core.Vec2
		halfW, halfH float64
	}{
		{core.V(size.X/2, -t/2), size.X/2 + t, t / 2},
		{core.V(size.X/2, size.Y+t/2), size.X/2 + t, t / 2},
		{core.V(-t/2, size.Y/2), t / 2, size.Y/2 + t},
		{core.V(size.X+t/2, size.Y/2), t / 2, size.Y/2 + t},
	}
	for _, s := range slabs {
		body := ctx.World.CreateBody(physics.BodyDef{Type: physics.Static, Position: ctx.ToWorld(s.center)})
		ctx.World.AddBox(body, def, ctx.Meters(s.halfW), ctx.Meters(s.halfH))
	}
}

func (g *Game) balls() []*Ball {
	if g.player == nil {
		return g.enemies
	}
	return append([]*Ball{g.player}, g.enemies...)
}

// Close tears the session down: walls, then balls, then the world.
func (g *Game) Close() {
	if g.ctx == nil {
		return
	}
	for _, w := range g.walls {
		w.Destroy(g.ctx)
	}
	for _, b := range g.balls() {
		b.Destroy(g.ctx)
	}
	g.ctx.World.Destroy()

	g.ctx = nil
	g.player = nil
	g.enemies = nil
	g.walls = nil
	g.updaters = nil
	g.renderables = nil
}

// Step advances the session by one tick: input, world step, walls, balls.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.ctx == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.over {
		g.paused = !g.paused
	}
	if g.paused || g.over {
		return core.StepResult{State: g.State()}
	}

	if dir := in.Direction(); !dir.IsZero() {
		g.player.ApplyForce(g.ctx, dir)
	}

	g.ctx.EnemySpeed = g.difficulty.Speed(g.cfg.Enemies.MaxSpeed, g.score, g.tick)
	g.ctx.World.Step(g.cfg.World.TimeStep, g.cfg.World.SubSteps)

	for _, u := range g.updaters {
		u.Update(g.ctx)
	}
	g.tick++

	before := g.score
	g.score = g.totalBricks - g.attachedBricks()
	broken := g.score - before

	if g.totalBricks > 0 && g.score == g.totalBricks {
		g.over = true
		g.ctx.Logger.Info("all bricks down", "ticks", g.tick)
	}

	return core.StepResult{State: g.State(), Broken: broken}
}

func (g *Game) attachedBricks() int {
	n := 0
	for _, w := range g.walls {
		n += w.AttachedCount()
	}
	return n
}

// Render draws the session. The canvas is cleared to the background first.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear(g.background)
	if g.ctx == nil {
		return
	}
	for _, r := range g.renderables {
		r.Render(dst, g.ctx)
	}
	if g.cfg.Render.ShowHUD {
		g.renderHUD(dst)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.over,
		Paused:   g.paused,
	}
}

// WorldSize returns the simulated area in pixels.
// Before the first Reset it reports the size the next session will use.
func (g *Game) WorldSize() core.Vec2 {
	w := g.cfg.World
	if w.Width == 0 || w.Height == 0 {
		if g.fixed != nil {
			w = g.fixed.World
		} else {
			w = config.DefaultBrickballConfig().World
		}
	}
	return core.V(w.Width, w.Height)
}

// Walls returns the session's walls.
func (g *Game) Walls() []*Wall {
	return g.walls
}

// Player returns the player ball, or nil without a session.
func (g *Game) Player() *Ball {
	return g.player
}

// Enemies returns the enemy balls.
func (g *Game) Enemies() []*Ball {
	return g.enemies
}

// Context returns the live session context, or nil without a session.
func (g *Game) Context() *Context {
	return g.ctx
}
