package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for windowed hosts)
	ScreenH  int   // Screen height in characters (or pixels for windowed hosts)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for the session layout
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Bricks broken so far
	GameOver bool // Whether every brick has been knocked loose
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Broken is the number of bricks detached during this tick.
	Broken int
}
