package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size the play field and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for windowed adapters)
	ScreenH  int   // Screen height in characters (or pixels for windowed adapters)
	FieldW   int   // Explicit field width in field units; 0 derives it from the screen
	FieldH   int   // Explicit field height in field units; 0 derives it from the screen
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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
	Tick      uint64 // Simulation ticks elapsed since Reset
	Completed int    // Barriers that reached a field boundary
	Destroyed int    // Barriers destroyed by the ball while growing
	Paused    bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
