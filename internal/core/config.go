package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to schedule deferred work.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means the platform picks one

	// Scheduler runs deferred callbacks (countdowns, respawns) on the
	// simulation goroutine. Nil means deferred work never fires.
	Scheduler Scheduler
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int    // Current score
	TimeLeft  int    // Remaining seconds, -1 when the mode is untimed
	GameOver  bool   // Whether the game has ended
	EndReason string // Why the game ended, empty while playing
	Paused    bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
