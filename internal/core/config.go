package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for seeding their RNG.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Animation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int    // Current score (may be negative)
	Remaining int    // Seconds left in the round
	Best      int    // Best score known to the game
	Running   bool   // Whether a round is in progress
	GameOver  bool   // Whether the last round has ended
	EndReason string // Why the last round ended, empty while running
	Ticks     uint64 // Simulation ticks in the current round
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// BestScores persists the best score of a single game across sessions.
// Implementations must tolerate a missing prior value by returning 0.
type BestScores interface {
	LoadBest() (int, error)
	SaveBest(score int) error
}
