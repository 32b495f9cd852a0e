package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in columns
	ScreenH  int   // Screen height in rows
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

// ResolveSeed returns the seed, substituting the current time for 0.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed == 0 {
		return time.Now().UnixNano()
	}
	return c.Seed
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Won      bool // Whether the game ended by clearing every goal
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// RunStats summarizes a finished game for persistence.
type RunStats struct {
	Level         int    // Highest level reached
	Swaps         int    // Swaps that resolved a match
	Misses        int    // Swaps that were reverted
	Cascades      int    // Resolve iterations across all swaps
	Regenerations int    // Boards replaced for lack of moves
	Ticks         int    // Simulation ticks played
	EndReason     string // "won", "out_of_moves", "unsolvable", "quit"
}
