package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
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

// TicksToSeconds converts a tick count to whole seconds at this tick rate.
func (c RuntimeConfig) TicksToSeconds(ticks uint64) int {
	if c.TickRate <= 0 {
		return 0
	}
	return int(ticks / uint64(c.TickRate))
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended in a win
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// GameResult summarizes one finished session for the result history.
type GameResult struct {
	Preset   string        // Difficulty preset name
	Width    int           // Board width in cells
	Height   int           // Board height in cells
	Mines    int           // Mines on the board when the session ended
	Won      bool          // Whether every safe cell was dug
	Duration time.Duration // Time from the first dig to the end
	CellsDug int           // Safe cells dug
}
