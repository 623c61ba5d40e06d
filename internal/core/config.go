package core

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

// MsToTicks converts a duration in milliseconds to a whole number of ticks
// at this config's tick rate. Never returns less than one tick for a positive duration.
func (c RuntimeConfig) MsToTicks(ms int) int {
	if ms <= 0 {
		return 0
	}
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	ticks := (ms*rate + 500) / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score (meters skied)
	GameOver bool // Whether the run ended in a crash
	Won      bool // Whether the run reached the goal
	Paused   bool // Whether the game is paused
}

// Finished reports whether the run has reached a terminal state.
func (s GameState) Finished() bool {
	return s.GameOver || s.Won
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Event is a notable gameplay occurrence reported by a tick.
// The platform uses events for side effects such as sound cues.
type Event int

const (
	EventNone Event = iota
	EventJump
	EventBoost
	EventCrash
	EventWin
	EventMilestone
)

// Virtual pixel size of one terminal cell. Game logic works in virtual
// pixels; renderers divide by these to find the cell to draw in.
const (
	CellPixelsX = 10
	CellPixelsY = 20
)
