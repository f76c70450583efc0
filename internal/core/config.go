package core

// Default world dimensions in pixels. Games simulate in world space regardless
// of the physical display.
const (
	DefaultWorldW   = 800
	DefaultWorldH   = 600
	DefaultTickRate = 60
)

// RuntimeConfig contains configuration passed to games at initialization.
// It is built once at start-up and passed explicitly; games never read globals.
type RuntimeConfig struct {
	WorldW   float64 // World width in pixels
	WorldH   float64 // World height in pixels
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		WorldW:   DefaultWorldW,
		WorldH:   DefaultWorldH,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the top-level state of a game session.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    Phase
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // Whether the session has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// Game is the interface front-ends drive.
// Games contain pure logic; the platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game, used as the score key.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state onto the canvas.
	Render(dst Canvas)

	// State returns the current game state.
	State() GameState
}
