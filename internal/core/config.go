package core

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // columns
	ScreenH  int   // rows
	TickRate int   // frames per second
	Seed     int64 // 0 asks the platform for a fresh seed
}

// DefaultConfig returns an 80x24 screen at 50 frames per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 50,
	}
}

// WithDefaults fills a non-positive tick rate from DefaultConfig and a zero
// seed from newSeed.
func (c RuntimeConfig) WithDefaults(newSeed func() int64) RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultConfig().TickRate
	}
	if c.Seed == 0 && newSeed != nil {
		c.Seed = newSeed()
	}
	return c
}

// GameState is the part of a game the platform watches.
type GameState struct {
	Score     int
	Mazes     int  // mazes cleared in the current game
	HighScore int  // best score this game instance has seen
	GameOver  bool // a game ended during the last step
	Paused    bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
	Quit  bool // leave to the title screen
}
