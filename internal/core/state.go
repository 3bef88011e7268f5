package core

// GameState is the mode-specific simulation data of the open minigame.
// Each simulator defines its own concrete state type.
type GameState interface {
	// Mode tags the variant.
	Mode() Mode

	// Score returns the value that is converted into a reward.
	Score() int
}

// StepResult is returned by a simulator after one frame step.
type StepResult struct {
	State      GameState
	ScoreDelta int  // Score gained during this step
	Terminal   bool // Whether a terminal condition (collision, board full) was reached
}
