package core

// CommandKind is a typed, input-derived instruction for the active simulator.
// Simulators receive these intents rather than raw key or pointer events.
type CommandKind int

const (
	CmdNone           CommandKind = iota
	CmdFlap                       // Flappy: apply the upward impulse
	CmdMoveLeftStart              // Coin Catch: left key held
	CmdMoveLeftStop               // Coin Catch: left key released
	CmdMoveRightStart             // Coin Catch: right key held
	CmdMoveRightStop              // Coin Catch: right key released
	CmdTurn                       // Snake: queue a direction (DX, DY)
	CmdTap                        // Target: pointer down at (X, Y)
	CmdGenericTap                 // Click: any tap on the button
)

// String returns a human-readable name for the command kind.
func (k CommandKind) String() string {
	switch k {
	case CmdNone:
		return "none"
	case CmdFlap:
		return "flap"
	case CmdMoveLeftStart:
		return "move-left-start"
	case CmdMoveLeftStop:
		return "move-left-stop"
	case CmdMoveRightStart:
		return "move-right-start"
	case CmdMoveRightStop:
		return "move-right-stop"
	case CmdTurn:
		return "turn"
	case CmdTap:
		return "tap"
	case CmdGenericTap:
		return "generic-tap"
	default:
		return "unknown"
	}
}

// Command carries a kind plus its payload.
// X/Y are logical surface coordinates (CmdTap); DX/DY a unit direction (CmdTurn).
type Command struct {
	Kind   CommandKind
	X, Y   float64
	DX, DY int
}

// Flap returns a flap command.
func Flap() Command { return Command{Kind: CmdFlap} }

// Tap returns a positional tap command.
func Tap(x, y float64) Command { return Command{Kind: CmdTap, X: x, Y: y} }

// GenericTap returns a tap without coordinates.
func GenericTap() Command { return Command{Kind: CmdGenericTap} }

// Turn returns a snake turn command.
func Turn(dx, dy int) Command { return Command{Kind: CmdTurn, DX: dx, DY: dy} }

// Move returns the start or stop command for a horizontal direction.
// dir < 0 is left, anything else is right.
func Move(dir int, held bool) Command {
	switch {
	case dir < 0 && held:
		return Command{Kind: CmdMoveLeftStart}
	case dir < 0:
		return Command{Kind: CmdMoveLeftStop}
	case held:
		return Command{Kind: CmdMoveRightStart}
	default:
		return Command{Kind: CmdMoveRightStop}
	}
}
