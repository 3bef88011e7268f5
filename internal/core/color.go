package core

// Color is a palette entry for surface drawing.
// The host maps each entry to whatever its display supports.
type Color uint8

// Palette used by the minigames.
const (
	ColorDefault    Color = iota
	ColorBackdrop         // Dimmed play area
	ColorTarget           // Target rings and coins
	ColorTargetCore       // Inner highlight of the target
	ColorPaddle           // Coin Catch basket
	ColorPipe             // Flappy pipe body
	ColorPipeCap          // Flappy pipe cap
	ColorBird             // Flappy bird
	ColorSnakeHead        // Snake head segment
	ColorSnakeBody        // Snake body segments
	ColorFood             // Snake treat
	ColorText             // HUD and overlay text
)
