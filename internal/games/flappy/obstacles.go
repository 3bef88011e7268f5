package flappy

import (
	"math"

	"github.com/vovakirdan/pet-arcade/internal/config"
	"github.com/vovakirdan/pet-arcade/internal/core"
)

// Pipe represents a vertical obstacle with a gap for the bird to pass through.
// X is the leading (left) edge and may be negative while the pipe scrolls off.
type Pipe struct {
	X      float64
	GapY   float64 // Top of the gap
	Passed bool    // Whether the pipe has been scored
}

// Layout holds the surface-derived sizes of the playfield.
type Layout struct {
	Width, Height float64
	BirdX         float64
	BirdRadius    float64
	PipeWidth     float64
	Gap           float64
}

// NewLayout derives bird and pipe sizes from the logical surface.
func NewLayout(surface config.SurfaceConfig, cfg config.FlappyConfig) Layout {
	w, h := surface.Width, surface.Height
	return Layout{
		Width:      w,
		Height:     h,
		BirdX:      w * cfg.BirdXFactor,
		BirdRadius: math.Max(cfg.BirdMinRadius, w*cfg.BirdRadiusFactor),
		PipeWidth:  math.Max(cfg.PipeMinWidth, w*cfg.PipeWidthFactor),
		Gap:        math.Max(cfg.GapMin, h*cfg.GapFactor),
	}
}

// TopRect returns the collision rectangle of the upper pipe body.
func (l Layout) TopRect(p Pipe) core.Rect {
	return core.NewRect(p.X, 0, l.PipeWidth, p.GapY)
}

// BottomRect returns the collision rectangle of the lower pipe body.
func (l Layout) BottomRect(p Pipe) core.Rect {
	bottomY := p.GapY + l.Gap
	return core.NewRect(p.X, bottomY, l.PipeWidth, l.Height-bottomY)
}

// BirdRect returns the bounding box of a bird centred at birdY.
func (l Layout) BirdRect(birdY float64) core.Rect {
	return core.NewRect(l.BirdX-l.BirdRadius, birdY-l.BirdRadius, 2*l.BirdRadius, 2*l.BirdRadius)
}

// Hits reports whether a bird centred at birdY overlaps the pipe body.
// Touching an edge counts as a hit.
func (l Layout) Hits(p Pipe, birdY float64) bool {
	bird := l.BirdRect(birdY)
	return bird.Intersects(l.TopRect(p)) || bird.Intersects(l.BottomRect(p))
}

// OutOfBounds reports whether the bird touches the top or bottom edge.
func (l Layout) OutOfBounds(birdY float64) bool {
	return birdY-l.BirdRadius <= 0 || birdY+l.BirdRadius >= l.Height
}

// spawnPipe creates a pipe just beyond the right edge with a random gap offset.
func (l Layout) spawnPipe(margin float64, rng core.RNG) Pipe {
	maxGapY := math.Max(margin+10, l.Height-l.Gap-margin)
	return Pipe{
		X:    l.Width + l.PipeWidth,
		GapY: core.RandRange(rng, margin, maxGapY),
	}
}
