package breakout

import "github.com/vovakirdan/blockbreak/internal/core"

// Paddle patrols horizontally between the arena edges on its own.
type Paddle struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64 // Units per tick
	Direction     float64 // +1 right, -1 left
}

// Rect returns the paddle's rectangle.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Left returns the left edge.
func (p *Paddle) Left() float64 {
	return p.X
}

// Right returns the right edge.
func (p *Paddle) Right() float64 {
	return p.X + p.Width
}

// CenterX returns the horizontal center.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Patrol advances the paddle one step and turns it around once either edge
// has reached the arena boundary. The position is not corrected, so the
// paddle may sit up to one step past the edge until the next tick.
// Returns true if the direction flipped.
func (p *Paddle) Patrol(arenaW float64) bool {
	p.X += p.Speed * p.Direction

	if p.Left() <= 0 || p.Right() >= arenaW {
		p.Direction = -p.Direction
		return true
	}
	return false
}
