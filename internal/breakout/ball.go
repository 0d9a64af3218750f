package breakout

import "github.com/vovakirdan/blockbreak/internal/core"

// Ball is the single moving entity. Velocity is in arena units per tick.
type Ball struct {
	Pos    core.Vec
	Vel    core.Vec
	Radius float64
}

// Move advances the ball by one tick of its velocity.
func (b *Ball) Move() {
	b.Pos = b.Pos.Add(b.Vel)
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.Vel.X = -b.Vel.X
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.Vel.Y = -b.Vel.Y
}

// Circle returns the ball's collision disk.
func (b *Ball) Circle() core.Circle {
	return core.Circle{Center: b.Pos, Radius: b.Radius}
}

// Bottom returns the y coordinate of the ball's lower edge.
func (b *Ball) Bottom() float64 {
	return b.Pos.Y + b.Radius
}
