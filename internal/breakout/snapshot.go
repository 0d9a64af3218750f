package breakout

import "math"

// Snapshot is a read-only copy of everything a frontend needs to draw a
// frame. It shares no memory with the simulation.
type Snapshot struct {
	Tick      uint64       `yaml:"tick"`
	ArenaW    float64      `yaml:"arena_w"`
	ArenaH    float64      `yaml:"arena_h"`
	Ball      BallState    `yaml:"ball"`
	Paddle    PaddleState  `yaml:"paddle"`
	Blocks    []BlockState `yaml:"blocks,omitempty"`
	Remaining int          `yaml:"remaining"`
}

// BallState is the drawable ball.
type BallState struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
}

// PaddleState is the drawable paddle.
type PaddleState struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Direction float64 `yaml:"direction"`
}

// BlockState is one block of the grid, in row-major order.
type BlockState struct {
	X1      float64 `yaml:"x1"`
	Y1      float64 `yaml:"y1"`
	X2      float64 `yaml:"x2"`
	Y2      float64 `yaml:"y2"`
	Visible bool    `yaml:"visible"`
}

// Snapshot returns the current state.
func (s *Simulation) Snapshot() Snapshot {
	blocks := make([]BlockState, len(s.blocks))
	for i, b := range s.blocks {
		blocks[i] = BlockState{
			X1:      b.Rect.X1,
			Y1:      b.Rect.Y1,
			X2:      b.Rect.X2,
			Y2:      b.Rect.Y2,
			Visible: b.Visible,
		}
	}

	return Snapshot{
		Tick:   s.tick,
		ArenaW: s.cfg.Arena.Width,
		ArenaH: s.cfg.Arena.Height,
		Ball: BallState{
			X:      s.ball.Pos.X,
			Y:      s.ball.Pos.Y,
			Radius: s.ball.Radius,
			VX:     s.ball.Vel.X,
			VY:     s.ball.Vel.Y,
		},
		Paddle: PaddleState{
			X:         s.paddle.X,
			Y:         s.paddle.Y,
			Width:     s.paddle.Width,
			Height:    s.paddle.Height,
			Direction: s.paddle.Direction,
		},
		Blocks:    blocks,
		Remaining: CountVisible(s.blocks),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []float64{
		snap.ArenaW, snap.ArenaH,
		snap.Ball.X, snap.Ball.Y, snap.Ball.Radius, snap.Ball.VX, snap.Ball.VY,
		snap.Paddle.X, snap.Paddle.Y, snap.Paddle.Width, snap.Paddle.Height, snap.Paddle.Direction,
	} {
		h = h*31 + math.Float64bits(v)
	}

	for _, b := range snap.Blocks {
		h = h*31 + math.Float64bits(b.X1)
		h = h*31 + math.Float64bits(b.Y1)
		h = h*31 + math.Float64bits(b.X2)
		h = h*31 + math.Float64bits(b.Y2)
		if b.Visible {
			h = h*31 + 1
		} else {
			h = h * 31
		}
	}

	h = h*31 + uint64(snap.Remaining) //#nosec G115 -- hash computation
	return h
}
