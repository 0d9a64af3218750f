// Package breakout implements the arena simulation: one ball, a grid of
// blocks and an autonomous paddle, advanced one fixed tick at a time.
package breakout

import (
	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/core"
)

// Simulation owns every entity in the arena. It is not safe for concurrent
// use; each host loop owns its own Simulation.
type Simulation struct {
	cfg config.Config

	ball   Ball
	paddle Paddle
	blocks []Block

	tick uint64

	// Whether the ball was in the paddle zone on the previous tick.
	// Only consulted when debouncing.
	paddleContact bool
}

// New creates a simulation from a validated configuration.
func New(cfg config.Config) *Simulation {
	s := &Simulation{cfg: cfg}
	s.Reset()
	return s
}

// NewDefault creates a simulation with the built-in arena.
func NewDefault() *Simulation {
	return New(config.Default())
}

// Config returns the configuration the simulation was built from.
func (s *Simulation) Config() config.Config {
	return s.cfg
}

// Reset rebuilds every entity from the configuration.
func (s *Simulation) Reset() {
	c := s.cfg

	s.ball = Ball{
		Pos:    core.Vec{X: c.Ball.X, Y: c.Ball.Y},
		Vel:    core.Vec{X: c.Ball.VX, Y: c.Ball.VY},
		Radius: c.Ball.Radius,
	}
	s.paddle = Paddle{
		X:         c.Paddle.X,
		Y:         c.Paddle.Y,
		Width:     c.Paddle.Width,
		Height:    c.Paddle.Height,
		Speed:     c.Paddle.Speed,
		Direction: float64(c.Paddle.Direction),
	}
	s.blocks = BuildGrid(c.Blocks)
	s.tick = 0
	s.paddleContact = false
}

// Tick returns the number of ticks simulated since the last reset.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Remaining returns the number of visible blocks.
func (s *Simulation) Remaining() int {
	return CountVisible(s.blocks)
}

// Step advances the simulation by one tick:
// move the ball, patrol the paddle, then resolve walls, paddle and blocks
// in that order.
func (s *Simulation) Step() StepResult {
	s.tick++
	result := StepResult{Tick: s.tick}
	rules := s.cfg.Rules
	arena := s.cfg.Arena

	s.ball.Move()

	if s.paddle.Patrol(arena.Width) {
		result.Events = append(result.Events, Event{Kind: EventPaddleTurn, Block: -1})
	}
	if rules.ClampWalls {
		s.paddle.X = core.ClampF(s.paddle.X, 0, arena.Width-s.paddle.Width)
	}

	hitX, hitY := CheckWallCollision(&s.ball, arena.Width, arena.Height, rules.ClampWalls)
	if hitX {
		result.Events = append(result.Events, Event{Kind: EventWallX, Block: -1})
	}
	if hitY {
		result.Events = append(result.Events, Event{Kind: EventWallY, Block: -1})
	}

	inZone := InPaddleZone(&s.ball, &s.paddle)
	if inZone && !(rules.Debounce && s.paddleContact) {
		ApplyPaddleBounce(&s.ball, &s.paddle, rules.PaddleSpin)
		result.Events = append(result.Events, Event{Kind: EventPaddle, Block: -1})
	}
	s.paddleContact = inZone

	for _, hit := range CheckBlockCollisions(&s.ball, s.blocks, rules.Debounce) {
		result.Events = append(result.Events, Event{Kind: EventBlock, Block: hit.Index})
	}

	return result
}
