// Package config provides YAML-based configuration for the arena, its
// entities and the frontends that host it.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains everything needed to build a simulation and run it.
type Config struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Blocks   BlocksConfig   `yaml:"blocks"`
	Rules    RulesConfig    `yaml:"rules"`
	Frontend FrontendConfig `yaml:"frontend"`
}

// ArenaConfig defines the play area. The origin is the top-left corner.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball's starting state.
type BallConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
	VX     float64 `yaml:"vx"` // Units per tick
	VY     float64 `yaml:"vy"`
}

// PaddleConfig defines the patrolling paddle.
type PaddleConfig struct {
	X         float64 `yaml:"x"` // Left edge
	Y         float64 `yaml:"y"` // Top edge
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Speed     float64 `yaml:"speed"`     // Units per tick
	Direction int     `yaml:"direction"` // +1 right, -1 left
}

// BlocksConfig defines the block grid, laid out row-major from the offset.
type BlocksConfig struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Gutter  float64 `yaml:"gutter"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// RulesConfig selects between the classic collision responses and the
// hardened variants.
type RulesConfig struct {
	// ClampWalls pushes the ball and paddle back inside the arena when they
	// cross an edge instead of only flipping their direction.
	ClampWalls bool `yaml:"clamp_walls"`
	// Debounce fires the paddle response only on the tick the ball enters
	// the paddle zone and inverts each velocity axis at most once per block
	// scan.
	Debounce bool `yaml:"debounce"`
	// PaddleSpin scales the horizontal offset from the paddle center that is
	// added to vx on a paddle hit.
	PaddleSpin float64 `yaml:"paddle_spin"`
}

// FrontendConfig holds host loop settings.
type FrontendConfig struct {
	TickRate int     `yaml:"tick_rate"` // Ticks per second
	Scale    float64 `yaml:"scale"`     // Window scale factor
}

// GridWidth returns the horizontal extent of the block grid.
func (b BlocksConfig) GridWidth() float64 {
	if b.Cols <= 0 {
		return 0
	}
	return b.OffsetX + float64(b.Cols)*b.Width + float64(b.Cols-1)*b.Gutter
}

// GridHeight returns the vertical extent of the block grid.
func (b BlocksConfig) GridHeight() float64 {
	if b.Rows <= 0 {
		return 0
	}
	return b.OffsetY + float64(b.Rows)*b.Height + float64(b.Rows-1)*b.Gutter
}

// Validate reports the first problem that would make the arena unplayable.
func (c Config) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must have positive size, got %vx%v", ErrInvalidConfig, c.Arena.Width, c.Arena.Height)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius must be positive, got %v", ErrInvalidConfig, c.Ball.Radius)
	case 2*c.Ball.Radius >= c.Arena.Width || 2*c.Ball.Radius >= c.Arena.Height:
		return fmt.Errorf("%w: ball of radius %v does not fit the arena", ErrInvalidConfig, c.Ball.Radius)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle must have positive size, got %vx%v", ErrInvalidConfig, c.Paddle.Width, c.Paddle.Height)
	case c.Paddle.Width >= c.Arena.Width:
		return fmt.Errorf("%w: paddle width %v must be below arena width %v", ErrInvalidConfig, c.Paddle.Width, c.Arena.Width)
	case c.Paddle.Speed < 0:
		return fmt.Errorf("%w: paddle speed must not be negative, got %v", ErrInvalidConfig, c.Paddle.Speed)
	case c.Paddle.Direction != 1 && c.Paddle.Direction != -1:
		return fmt.Errorf("%w: paddle direction must be 1 or -1, got %d", ErrInvalidConfig, c.Paddle.Direction)
	case c.Blocks.Rows < 0 || c.Blocks.Cols < 0:
		return fmt.Errorf("%w: block grid must not be negative, got %dx%d", ErrInvalidConfig, c.Blocks.Cols, c.Blocks.Rows)
	case c.Blocks.Rows > 0 && c.Blocks.Cols > 0 && (c.Blocks.Width <= 0 || c.Blocks.Height <= 0):
		return fmt.Errorf("%w: blocks must have positive size, got %vx%v", ErrInvalidConfig, c.Blocks.Width, c.Blocks.Height)
	case c.Blocks.GridWidth() > c.Arena.Width || c.Blocks.GridHeight() > c.Arena.Height:
		return fmt.Errorf("%w: block grid %vx%v does not fit the arena", ErrInvalidConfig, c.Blocks.GridWidth(), c.Blocks.GridHeight())
	case c.Frontend.TickRate <= 0:
		return fmt.Errorf("%w: tick rate must be positive, got %d", ErrInvalidConfig, c.Frontend.TickRate)
	case c.Frontend.Scale <= 0:
		return fmt.Errorf("%w: scale must be positive, got %v", ErrInvalidConfig, c.Frontend.Scale)
	}
	return nil
}
