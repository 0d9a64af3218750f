package breakout

import "github.com/vovakirdan/blockbreak/internal/core"

// CheckWallCollision inverts the ball's velocity on every axis whose arena
// edge the ball has reached. Both axes are checked independently, so a
// corner flips both in the same tick.
//
// Without clamp the position is left alone and the ball may overlap the edge
// for a tick. With clamp the ball is put back inside and its velocity is
// pointed away from the wall it touched.
func CheckWallCollision(ball *Ball, arenaW, arenaH float64, clamp bool) (hitX, hitY bool) {
	r := ball.Radius

	switch {
	case ball.Pos.X-r <= 0:
		hitX = true
		if clamp {
			ball.Pos.X = r
			ball.Vel.X = abs(ball.Vel.X)
		}
	case ball.Pos.X+r >= arenaW:
		hitX = true
		if clamp {
			ball.Pos.X = arenaW - r
			ball.Vel.X = -abs(ball.Vel.X)
		}
	}

	switch {
	case ball.Pos.Y-r <= 0:
		hitY = true
		if clamp {
			ball.Pos.Y = r
			ball.Vel.Y = abs(ball.Vel.Y)
		}
	case ball.Pos.Y+r >= arenaH:
		hitY = true
		if clamp {
			ball.Pos.Y = arenaH - r
			ball.Vel.Y = -abs(ball.Vel.Y)
		}
	}

	if !clamp {
		if hitX {
			ball.BounceX()
		}
		if hitY {
			ball.BounceY()
		}
	}
	return hitX, hitY
}

// InPaddleZone reports whether the ball's lower edge has reached the paddle's
// top and its center is within the paddle's horizontal span. This is a
// coarse trigger, not a circle-rectangle test.
func InPaddleZone(ball *Ball, paddle *Paddle) bool {
	return ball.Bottom() >= paddle.Y &&
		ball.Pos.X >= paddle.Left() &&
		ball.Pos.X <= paddle.Right()
}

// ApplyPaddleBounce sends the ball back vertically and adds spin
// proportional to how far from the paddle center it struck.
func ApplyPaddleBounce(ball *Ball, paddle *Paddle, spin float64) {
	ball.BounceY()
	ball.Vel.X += (ball.Pos.X - paddle.CenterX()) * spin
}

// BlockHit records one block the ball collided with during a scan.
type BlockHit struct {
	Index int
	Edges core.Hit
}

// CheckBlockCollisions tests the ball against every visible block in order.
// Each block hit is hidden and its edge flags invert the matching velocity
// axis. The scan never stops early: two overlapping blocks are both resolved,
// which may invert the same axis twice. When once is set each axis is
// inverted at most once per scan.
func CheckBlockCollisions(ball *Ball, blocks []Block, once bool) []BlockHit {
	var hits []BlockHit
	var flippedX, flippedY bool

	for i := range blocks {
		block := &blocks[i]
		if !block.Visible {
			continue
		}

		edges, ok := core.CircleRect(ball.Circle(), block.Rect)
		if !ok {
			continue
		}

		if edges.Vertical && !(once && flippedX) {
			ball.BounceX()
			flippedX = true
		}
		if edges.Horizontal && !(once && flippedY) {
			ball.BounceY()
			flippedY = true
		}

		block.Visible = false
		hits = append(hits, BlockHit{Index: i, Edges: edges})
	}
	return hits
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
