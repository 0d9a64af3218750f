package breakout

import (
	"testing"

	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/core"
)

func defaultBlocks() config.BlocksConfig {
	return config.Default().Blocks
}

// withBall returns the default config with the ball starting at (x, y)
// moving at (vx, vy).
func withBall(x, y, vx, vy float64) config.Config {
	cfg := config.Default()
	cfg.Ball.X, cfg.Ball.Y = x, y
	cfg.Ball.VX, cfg.Ball.VY = vx, vy
	return cfg
}

func TestFirstTickFromDefaults(t *testing.T) {
	s := NewDefault()
	result := s.Step()

	if result.Tick != 1 {
		t.Errorf("Tick = %d, expected 1", result.Tick)
	}
	if len(result.Events) != 0 {
		t.Errorf("expected no collisions, got %v", result.Events)
	}
	if s.ball.Pos != (core.Vec{X: 403, Y: 303}) {
		t.Errorf("ball = %+v, expected (403, 303)", s.ball.Pos)
	}
	if s.ball.Vel != (core.Vec{X: 3, Y: 3}) {
		t.Errorf("velocity = %+v, expected (3, 3)", s.ball.Vel)
	}
	if s.paddle.X != 380 {
		t.Errorf("paddle X = %v, expected 380", s.paddle.X)
	}
	if s.paddle.Direction != 1 {
		t.Errorf("paddle direction = %v, expected 1", s.paddle.Direction)
	}
	if s.Remaining() != 50 {
		t.Errorf("Remaining() = %d, expected 50", s.Remaining())
	}
}

func TestLeftWallAtZero(t *testing.T) {
	s := New(withBall(3, 300, -3, 3))
	result := s.Step()

	if s.ball.Pos.X != 0 {
		t.Fatalf("ball X = %v, expected 0", s.ball.Pos.X)
	}
	if s.ball.Vel.X != 3 {
		t.Errorf("vx = %v, expected 3", s.ball.Vel.X)
	}
	if s.ball.Vel.Y != 3 {
		t.Errorf("vy = %v, expected 3", s.ball.Vel.Y)
	}
	if result.Count(EventWallX) != 1 || result.Count(EventWallY) != 0 {
		t.Errorf("events = %v, expected a single wall-x", result.Events)
	}
}

func TestCornerFlipsBothAxes(t *testing.T) {
	s := New(withBall(788, 588, 3, 3))
	result := s.Step()

	if s.ball.Vel != (core.Vec{X: -3, Y: -3}) {
		t.Errorf("velocity = %+v, expected (-3, -3)", s.ball.Vel)
	}
	if result.Count(EventWallX) != 1 || result.Count(EventWallY) != 1 {
		t.Errorf("events = %v, expected wall-x and wall-y", result.Events)
	}
	if result.Count(EventPaddle) != 0 {
		t.Errorf("ball right of the paddle should not hit it: %v", result.Events)
	}
}

func TestBlockBottomEdgeHit(t *testing.T) {
	cfg := withBall(13, 38, 3, -3)
	cfg.Blocks.Rows, cfg.Blocks.Cols = 1, 1

	s := New(cfg)
	result := s.Step()

	if s.ball.Pos != (core.Vec{X: 16, Y: 35}) {
		t.Fatalf("ball = %+v, expected (16, 35)", s.ball.Pos)
	}
	if s.blocks[0].Visible {
		t.Error("block should be hidden")
	}
	if s.ball.Vel != (core.Vec{X: 3, Y: 3}) {
		t.Errorf("velocity = %+v, expected vy inverted only", s.ball.Vel)
	}
	if len(result.Events) != 1 || result.Events[0] != (Event{Kind: EventBlock, Block: 0}) {
		t.Errorf("events = %v, expected block#0", result.Events)
	}
}

func TestPaddleCenterHit(t *testing.T) {
	// After one tick the ball is at x=580 and the paddle at 380..780.
	s := New(withBall(577, 535, 3, 3))
	result := s.Step()

	if s.ball.Pos.X != s.paddle.CenterX() {
		t.Fatalf("ball X = %v, paddle center = %v", s.ball.Pos.X, s.paddle.CenterX())
	}
	if s.ball.Vel != (core.Vec{X: 3, Y: -3}) {
		t.Errorf("velocity = %+v, expected (3, -3)", s.ball.Vel)
	}
	if result.Count(EventPaddle) != 1 {
		t.Errorf("events = %v, expected a paddle hit", result.Events)
	}
}

func TestPaddleOffCenterHit(t *testing.T) {
	s := New(withBall(677, 535, 3, 3))
	s.Step()

	// 100 units right of center adds 100*0.05
	if s.ball.Vel != (core.Vec{X: 8, Y: -3}) {
		t.Errorf("velocity = %+v, expected (8, -3)", s.ball.Vel)
	}
}

func TestHiddenBlockNeverRetriggers(t *testing.T) {
	cfg := withBall(114, 115, 1, 0)
	cfg.Blocks = config.BlocksConfig{Rows: 1, Cols: 1, Width: 30, Height: 30, OffsetX: 100, OffsetY: 100}

	s := New(cfg)
	first := s.Step()
	if first.Count(EventBlock) != 1 {
		t.Fatalf("first tick events = %v, expected a block hit", first.Events)
	}

	for range 40 {
		if r := s.Step(); r.Count(EventBlock) != 0 {
			t.Fatalf("tick %d: hidden block triggered again: %v", r.Tick, r.Events)
		}
	}
	if s.ball.Vel != (core.Vec{X: 1, Y: 0}) {
		t.Errorf("velocity = %+v, expected unchanged (1, 0)", s.ball.Vel)
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining() = %d, expected 0", s.Remaining())
	}
}

func TestPaddleTurnsAtEdge(t *testing.T) {
	s := NewDefault()

	for tick := 1; tick <= 4; tick++ {
		if r := s.Step(); r.Count(EventPaddleTurn) != 0 {
			t.Fatalf("tick %d: unexpected turn at x=%v", tick, s.paddle.X)
		}
	}

	r := s.Step()
	if r.Count(EventPaddleTurn) != 1 {
		t.Fatalf("expected turn on tick 5, paddle at %v", s.paddle.X)
	}
	if s.paddle.X != 400 || s.paddle.Direction != -1 {
		t.Errorf("paddle X=%v dir=%v, expected X=400 dir=-1", s.paddle.X, s.paddle.Direction)
	}
}

func TestPaddleStaysInArena(t *testing.T) {
	s := NewDefault()
	maxX := s.cfg.Arena.Width - s.paddle.Width

	for range 2000 {
		s.Step()
		if s.paddle.X < 0 || s.paddle.X > maxX {
			t.Fatalf("tick %d: paddle X = %v outside [0, %v]", s.tick, s.paddle.X, maxX)
		}
	}
}

func TestPaddleOvershootBoundedByStep(t *testing.T) {
	cfg := config.Default()
	cfg.Paddle.Speed = 7
	s := New(cfg)
	maxX := cfg.Arena.Width - cfg.Paddle.Width

	overshot := false
	for range 2000 {
		s.Step()
		if s.paddle.X < -7 || s.paddle.X > maxX+7 {
			t.Fatalf("tick %d: paddle X = %v overshoots by more than one step", s.tick, s.paddle.X)
		}
		if s.paddle.X < 0 || s.paddle.X > maxX {
			overshot = true
		}
	}
	if !overshot {
		t.Error("expected the unclamped paddle to overshoot at least once")
	}
}

func TestClampWallsKeepsPaddleInside(t *testing.T) {
	cfg := config.Default()
	cfg.Paddle.Speed = 7
	cfg.Rules.ClampWalls = true
	s := New(cfg)
	maxX := cfg.Arena.Width - cfg.Paddle.Width

	for range 2000 {
		s.Step()
		if s.paddle.X < 0 || s.paddle.X > maxX {
			t.Fatalf("tick %d: clamped paddle X = %v outside [0, %v]", s.tick, s.paddle.X, maxX)
		}
	}
}

func TestClampWallsKeepsBallInside(t *testing.T) {
	cfg := withBall(400, 300, 17, -13)
	cfg.Rules.ClampWalls = true
	s := New(cfg)
	r := cfg.Ball.Radius

	for range 3000 {
		s.Step()
		p := s.ball.Pos
		if p.X < r || p.X > cfg.Arena.Width-r || p.Y < r || p.Y > cfg.Arena.Height-r {
			t.Fatalf("tick %d: ball at %+v left the arena", s.tick, p)
		}
	}
}

// A slow ball inside the paddle zone keeps re-triggering unless debounced.
func TestPaddleDebounce(t *testing.T) {
	tests := []struct {
		name     string
		debounce bool
		expected int
	}{
		{"classic", false, 2},
		{"debounced", true, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := withBall(580, 560, 0, 1)
			cfg.Rules.Debounce = tc.debounce
			s := New(cfg)

			hits := 0
			for range 2 {
				hits += s.Step().Count(EventPaddle)
			}
			if hits != tc.expected {
				t.Errorf("paddle hits = %d, expected %d", hits, tc.expected)
			}
		})
	}
}

func TestBlocksOnlyDisappear(t *testing.T) {
	s := New(withBall(400, 300, 4, -3))
	prev := s.Snapshot()

	for range 5000 {
		s.Step()
		cur := s.Snapshot()
		for i := range cur.Blocks {
			if cur.Blocks[i].Visible && !prev.Blocks[i].Visible {
				t.Fatalf("tick %d: block %d became visible again", cur.Tick, i)
			}
		}
		if cur.Remaining > prev.Remaining {
			t.Fatalf("tick %d: remaining grew from %d to %d", cur.Tick, prev.Remaining, cur.Remaining)
		}
		prev = cur
	}
}

func TestSimulationDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := New(withBall(400, 300, 4, -3))
		for range 3000 {
			s.Step()
		}
		return s.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Ball != snap2.Ball {
		t.Errorf("Determinism failed: balls differ. Run1=%+v, Run2=%+v", snap1.Ball, snap2.Ball)
	}
	if snap1.Remaining != snap2.Remaining {
		t.Errorf("Determinism failed: remaining differs. Run1=%d, Run2=%d", snap1.Remaining, snap2.Remaining)
	}
}

func TestReset(t *testing.T) {
	s := NewDefault()
	initial := s.Snapshot()

	for range 500 {
		s.Step()
	}
	s.Reset()

	after := s.Snapshot()
	if after.Hash() != initial.Hash() {
		t.Error("Reset should restore the initial state")
	}
	if s.Tick() != 0 {
		t.Errorf("Tick() = %d after reset, expected 0", s.Tick())
	}
}

func TestSnapshotHashCoversBlockSize(t *testing.T) {
	cfg := config.Default()
	cfg.Blocks.Width = 25
	cfg.Blocks.Height = 20

	if NewDefault().Snapshot().Hash() == New(cfg).Snapshot().Hash() {
		t.Error("blocks with different sizes should hash differently")
	}

	snap := NewDefault().Snapshot()
	before := snap.Hash()
	snap.Blocks[len(snap.Blocks)-1].Y2++
	if snap.Hash() == before {
		t.Error("Hash() should change with the block's far corner")
	}
}
