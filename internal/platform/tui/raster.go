package tui

import (
	"fmt"

	"github.com/vovakirdan/blockbreak/internal/breakout"
	"github.com/vovakirdan/blockbreak/internal/core"
)

// Smallest terminal the arena can be drawn in.
const (
	minWidth  = 24
	minHeight = 7
)

// Cell glyphs.
const (
	runeBall   = '●'
	runeBlock  = '█'
	runePaddle = '='
)

// Frame is everything drawn besides the arena itself.
type Frame struct {
	Paused bool
	Status string // transient message, e.g. a screenshot path
}

// viewport maps arena coordinates onto the cells inside the border.
type viewport struct {
	x0, y0 int // first inner cell
	w, h   int // inner size in cells
	arenaW float64
	arenaH float64
}

func (v viewport) col(x float64) int {
	return v.x0 + core.Clamp(int(x*float64(v.w)/v.arenaW), 0, v.w-1)
}

func (v viewport) row(y float64) int {
	return v.y0 + core.Clamp(int(y*float64(v.h)/v.arenaH), 0, v.h-1)
}

// span returns the half-open cell range [c0, c1) covering [a, b), at least
// one cell wide.
func span(a, b float64, cell func(float64) int) (int, int) {
	c0 := cell(a)
	c1 := cell(b)
	if b > a && c1 == c0 {
		c1 = c0 + 1
	}
	return c0, c1
}

// Rasterize draws snap into dst: a status line on the first row and the
// arena in a box below it. The arena is scaled to fill the box, so cells
// are not square.
func Rasterize(dst *core.Screen, snap breakout.Snapshot, f Frame) {
	dst.Clear()

	width, height := dst.Width(), dst.Height()
	if width < minWidth || height < minHeight || snap.ArenaW <= 0 || snap.ArenaH <= 0 {
		dst.DrawText(0, 0, "terminal too small", core.ColorYellow)
		return
	}

	drawStatus(dst, snap, f)

	dst.DrawBox(0, 1, width, height, core.ColorGray)
	vp := viewport{
		x0:     1,
		y0:     2,
		w:      width - 2,
		h:      height - 3,
		arenaW: snap.ArenaW,
		arenaH: snap.ArenaH,
	}

	for _, b := range snap.Blocks {
		if !b.Visible {
			continue
		}
		x0, x1 := span(b.X1, b.X2, vp.col)
		y0, y1 := span(b.Y1, b.Y2, vp.row)
		dst.FillRect(x0, y0, x1, y1, runeBlock, core.ColorGreen)
	}

	p := snap.Paddle
	px0, px1 := span(p.X, p.X+p.Width, vp.col)
	py := vp.row(p.Y)
	// An overshooting paddle is drawn clipped to the arena.
	dst.FillRect(max(px0, vp.x0), py, min(px1, vp.x0+vp.w), py+1, runePaddle, core.ColorRed)

	dst.Set(vp.col(snap.Ball.X), vp.row(snap.Ball.Y), runeBall, core.ColorBlue)

	if snap.Remaining == 0 && len(snap.Blocks) > 0 {
		dst.DrawTextCentered(vp.y0+vp.h/2, " CLEARED ", core.ColorYellow)
	}
}

func drawStatus(dst *core.Screen, snap breakout.Snapshot, f Frame) {
	left := fmt.Sprintf(" BLOCKBREAK  tick %d  blocks %d/%d", snap.Tick, snap.Remaining, len(snap.Blocks))
	dst.DrawText(0, 0, left, core.ColorWhite)

	right := f.Status
	if f.Paused {
		right = "PAUSED"
		if f.Status != "" {
			right = "PAUSED  " + f.Status
		}
	}
	if right == "" {
		return
	}
	x := dst.Width() - len([]rune(right)) - 1
	if x <= len([]rune(left)) {
		return
	}
	dst.DrawText(x, 0, right, core.ColorYellow)
}
