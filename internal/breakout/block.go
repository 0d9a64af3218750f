package breakout

import (
	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/core"
)

// Block is a static target. It starts visible and is hidden by the first
// collision with the ball; a hidden block never comes back.
type Block struct {
	Rect    core.Rect
	Visible bool
}

// NewBlock creates a visible block from its top-left corner and size.
func NewBlock(x, y, w, h float64) Block {
	return Block{
		Rect:    core.NewRect(x, y, w, h),
		Visible: true,
	}
}

// BuildGrid lays out the block grid row by row.
func BuildGrid(cfg config.BlocksConfig) []Block {
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil
	}

	blocks := make([]Block, 0, cfg.Rows*cfg.Cols)
	for row := range cfg.Rows {
		for col := range cfg.Cols {
			x := cfg.OffsetX + float64(col)*(cfg.Width+cfg.Gutter)
			y := cfg.OffsetY + float64(row)*(cfg.Height+cfg.Gutter)
			blocks = append(blocks, NewBlock(x, y, cfg.Width, cfg.Height))
		}
	}
	return blocks
}

// CountVisible returns the number of blocks still in play.
func CountVisible(blocks []Block) int {
	count := 0
	for _, b := range blocks {
		if b.Visible {
			count++
		}
	}
	return count
}
