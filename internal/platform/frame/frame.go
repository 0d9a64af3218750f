// Package frame renders arena snapshots to raster images with gogpu/gg.
// It is used by the frame command and by screenshot keys in the
// interactive frontends.
package frame

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"

	"github.com/vovakirdan/blockbreak/internal/breakout"
)

// Render draws snap at the given scale: white background, green blocks,
// red paddle and a blue ball. Hidden blocks are skipped.
// The caller must Close the returned context.
func Render(snap breakout.Snapshot, scale float64) (*gg.Context, error) {
	if scale <= 0 {
		scale = 1
	}

	w := int(snap.ArenaW*scale + 0.5)
	h := int(snap.ArenaH*scale + 0.5)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("frame: empty arena %vx%v", snap.ArenaW, snap.ArenaH)
	}

	dc := gg.NewContext(w, h)
	dc.ClearWithColor(gg.White)

	dc.SetRGB(0, 1, 0)
	for _, b := range snap.Blocks {
		if !b.Visible {
			continue
		}
		dc.DrawRectangle(b.X1*scale, b.Y1*scale, (b.X2-b.X1)*scale, (b.Y2-b.Y1)*scale)
	}
	if err := dc.Fill(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("frame: fill blocks: %w", err)
	}

	p := snap.Paddle
	dc.SetRGB(1, 0, 0)
	dc.DrawRectangle(p.X*scale, p.Y*scale, p.Width*scale, p.Height*scale)
	if err := dc.Fill(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("frame: fill paddle: %w", err)
	}

	b := snap.Ball
	dc.SetRGB(0, 0, 1)
	dc.DrawCircle(b.X*scale, b.Y*scale, b.Radius*scale)
	if err := dc.Fill(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("frame: fill ball: %w", err)
	}

	return dc, nil
}

// Image renders snap and returns the pixels.
func Image(snap breakout.Snapshot, scale float64) (image.Image, error) {
	dc, err := Render(snap, scale)
	if err != nil {
		return nil, err
	}
	defer dc.Close()

	return dc.Image(), nil
}

// WritePNG renders snap and encodes it as PNG to w.
func WritePNG(w io.Writer, snap breakout.Snapshot, scale float64) error {
	dc, err := Render(snap, scale)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("frame: encode png: %w", err)
	}
	return nil
}

// SavePNG renders snap into a PNG file at path, creating parent directories.
func SavePNG(path string, snap breakout.Snapshot, scale float64) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("frame: create directory: %w", err)
		}
	}

	dc, err := Render(snap, scale)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("frame: save %s: %w", path, err)
	}
	return nil
}
