// Package window hosts the arena in a desktop window through Ebitengine,
// drawing it with the classic palette: white background, blue ball, green
// blocks and a red paddle.
package window

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/blockbreak/internal/breakout"
	"github.com/vovakirdan/blockbreak/internal/core"
	"github.com/vovakirdan/blockbreak/internal/platform/frame"
	"github.com/vovakirdan/blockbreak/internal/registry"
)

var (
	colorBackground = color.White
	colorBall       = color.RGBA{B: 0xff, A: 0xff}
	colorBlock      = color.RGBA{G: 0xff, A: 0xff}
	colorPaddle     = color.RGBA{R: 0xff, A: 0xff}
	colorHUD        = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xc0}
)

func init() {
	registry.Register("window", func() registry.Frontend { return &Frontend{} })
}

// Frontend opens a desktop window.
type Frontend struct{}

// ID implements registry.Frontend.
func (f *Frontend) ID() string { return "window" }

// Title implements registry.Frontend.
func (f *Frontend) Title() string { return "Desktop window" }

// Run implements registry.Frontend. It blocks until the window is closed,
// q is pressed or ctx is cancelled.
func (f *Frontend) Run(ctx context.Context, env registry.Env) error {
	cfg := env.Config
	scale := cfg.Frontend.Scale
	if scale <= 0 {
		scale = 1
	}

	g := &game{
		input:  core.NewInputFrame(),
		ctx:    ctx,
		sim:    breakout.New(cfg),
		logger: env.Logger,
		width:  int(cfg.Arena.Width),
		height: int(cfg.Arena.Height),
	}
	if home, err := os.UserHomeDir(); err == nil {
		g.screenshotDir = filepath.Join(home, ".blockbreak", "screenshots")
	}

	ebiten.SetWindowSize(int(cfg.Arena.Width*scale), int(cfg.Arena.Height*scale))
	ebiten.SetWindowTitle("blockbreak")
	ebiten.SetTPS(cfg.Frontend.TickRate)

	env.Logger.Info("starting window frontend", "scale", scale, "tick_rate", cfg.Frontend.TickRate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: run game: %w", err)
	}

	snap := g.sim.Snapshot()
	env.Logger.Info("window frontend stopped", "tick", snap.Tick, "remaining", snap.Remaining)
	return nil
}

// game implements ebiten.Game. Update runs once per tick at the configured
// TPS, so each call advances the simulation exactly one step.
type game struct {
	ctx    context.Context
	sim    *breakout.Simulation
	logger *log.Logger

	width, height int
	screenshotDir string

	input       core.InputFrame
	paused      bool
	status      string
	statusUntil time.Time
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	g.input.Clear()
	pollInput(&g.input)

	if g.input.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	if g.input.Has(core.ActionScreenshot) {
		g.saveScreenshot()
	}
	if g.input.Has(core.ActionRestart) {
		g.sim.Reset()
		g.logger.Info("simulation restarted")
		g.setStatus("restarted")
	}
	if g.input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused && g.input.Has(core.ActionStep) {
		g.step()
	}

	if !g.paused {
		g.step()
	}
	if g.status != "" && time.Now().After(g.statusUntil) {
		g.status = ""
	}
	return nil
}

// pollInput records the host actions whose keys were pressed this tick.
func pollInput(f *core.InputFrame) {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		f.Set(core.ActionQuit)
	}
	if (ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS)) || inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		f.Set(core.ActionScreenshot)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		f.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		f.Set(core.ActionStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		f.Set(core.ActionRestart)
	}
}

func (g *game) step() {
	result := g.sim.Step()
	for _, ev := range result.Events {
		g.logger.Debug("collision", "tick", result.Tick, "event", ev.String())
	}
}

func (g *game) setStatus(s string) {
	g.status = s
	g.statusUntil = time.Now().Add(3 * time.Second)
}

func (g *game) saveScreenshot() {
	if g.screenshotDir == "" {
		g.setStatus("screenshots disabled")
		return
	}

	snap := g.sim.Snapshot()
	path := filepath.Join(g.screenshotDir, fmt.Sprintf("blockbreak_%s_t%d.png", time.Now().Format("20060102_150405"), snap.Tick))
	if err := frame.SavePNG(path, snap, 1); err != nil {
		g.logger.Warn("cannot save screenshot", "error", err)
		g.setStatus("screenshot failed")
		return
	}

	g.logger.Info("screenshot saved", "path", path)
	g.setStatus("saved " + filepath.Base(path))
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	snap := g.sim.Snapshot()

	for _, b := range snap.Blocks {
		if !b.Visible {
			continue
		}
		vector.DrawFilledRect(screen, float32(b.X1), float32(b.Y1), float32(b.X2-b.X1), float32(b.Y2-b.Y1), colorBlock, false)
	}

	p := snap.Paddle
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), colorPaddle, false)

	vector.DrawFilledCircle(screen, float32(snap.Ball.X), float32(snap.Ball.Y), float32(snap.Ball.Radius), colorBall, true)

	hud := fmt.Sprintf("tick %d  blocks %d/%d", snap.Tick, snap.Remaining, len(snap.Blocks))
	switch {
	case snap.Remaining == 0 && len(snap.Blocks) > 0:
		hud += "  CLEARED"
	case g.paused:
		hud += "  PAUSED"
	}
	if g.status != "" {
		hud += "  " + g.status
	}
	// Debug text is light, so it gets a dark strip on the white background.
	vector.DrawFilledRect(screen, 0, float32(g.height-22), float32(g.width), 22, colorHUD, false)
	ebitenutil.DebugPrintAt(screen, hud, 8, g.height-19)
}

// Layout keeps the logical screen at arena size; Ebitengine scales it to
// the window.
func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

var _ ebiten.Game = (*game)(nil)
