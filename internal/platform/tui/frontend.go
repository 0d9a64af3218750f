package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/blockbreak/internal/breakout"
	"github.com/vovakirdan/blockbreak/internal/core"
	"github.com/vovakirdan/blockbreak/internal/registry"
)

func init() {
	registry.Register("tui", func() registry.Frontend { return &Frontend{} })
}

// Frontend runs the arena in the local terminal.
type Frontend struct{}

// ID implements registry.Frontend.
func (f *Frontend) ID() string { return "tui" }

// Title implements registry.Frontend.
func (f *Frontend) Title() string { return "Terminal" }

// Run implements registry.Frontend. It blocks until the user quits or ctx
// is cancelled.
func (f *Frontend) Run(ctx context.Context, env registry.Env) error {
	rt := core.DefaultConfig()
	rt.TickRate = env.Config.Frontend.TickRate

	fd := int(os.Stdout.Fd()) //#nosec G115 -- file descriptors fit in int
	if term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil {
			rt.ScreenW, rt.ScreenH = w, h
		}
	}

	opts := Options{Runtime: rt}
	if home, err := os.UserHomeDir(); err == nil {
		opts.ScreenshotDir = filepath.Join(home, ".blockbreak", "screenshots")
	}

	env.Logger.Info("starting terminal frontend", "size", fmt.Sprintf("%dx%d", rt.ScreenW, rt.ScreenH), "tick_rate", rt.TickRate)

	// The alt screen owns stdout and stderr until the program exits, so the
	// model gets a discard logger.
	model := NewModel(breakout.New(env.Config), opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			env.Logger.Info("terminal frontend cancelled")
			return nil
		}
		return fmt.Errorf("tui: run program: %w", err)
	}

	if m, ok := final.(Model); ok {
		snap := m.sim.Snapshot()
		env.Logger.Info("terminal frontend stopped", "tick", snap.Tick, "remaining", snap.Remaining)
	}
	return nil
}
