package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockbreak/internal/breakout"
	"github.com/vovakirdan/blockbreak/internal/core"
	"github.com/vovakirdan/blockbreak/internal/platform/frame"
)

// How long a status message stays on the top line.
const statusTTL = 3 * time.Second

// Options configures a Model.
type Options struct {
	Runtime core.RuntimeConfig

	// ScreenshotDir receives text and PNG dumps on ctrl+s.
	// Empty disables screenshots.
	ScreenshotDir string

	// Logger must not write to the terminal the program draws on.
	// Nil discards.
	Logger *log.Logger
}

// Model is the Bubble Tea model hosting one simulation.
type Model struct {
	sim    *breakout.Simulation
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	config        core.RuntimeConfig
	screenshotDir string

	paused      bool
	quitting    bool
	status      string
	statusUntil time.Time
}

// NewModel creates a model driving sim.
func NewModel(sim *breakout.Simulation, opts Options) Model {
	cfg := opts.Runtime
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		sim:           sim,
		screen:        core.NewScreen(cfg.ScreenW, arenaRows(cfg.ScreenH)),
		keys:          DefaultKeyMap(),
		help:          h,
		logger:        logger,
		config:        cfg,
		screenshotDir: opts.ScreenshotDir,
	}
}

// arenaRows leaves the last terminal row for the help line.
func arenaRows(termH int) int {
	return max(termH-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		m.paused = !m.paused

	case core.ActionStep:
		if m.paused {
			m.step()
		}

	case core.ActionRestart:
		m.sim.Reset()
		m.logger.Info("simulation restarted")
		m.setStatus("restarted")

	case core.ActionScreenshot:
		m.saveScreenshot()
	}

	return m, nil
}

// handleResize processes window resize events. The simulation is unaffected:
// only the raster scale changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, arenaRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation unless paused.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.paused {
		m.step()
	}
	if m.status != "" && now.After(m.statusUntil) {
		m.status = ""
	}
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) step() {
	result := m.sim.Step()
	for _, ev := range result.Events {
		m.logger.Debug("collision", "tick", result.Tick, "event", ev.String())
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusUntil = time.Now().Add(statusTTL)
}

// saveScreenshot dumps the current frame as text and PNG.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" {
		m.setStatus("screenshots disabled")
		return
	}

	snap := m.sim.Snapshot()
	Rasterize(m.screen, snap, m.overlay())

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		m.setStatus("screenshot failed")
		return
	}

	base := filepath.Join(m.screenshotDir, fmt.Sprintf("blockbreak_%s_t%d", time.Now().Format("20060102_150405"), snap.Tick))

	if err := os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save text screenshot", "error", err)
		m.setStatus("screenshot failed")
		return
	}
	if err := frame.SavePNG(base+".png", snap, 1); err != nil {
		m.logger.Warn("cannot save png screenshot", "error", err)
		m.setStatus("screenshot failed")
		return
	}

	m.logger.Info("screenshot saved", "path", base)
	m.setStatus("saved " + filepath.Base(base))
}

func (m Model) overlay() Frame {
	return Frame{Paused: m.paused, Status: m.status}
}

// Paused reports whether ticking is suspended.
func (m Model) Paused() bool {
	return m.paused
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.help.View(m.keys)
	rows := max(m.config.ScreenH-lipgloss.Height(helpView), 1)
	if m.screen.Height() != rows || m.screen.Width() != m.config.ScreenW {
		m.screen.Resize(m.config.ScreenW, rows)
	}

	Rasterize(m.screen, m.sim.Snapshot(), m.overlay())
	return RenderScreen(m.screen) + "\n" + helpView
}
