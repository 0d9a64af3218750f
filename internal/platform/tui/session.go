package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockbreak/internal/breakout"
	"github.com/vovakirdan/blockbreak/internal/config"
)

// SessionModel manages one remote session: preset menu, then the arena.
type SessionModel struct {
	base config.Config
	opts Options
	menu MenuModel
	game *Model
}

// NewSessionModel creates a session that starts in the preset menu.
func NewSessionModel(base config.Config, opts Options) SessionModel {
	return SessionModel{
		base: base,
		opts: opts,
		menu: NewMenuModel(base, opts.Runtime.ScreenW, opts.Runtime.ScreenH),
	}
}

// Init implements tea.Model.
func (s SessionModel) Init() tea.Cmd {
	return s.menu.Init()
}

// Update routes messages to the menu until a preset is chosen, then to the
// arena model.
func (s SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		s.opts.Runtime.ScreenW = ws.Width
		s.opts.Runtime.ScreenH = ws.Height
	}

	if s.game != nil {
		next, cmd := s.game.Update(msg)
		if g, ok := next.(Model); ok {
			s.game = &g
		}
		return s, cmd
	}

	next, cmd := s.menu.Update(msg)
	if m, ok := next.(MenuModel); ok {
		s.menu = m
	}

	if p := s.menu.Selected(); p != nil {
		g := NewModel(breakout.New(p.Apply(s.base)), s.opts)
		g.logger.Info("preset selected", "preset", p.ID)
		s.game = &g
		return s, g.Init()
	}
	return s, cmd
}

// View implements tea.Model.
func (s SessionModel) View() string {
	if s.game != nil {
		return s.game.View()
	}
	return s.menu.View()
}

// Playing reports whether the arena has started.
func (s SessionModel) Playing() bool {
	return s.game != nil
}
