package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockbreak/internal/config"
)

// Preset is a named set of rule toggles offered before a session starts.
type Preset struct {
	ID          string
	Title       string
	Description string
	ClampWalls  bool
	Debounce    bool
}

// Apply returns cfg with the preset's rules.
func (p Preset) Apply(cfg config.Config) config.Config {
	cfg.Rules.ClampWalls = p.ClampWalls
	cfg.Rules.Debounce = p.Debounce
	return cfg
}

// Presets returns the selectable rule presets, classic first.
func Presets() []Preset {
	return []Preset{
		{ID: "classic", Title: "Classic", Description: "walls and paddle as configured, no guards"},
		{ID: "clamped", Title: "Clamped walls", Description: "ball and paddle are kept inside the arena", ClampWalls: true},
		{ID: "debounced", Title: "Debounced", Description: "one paddle hit per contact, one flip per axis", Debounce: true},
		{ID: "hardened", Title: "Hardened", Description: "clamped and debounced", ClampWalls: true, Debounce: true},
	}
}

// presetIndex returns the index of the preset matching the rules in cfg.
func presetIndex(items []Preset, cfg config.Config) int {
	for i, p := range items {
		if p.ClampWalls == cfg.Rules.ClampWalls && p.Debounce == cfg.Rules.Debounce {
			return i
		}
	}
	return 0
}

type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultMenuKeys() menuKeys {
	return menuKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc")),
	}
}

// MenuModel is the Bubble Tea model for the preset picker.
type MenuModel struct {
	items    []Preset
	cursor   int
	width    int
	height   int
	keys     menuKeys
	quitting bool
	selected *Preset
}

// NewMenuModel creates a picker with the cursor on the preset matching cfg.
func NewMenuModel(cfg config.Config, width, height int) MenuModel {
	items := Presets()
	return MenuModel{
		items:  items,
		cursor: presetIndex(items, cfg),
		width:  width,
		height: height,
		keys:   defaultMenuKeys(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		selected := m.items[m.cursor]
		m.selected = &selected
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  B L O C K B R E A K  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select rules", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-14s %s", cursor, item.Title, item.Description)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Start  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen preset, or nil if none was chosen yet.
func (m MenuModel) Selected() *Preset {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
