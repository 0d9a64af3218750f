package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockbreak/internal/breakout"
	"github.com/vovakirdan/blockbreak/internal/core"
)

func newTestModel(dir string) Model {
	return NewModel(breakout.NewDefault(), Options{
		Runtime:       core.DefaultConfig(),
		ScreenshotDir: dir,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelTickAdvances(t *testing.T) {
	m := newTestModel("")

	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.sim.Tick() != 1 {
		t.Errorf("Tick() = %d, expected 1", m.sim.Tick())
	}
}

func TestModelPauseAndStep(t *testing.T) {
	m := newTestModel("")

	m, _ = update(t, m, runeKey("p"))
	if !m.Paused() {
		t.Fatal("model should be paused")
	}

	m, _ = update(t, m, TickMsg(time.Now()))
	if m.sim.Tick() != 0 {
		t.Errorf("paused model ticked to %d", m.sim.Tick())
	}

	m, _ = update(t, m, runeKey("n"))
	if m.sim.Tick() != 1 {
		t.Errorf("step while paused: Tick() = %d, expected 1", m.sim.Tick())
	}

	m, _ = update(t, m, runeKey("p"))
	if m.Paused() {
		t.Error("second p should resume")
	}

	// Step is ignored while running
	m, _ = update(t, m, runeKey("n"))
	if m.sim.Tick() != 1 {
		t.Errorf("step while running: Tick() = %d, expected 1", m.sim.Tick())
	}
}

func TestModelRestart(t *testing.T) {
	m := newTestModel("")
	for range 10 {
		m, _ = update(t, m, TickMsg(time.Now()))
	}

	m, _ = update(t, m, runeKey("r"))
	if m.sim.Tick() != 0 {
		t.Errorf("Tick() = %d after restart, expected 0", m.sim.Tick())
	}
	if m.status == "" {
		t.Error("restart should set a status message")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel("")

	m, cmd := update(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelResizeKeepsSimulation(t *testing.T) {
	m := newTestModel("")
	m, _ = update(t, m, TickMsg(time.Now()))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.sim.Tick() != 1 {
		t.Errorf("resize reset the simulation: Tick() = %d", m.sim.Tick())
	}

	m.View()
	if m.screen.Width() != 120 {
		t.Errorf("screen width = %d, expected 120", m.screen.Width())
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel("")

	m, _ = update(t, m, runeKey("?"))
	if !m.help.ShowAll {
		t.Error("? should expand help")
	}
	if m.View() == "" {
		t.Error("View() should not be empty")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(dir)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	for _, pattern := range []string{"*.txt", "*.png"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			t.Fatal(err)
		}
		if len(matches) != 1 {
			t.Errorf("%s: found %d files, expected 1", pattern, len(matches))
		}
	}
	if m.status == "" {
		t.Error("screenshot should set a status message")
	}

	txt, _ := filepath.Glob(filepath.Join(dir, "*.txt"))
	if len(txt) == 1 {
		data, err := os.ReadFile(txt[0])
		if err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(string(data), "\n")
		if !strings.Contains(lines[0], "BLOCKBREAK") || !strings.HasPrefix(lines[1], "┌") {
			t.Errorf("text screenshot starts with %q / %q", lines[0], lines[1])
		}
	}
}

func TestModelScreenshotDisabled(t *testing.T) {
	m := newTestModel("")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.status != "screenshots disabled" {
		t.Errorf("status = %q", m.status)
	}
}
