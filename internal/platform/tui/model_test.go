package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/geodash/internal/config"
	"github.com/vovakirdan/geodash/internal/core"
	"github.com/vovakirdan/geodash/internal/game"
	"github.com/vovakirdan/geodash/internal/registry"
	"github.com/vovakirdan/geodash/internal/render"
)

func testOptions() registry.RunOptions {
	return registry.RunOptions{
		Game: config.DefaultConfig(),
		Runtime: core.RuntimeConfig{
			ScreenW:      80,
			ScreenH:      25,
			TickInterval: 20 * time.Millisecond,
			Seed:         42,
		},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"w", runes("w"), core.ActionJump},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runes("a"), core.ActionLeft},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runes("d"), core.ActionRight},
		{"r", runes("r"), core.ActionRestart},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart},
		{"q", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"unbound", runes("x"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestKeyMapRestartDisabled(t *testing.T) {
	km := DefaultKeyMap()
	km.SetRestartEnabled(false)

	if got := km.Action(runes("r")); got != core.ActionNone {
		t.Errorf("disabled restart mapped to %v", got)
	}
}

// tickUntilOver feeds tick messages until the round ends and returns the last command.
func tickUntilOver(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for i := 0; i < 1000; i++ {
		var next tea.Model
		next, cmd = m.Update(TickMsg(time.Now()))
		m = next.(Model)
		if m.Session().State() == game.StateGameOver {
			return m, cmd
		}
		if cmd == nil {
			t.Fatalf("tick %d: tick command not re-armed while running", i)
		}
	}
	t.Fatal("round never ended")
	return m, nil
}

func TestTickStopsAfterGameOver(t *testing.T) {
	m := NewModel(testOptions())

	m, cmd := tickUntilOver(t, m)
	if cmd != nil {
		t.Error("tick command should not be re-armed after game over")
	}
	if m.Session().Score() != 141 {
		t.Errorf("idle round ended at %d, expected 141", m.Session().Score())
	}

	// A stale tick does nothing
	next, cmd := m.Update(TickMsg(time.Now()))
	if cmd != nil || next.(Model).Session().Score() != 141 {
		t.Error("tick after game over should be ignored")
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	m := NewModel(testOptions())

	for i := 0; i < 10; i++ {
		next, _ := m.Update(TickMsg(time.Now()))
		m = next.(Model)
	}
	next, cmd := m.Update(runes("r"))
	m = next.(Model)
	if cmd != nil || m.Session().Score() != 10 {
		t.Error("restart while running should be ignored")
	}

	m, _ = tickUntilOver(t, m)
	next, cmd = m.Update(runes("r"))
	m = next.(Model)
	if m.Session().State() != game.StateRunning || m.Session().Score() != 0 {
		t.Error("restart after game over should start a new round")
	}
	if cmd == nil {
		t.Error("restart should re-arm the tick command")
	}
}

func TestJumpKeyAppliesImmediately(t *testing.T) {
	m := NewModel(testOptions())
	for !m.Session().Player().OnGround {
		next, _ := m.Update(TickMsg(time.Now()))
		m = next.(Model)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = next.(Model)
	if cmd != nil {
		t.Error("input should not schedule commands")
	}
	if v := m.Session().Player().Velocity; v != -20 {
		t.Errorf("velocity after jump key = %d, expected -20", v)
	}
}

func TestQuitKey(t *testing.T) {
	m := NewModel(testOptions())
	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty once quitting")
	}
}

func TestMouseClickRestarts(t *testing.T) {
	m := NewModel(testOptions())
	m, _ = tickUntilOver(t, m)

	view := m.View()
	if !strings.Contains(view, "Play Again") {
		t.Fatalf("game over view should show the button:\n%s", view)
	}

	var area core.Rect
	for _, b := range m.raster.buttons {
		if b.id == render.ShapeRestart {
			area = b.area
		}
	}
	if area.W == 0 {
		t.Fatal("restart button was not rasterized")
	}

	// Clicking elsewhere does nothing
	next, _ := m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(Model)
	if m.Session().State() != game.StateGameOver {
		t.Fatal("click outside the button should not restart")
	}

	next, cmd := m.Update(tea.MouseMsg{X: area.X + 1, Y: area.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(Model)
	if m.Session().State() != game.StateRunning {
		t.Error("clicking Play Again should restart")
	}
	if cmd == nil {
		t.Error("restart by click should re-arm the tick command")
	}
}
