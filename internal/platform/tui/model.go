package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/geodash/internal/core"
	"github.com/vovakirdan/geodash/internal/game"
	"github.com/vovakirdan/geodash/internal/platform/driver"
	"github.com/vovakirdan/geodash/internal/registry"
	"github.com/vovakirdan/geodash/internal/render"
)

const backendID = "tui"

func init() {
	registry.Register(backendID, func() registry.Backend { return &Backend{} })
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a geodash session.
type Model struct {
	driver   *driver.Driver
	raster   *Rasterizer
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	interval time.Duration
	quitting bool
}

// NewModel creates a model running a fresh session.
func NewModel(opts registry.RunOptions) Model {
	interval := opts.Runtime.TickInterval
	if interval <= 0 {
		interval = opts.Game.Tick.Interval()
	}

	m := Model{
		driver:   driver.New(opts),
		raster:   NewRasterizer(opts.Game.World),
		screen:   core.NewScreen(opts.Runtime.ScreenW, core.Max(opts.Runtime.ScreenH-1, 1)),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		interval: interval,
	}
	m.keys.SetRestartEnabled(false)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey applies the mapped action immediately, between ticks.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if m.driver.Apply(action) {
		return m.restarted()
	}
	return m, nil
}

// handleMouse restarts the round when the "Play Again" button is clicked.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if id, ok := m.raster.ButtonAt(msg.X, msg.Y); ok && id == render.ShapeRestart && m.driver.Restart() {
		return m.restarted()
	}
	return m, nil
}

// restarted re-arms the tick loop for a new round.
func (m Model) restarted() (tea.Model, tea.Cmd) {
	m.keys.SetRestartEnabled(false)
	return m, tickCmd(m.interval)
}

// handleTick advances the session and re-arms the tick unless the round ended.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.driver.Running() {
		return m, nil
	}
	if res := m.driver.Tick(); res.GameOver {
		m.keys.SetRestartEnabled(true)
		return m, nil
	}
	return m, tickCmd(m.interval)
}

// View renders the current scene to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.raster.Draw(m.driver.Scene(), m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Session returns the driven session.
func (m Model) Session() *game.Session {
	return m.driver.Session()
}

// Backend runs geodash in the terminal.
type Backend struct{}

// ID returns the backend identifier.
func (b *Backend) ID() string { return backendID }

// Title returns the display name.
func (b *Backend) Title() string { return "Terminal (Bubble Tea)" }

// Interactive reports whether the backend takes user input.
func (b *Backend) Interactive() bool { return true }

// Run starts the Bubble Tea program and blocks until the user quits.
func (b *Backend) Run(ctx context.Context, opts registry.RunOptions) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: program failed: %w", err)
	}
	return nil
}
