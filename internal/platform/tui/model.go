// Package tui runs the snake game as a Bubble Tea program: single key
// presses steer and frames are redrawn in place with colour.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/telemetry"
)

// Model is the Bubble Tea model for a snake game.
type Model struct {
	game     *snake.Game
	slot     *core.DirectionSlot
	screen   *core.Screen
	styles   Styles
	keys     KeyMap
	help     help.Model
	trace    *telemetry.Trace
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model for game. Key presses are published to slot,
// which must be the slot the game reads.
func NewModel(game *snake.Game, slot *core.DirectionSlot, theme config.ThemeConfig, trace *telemetry.Trace, logger *log.Logger) Model {
	return Model{
		game:   game,
		slot:   slot,
		screen: core.NewScreen(snake.Rows, snake.Cols),
		styles: NewStyles(theme),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		trace:  trace,
		logger: logger,
	}
}

// Init runs the first step right away.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return TickMsg{} }
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if dir, ok := m.keys.Direction(msg); ok {
		m.slot.Store(dir)
	}
	return m, nil
}

// handleTick steps the game and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.game.Status() == snake.StatusGameOver {
		return m, nil
	}

	res := m.game.Step()
	if res.AteCherry {
		m.logger.Debug("cherry eaten", "length", m.game.Len(), "next", m.game.Cherry())
	}
	if err := m.trace.Record(m.game.Snapshot(), res); err != nil {
		m.logger.Warn("trace write failed", "error", err)
	}

	if res.Status == snake.StatusGameOver {
		m.logger.Info("game over", "length", m.game.Len())
		return m, tea.Quit
	}
	return m, tickCmd(m.game.Delay())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	status := fmt.Sprintf(" length %d", m.game.Len())
	if m.game.Status() == snake.StatusGameOver {
		m.screen.DrawTextCentered(snake.Rows/2, " GAME OVER ")
		status += "  game over"
	}

	return RenderScreen(m.screen, m.styles) + "\n" + status + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the game ends, the
// player quits or ctx is cancelled. It returns the final game status.
func Run(ctx context.Context, game *snake.Game, slot *core.DirectionSlot, theme config.ThemeConfig, trace *telemetry.Trace, logger *log.Logger) (snake.Status, error) {
	p := tea.NewProgram(
		NewModel(game, slot, theme, trace, logger),
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return game.Status(), fmt.Errorf("tui: %w", err)
	}
	return game.Status(), nil
}
