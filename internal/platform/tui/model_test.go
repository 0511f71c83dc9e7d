package tui

import (
	"io"
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func newTestModel(g *snake.Game, slot *core.DirectionSlot) Model {
	return NewModel(g, slot, config.DefaultConfig().Theme, nil, log.New(io.Discard))
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapDirection(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		msg      tea.KeyMsg
		expected core.Direction
		ok       bool
	}{
		{runeKey("w"), core.DirUp, true},
		{runeKey("A"), core.DirLeft, true},
		{runeKey("s"), core.DirDown, true},
		{runeKey("d"), core.DirRight, true},
		{tea.KeyMsg{Type: tea.KeyUp}, core.DirUp, true},
		{tea.KeyMsg{Type: tea.KeyDown}, core.DirDown, true},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.DirLeft, true},
		{tea.KeyMsg{Type: tea.KeyRight}, core.DirRight, true},
		{runeKey("x"), core.DirNone, false},
	}

	for _, tt := range tests {
		got, ok := km.Direction(tt.msg)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("Direction(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), got, ok, tt.expected, tt.ok)
		}
	}
}

func TestModelKeyStoresDirection(t *testing.T) {
	slot := &core.DirectionSlot{}
	m := newTestModel(snake.New(rand.New(rand.NewSource(1)), slot), slot)

	_, cmd := m.Update(runeKey("d"))
	if cmd != nil {
		t.Error("Direction keys should not schedule commands")
	}
	if slot.Load() != core.DirRight {
		t.Errorf("slot = %v, expected right", slot.Load())
	}
}

func TestModelQuitKey(t *testing.T) {
	slot := &core.DirectionSlot{}
	m := newTestModel(snake.New(rand.New(rand.NewSource(1)), slot), slot)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("Quit key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Quit key should return tea.Quit")
	}
	if updated.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelTickAdvancesGame(t *testing.T) {
	slot := &core.DirectionSlot{}
	slot.Store(core.DirDown)
	g := snake.New(rand.New(rand.NewSource(1)), slot)
	m := newTestModel(g, slot)

	_, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Fatal("A running game should schedule the next tick")
	}
	if g.Head() != (core.Cell{Row: 6, Col: 5}) {
		t.Errorf("Head() = %v, expected (6,5)", g.Head())
	}
}

func TestModelTickGameOverQuits(t *testing.T) {
	slot := &core.DirectionSlot{}
	slot.Store(core.DirLeft)
	body := []core.Cell{{Row: 5, Col: 7}, {Row: 5, Col: 6}, {Row: 5, Col: 5}}
	g := snake.NewWithState(rand.New(rand.NewSource(1)), slot, body, core.Cell{Row: 20, Col: 20})
	m := newTestModel(g, slot)

	updated, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Fatal("Game over should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Game over should return tea.Quit")
	}
	if !strings.Contains(updated.View(), "GAME OVER") {
		t.Error("Final view should show GAME OVER")
	}

	// Further ticks are ignored
	if _, cmd := updated.Update(TickMsg{}); cmd != nil {
		t.Error("Ticks after game over should do nothing")
	}
}

func TestModelView(t *testing.T) {
	slot := &core.DirectionSlot{}
	m := newTestModel(snake.New(rand.New(rand.NewSource(1)), slot), slot)

	view := m.View()
	if !strings.Contains(view, "length 1") {
		t.Errorf("View() missing status line:\n%s", view)
	}
	if !strings.Contains(view, "quit") {
		t.Errorf("View() missing help line:\n%s", view)
	}
}

func TestRenderScreenUnstyled(t *testing.T) {
	s := core.NewScreen(2, 4)
	s.Fill('-')
	s.Set(core.Cell{Row: 0, Col: 1}, '1')
	s.Set(core.Cell{Row: 1, Col: 3}, '2')

	if got := RenderScreen(s, Styles{}); got != s.String() {
		t.Errorf("RenderScreen() = %q, expected %q", got, s.String())
	}
}

func TestCheckSize(t *testing.T) {
	if err := checkSize(MinWidth, MinHeight); err != nil {
		t.Errorf("checkSize(%d, %d) = %v, expected nil", MinWidth, MinHeight, err)
	}
	if err := checkSize(MinWidth-1, MinHeight); err == nil {
		t.Error("checkSize should reject a narrow terminal")
	}
	if err := checkSize(MinWidth, MinHeight-1); err == nil {
		t.Error("checkSize should reject a short terminal")
	}
}
