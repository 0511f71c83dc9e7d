package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Styles maps screen glyphs to lipgloss styles.
type Styles map[rune]lipgloss.Style

// NewStyles builds glyph styles from the configured theme.
func NewStyles(theme config.ThemeConfig) Styles {
	return Styles{
		snake.GlyphEmpty:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Empty)),
		snake.GlyphSnake:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Snake)).Bold(true),
		snake.GlyphCherry: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Cherry)).Bold(true),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent identical glyphs to minimize ANSI escape sequences.
// Glyphs without a style are written as is.
func RenderScreen(s *core.Screen, styles Styles) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Cols()*s.Rows()*2 + s.Rows())

	for y := 0; y < s.Rows(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		row := []rune(s.Row(y))
		x := 0
		for x < len(row) {
			glyph := row[x]
			start := x
			for x < len(row) && row[x] == glyph {
				x++
			}

			run := string(row[start:x])
			if style, ok := styles[glyph]; ok {
				run = style.Render(run)
			}
			sb.WriteString(run)
		}
	}
	return sb.String()
}
