package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pet-arcade/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorBackdrop:   lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	core.ColorTarget:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorTargetCore: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorPaddle:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorPipe:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorPipeCap:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBird:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorSnakeHead:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorSnakeBody:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorFood:       lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorText:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
}

// RenderCanvas converts a canvas to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderCanvas(c *core.Canvas) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(c.Cols()*c.Rows()*2 + c.Rows())

	for y := range c.Rows() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < c.Cols() {
			startColor := c.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < c.Cols() {
				cell := c.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
