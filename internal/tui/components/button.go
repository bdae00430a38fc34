package components

import (
	"nathanbeddoewebdev/huepick/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Button renders a bordered clickable label. Width is the minimum inner
// width so a button does not jump around when its label changes length.
func Button(label string, width int, hovered bool) string {
	style := styles.Button
	if hovered {
		style = styles.ButtonHover
	}
	return style.Width(width).Align(lipgloss.Center).Render(label)
}
