package tui

import (
	"nathanbeddoewebdev/huepick/internal/color"
	"nathanbeddoewebdev/huepick/internal/tui/components"
	"nathanbeddoewebdev/huepick/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

const (
	feedbackText = "Copied!"
	changeLabel  = "Change Color"
	buttonWidth  = 16

	maxSwatchWidth  = 48
	maxSwatchHeight = 9
)

func (m pickerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	detail := ""
	if m.clipboardMode != "" {
		detail = "clipboard: " + m.clipboardMode
	}
	header := components.Header(m.width, "picker", detail)
	footer := components.Footer(m.width, m.keys.footerBindings())

	statusBar := ""
	if m.status != "" {
		statusBar = components.StatusBar(m.width, m.status, m.isError)
	}

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	statusH := lipgloss.Height(statusBar)
	contentH := max(m.height-headerH-footerH-statusH, 1)

	content := m.renderContent(contentH)

	sections := []string{header, content}
	if statusBar != "" {
		sections = append(sections, statusBar)
	}
	sections = append(sections, footer)

	view := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.zones == nil {
		return view
	}
	return m.zones.Scan(view)
}

func (m pickerModel) renderContent(height int) string {
	v := m.surface.view

	swatchW := min(maxSwatchWidth, max(m.width-8, 12))
	// Reserve rows for the info line, buttons and feedback below the swatch.
	swatchH := min(maxSwatchHeight, max(height-8, 3))

	swatch := styles.Swatch(v.Background.String(), v.Foreground.String(), swatchW, swatchH).
		Render(v.Text)

	info := ""
	if desc, err := color.Describe(v.Background); err == nil {
		info = styles.MutedText.Render(desc.RGBString() + "  ·  " + desc.HSLString())
	}

	changeBtn := components.Button(changeLabel, buttonWidth, m.changeHovered)
	copyBtn := components.Button(m.ctrl.CopyLabel(), buttonWidth, m.copyHovered)
	if m.zones != nil {
		changeBtn = m.zones.Mark(zoneChange, changeBtn)
		copyBtn = m.zones.Mark(zoneCopy, copyBtn)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, changeBtn, "  ", copyBtn)

	// A blank line keeps the layout still while the indicator is hidden.
	feedback := " "
	if m.ctrl.FeedbackVisible() {
		feedback = styles.SuccessText.Render(feedbackText)
	}

	combined := lipgloss.JoinVertical(lipgloss.Center,
		swatch,
		"",
		info,
		"",
		buttons,
		feedback,
	)

	return lipgloss.Place(
		m.width, height,
		lipgloss.Center, lipgloss.Center,
		combined,
	)
}
