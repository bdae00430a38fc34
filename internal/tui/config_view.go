package tui

import (
	"fmt"
	"slices"
	"strings"

	"nathanbeddoewebdev/huepick/internal/config"
	"nathanbeddoewebdev/huepick/internal/tui/components"
	"nathanbeddoewebdev/huepick/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// --- Config messages ---

type configSavedMsg struct{}

type configSaveErrorMsg struct {
	err error
}

// --- Config model ---

type configViewModel struct {
	cfg  *config.Config
	keys []config.KeySpec

	cursor int
	dirty  bool

	// save persists the config. Replaced in tests.
	save func(*config.Config) error

	width  int
	height int

	status  string
	isError bool
}

// RunConfigView starts the interactive preferences editor.
func RunConfigView() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	m := newConfigViewModel(cfg)

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newConfigViewModel(cfg *config.Config) configViewModel {
	return configViewModel{
		cfg:  cfg,
		keys: config.Keys,
		save: (*config.Config).Save,
	}
}

func (m configViewModel) Init() tea.Cmd {
	return nil
}

func (m configViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case configSavedMsg:
		m.dirty = false
		m.status = "Configuration saved"
		m.isError = false
		return m, nil

	case configSaveErrorMsg:
		m.status = "Error: " + msg.err.Error()
		m.isError = true
		return m, nil
	}

	return m, nil
}

func (m configViewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.keys)-1 {
			m.cursor++
		}
	case "right", "l", " ":
		m.cycle(1)
	case "left", "h":
		m.cycle(-1)
	case "enter", "s":
		if !m.dirty {
			m.status = "No changes to save"
			m.isError = false
			return m, nil
		}
		return m, m.saveConfig()
	}

	return m, nil
}

// cycle moves the selected key's value through its allowed values.
func (m *configViewModel) cycle(step int) {
	if len(m.keys) == 0 {
		return
	}
	spec := m.keys[m.cursor]
	if len(spec.Allowed) == 0 {
		return
	}

	current := spec.Get(m.cfg)
	if current == "" {
		current = spec.Default()
	}
	idx := max(slices.Index(spec.Allowed, current), 0)
	n := len(spec.Allowed)
	next := spec.Allowed[((idx+step)%n+n)%n]

	spec.Set(m.cfg, next)
	m.dirty = true
	m.status = ""
}

func (m configViewModel) saveConfig() tea.Cmd {
	return func() tea.Msg {
		if err := m.save(m.cfg); err != nil {
			return configSaveErrorMsg{err: err}
		}
		return configSavedMsg{}
	}
}

func (m configViewModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "config", "")

	footer := components.Footer(m.width, []components.KeyBinding{
		{Key: "j/k", Desc: "navigate"},
		{Key: "h/l", Desc: "change value"},
		{Key: "enter", Desc: "save"},
		{Key: "q", Desc: "quit"},
	})

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

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m configViewModel) renderContent(height int) string {
	title := styles.Title.Render("Preferences")

	if len(m.keys) == 0 {
		combined := lipgloss.JoinVertical(lipgloss.Center,
			title,
			"",
			styles.MutedText.Render("No configuration keys defined."),
		)
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			combined,
		)
	}

	cardWidth := 56
	labelWidth := 20

	rows := make([]string, 0, len(m.keys))
	for i, spec := range m.keys {
		isSelected := i == m.cursor

		prefix := "  "
		if isSelected {
			prefix = styles.AccentText.Render("> ")
		}

		value := spec.Get(m.cfg)
		if value == "" {
			value = spec.Default() + " (default)"
		}

		var row string
		if isSelected {
			nameText := styles.Label.Width(labelWidth).Render(spec.Name)
			valueText := styles.Value.Bold(true).Render("< " + value + " >")
			row = prefix + nameText + valueText
		} else {
			nameText := styles.MutedText.Width(labelWidth).Render(spec.Name)
			valueText := styles.MutedText.Render(value)
			row = prefix + nameText + valueText
		}

		rows = append(rows, row)

		if isSelected {
			descLine := strings.Repeat(" ", 4) + styles.MutedText.Italic(true).Render(spec.Description)
			rows = append(rows, descLine)
		}
	}

	content := strings.Join(rows, "\n")
	card := styles.Card.Width(cardWidth).Render(content)

	combined := lipgloss.JoinVertical(lipgloss.Center, title, "", card)

	return lipgloss.Place(
		m.width, height,
		lipgloss.Center, lipgloss.Center,
		combined,
	)
}
