package tui

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"nathanbeddoewebdev/huepick/internal/color"
	"nathanbeddoewebdev/huepick/internal/widget"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Zone IDs for the clickable controls.
const (
	zoneChange = "change-color"
	zoneCopy   = "copy-code"
)

// --- Picker messages ---

// feedbackExpiredMsg is delivered FeedbackDelay after a successful copy.
type feedbackExpiredMsg struct {
	token uint64
}

// --- Picker model ---

// PickerOptions configures RunPicker.
type PickerOptions struct {
	// Clipboard receives copied color codes. Required.
	Clipboard widget.Clipboard

	// ClipboardMode is shown in the header; informational only.
	ClipboardMode string

	// ShowCopyErrors reports failed copies in the status bar. When false a
	// failed copy is silently ignored.
	ShowCopyErrors bool

	// Source overrides the random source, mainly for tests.
	Source color.Source

	// Logger receives debug events. Nil discards them.
	Logger *slog.Logger
}

// surface is the widget.Renderer for the picker. It is shared by pointer so
// every copy of the bubbletea model sees the latest View.
type surface struct {
	view widget.View
}

func (s *surface) Render(v widget.View) { s.view = v }

type pickerModel struct {
	ctrl    *widget.Controller
	surface *surface
	keys    pickerKeyMap
	zones   *zone.Manager
	logger  *slog.Logger

	// hit reports whether a mouse event falls inside the zone with the
	// given ID. Replaced in tests, where zone scanning is asynchronous.
	hit func(id string, msg tea.MouseMsg) bool

	clipboardMode  string
	showCopyErrors bool
	copyHovered    bool
	changeHovered  bool

	width  int
	height int

	status  string
	isError bool
}

// ErrNoClipboard is returned by RunPicker when no clipboard was configured.
var ErrNoClipboard = errors.New("picker: no clipboard configured")

// RunPicker starts the full-window color picker TUI.
func RunPicker(opts PickerOptions) error {
	if opts.Clipboard == nil {
		return ErrNoClipboard
	}

	zones := zone.New()
	defer zones.Close()

	m := newPickerModel(opts, zones)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

// newPickerModel builds the model and displays the first color.
func newPickerModel(opts PickerOptions, zones *zone.Manager) pickerModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &surface{}
	ctrl := widget.NewController(widget.Config{
		Renderer:  s,
		Clipboard: opts.Clipboard,
		Source:    opts.Source,
		Logger:    logger,
	})
	ctrl.Init()

	m := pickerModel{
		ctrl:           ctrl,
		surface:        s,
		keys:           defaultPickerKeyMap(),
		zones:          zones,
		logger:         logger,
		clipboardMode:  opts.ClipboardMode,
		showCopyErrors: opts.ShowCopyErrors,
	}
	m.hit = m.zoneHit
	return m
}

func (m pickerModel) zoneHit(id string, msg tea.MouseMsg) bool {
	if m.zones == nil {
		return false
	}
	z := m.zones.Get(id)
	if z == nil {
		return false
	}
	return z.InBounds(msg)
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case feedbackExpiredMsg:
		m.ctrl.HideFeedback(msg.token)
		return m, nil
	}

	return m, nil
}

func (m pickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Change):
		return m.changeColor()
	case key.Matches(msg, m.keys.Copy):
		return m.copyCode()
	}
	return m, nil
}

func (m pickerModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	overCopy := m.hit(zoneCopy, msg)
	if overCopy != m.copyHovered {
		m.copyHovered = overCopy
		m.ctrl.HoverCopy(overCopy)
	}
	m.changeHovered = m.hit(zoneChange, msg)

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch {
	case overCopy:
		return m.copyCode()
	case m.changeHovered:
		return m.changeColor()
	}
	return m, nil
}

func (m pickerModel) changeColor() (tea.Model, tea.Cmd) {
	m.ctrl.ChangeColor()
	m.clearError()
	return m, nil
}

func (m pickerModel) copyCode() (tea.Model, tea.Cmd) {
	token, err := m.ctrl.CopyCurrent()
	if err != nil {
		if m.showCopyErrors {
			m.status = "Copy failed: " + err.Error()
			m.isError = true
		}
		return m, nil
	}

	m.clearError()
	return m, scheduleFeedbackExpiry(token)
}

func (m *pickerModel) clearError() {
	if m.isError {
		m.status = ""
		m.isError = false
	}
}

func scheduleFeedbackExpiry(token uint64) tea.Cmd {
	return tea.Tick(widget.FeedbackDelay, func(_ time.Time) tea.Msg {
		return feedbackExpiredMsg{token: token}
	})
}
