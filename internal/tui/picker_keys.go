package tui

import (
	"nathanbeddoewebdev/huepick/internal/tui/components"

	"github.com/charmbracelet/bubbles/key"
)

type pickerKeyMap struct {
	Change key.Binding
	Copy   key.Binding
	Quit   key.Binding
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Change: key.NewBinding(
			key.WithKeys(" ", "n"),
			key.WithHelp("space/n", "change color"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c", "copy code"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// footerBindings converts the key map into footer hints.
func (k pickerKeyMap) footerBindings() []components.KeyBinding {
	bindings := []key.Binding{k.Change, k.Copy, k.Quit}
	out := make([]components.KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, components.KeyBinding{Key: h.Key, Desc: h.Desc})
	}
	return out
}
