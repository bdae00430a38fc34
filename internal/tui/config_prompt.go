package tui

import (
	"errors"

	"nathanbeddoewebdev/huepick/internal/config"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user cancels an interactive prompt.
var ErrAborted = errors.New("aborted by user")

// PromptConfigValue asks the user to pick a key and then one of its
// allowed values. The value currently stored in cfg is preselected.
func PromptConfigValue(accessible bool, cfg *config.Config) (key, value string, err error) {
	keyField := huh.NewSelect[string]().
		Title("Setting").
		Options(buildKeyOptions(config.Keys)...).
		Value(&key)

	if err := runForm(accessible, huh.NewGroup(keyField)); err != nil {
		return "", "", err
	}

	spec := config.Lookup(key)
	if spec == nil {
		return "", "", errors.New("unknown configuration key " + key)
	}

	value = spec.Get(cfg)
	if value == "" {
		value = spec.Default()
	}
	valueField := huh.NewSelect[string]().
		Title(spec.Name).
		Description(spec.Description).
		Options(huh.NewOptions(spec.Allowed...)...).
		Value(&value)

	if err := runForm(accessible, huh.NewGroup(valueField)); err != nil {
		return "", "", err
	}
	return spec.Name, value, nil
}

func buildKeyOptions(keys []config.KeySpec) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(keys))
	for _, k := range keys {
		options = append(options, huh.NewOption(k.Name+" - "+k.Description, k.Name))
	}
	return options
}

func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
