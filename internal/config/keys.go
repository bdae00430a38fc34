package config

import (
	"fmt"
	"slices"
	"strings"

	"nathanbeddoewebdev/huepick/internal/clipboard"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "clipboard").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Allowed lists the accepted values. The first entry is the default.
	Allowed []string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)
}

// Default returns the value used when the key is not set.
func (k KeySpec) Default() string {
	if len(k.Allowed) == 0 {
		return ""
	}
	return k.Allowed[0]
}

// Validate checks value against Allowed. The comparison is
// case-insensitive; callers should store the normalized value.
func (k KeySpec) Validate(value string) error {
	if len(k.Allowed) == 0 {
		return nil
	}
	normalized := strings.ToLower(strings.TrimSpace(value))
	if slices.Contains(k.Allowed, normalized) {
		return nil
	}
	return fmt.Errorf("invalid value %q for %s (valid: %s)", value, k.Name, strings.Join(k.Allowed, ", "))
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "clipboard",
		Description: "Clipboard backend used by copy (auto tries system, then OSC 52)",
		Allowed:     clipboard.Modes,
		Get:         func(cfg *Config) string { return cfg.Clipboard },
		Set:         func(cfg *Config, v string) { cfg.Clipboard = v },
	},
	{
		Name:        "copy-errors",
		Description: "Whether a failed copy is shown in the status bar",
		Allowed:     []string{CopyErrorsShow, CopyErrorsSilent},
		Get:         func(cfg *Config) string { return cfg.CopyErrors },
		Set:         func(cfg *Config, v string) { cfg.CopyErrors = v },
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys, their
// descriptions and accepted values, for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	maxLen := 0
	for _, k := range Keys {
		maxLen = max(maxLen, len(k.Name))
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
		if len(k.Allowed) > 0 {
			fmt.Fprintf(&b, "  %-*s   values: %s (default %s)\n", maxLen, "", strings.Join(k.Allowed, ", "), k.Default())
		}
	}
	return b.String()
}
