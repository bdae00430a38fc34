// Package config handles persistent user preferences for huepick.
//
// Configuration is stored as JSON at ~/.config/huepick/config.json (or the
// platform-equivalent path returned by os.UserConfigDir).
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"nathanbeddoewebdev/huepick/internal/clipboard"
)

const (
	appDir   = "huepick"
	fileName = "config.json"
)

// pathOverride, when non-empty, replaces the default config file path.
// Intended for testing. Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the config file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override, reverting to the default. Intended for testing.
func ResetPath() { pathOverride = "" }

// Values for the copy-errors key.
const (
	CopyErrorsShow   = "show"
	CopyErrorsSilent = "silent"
)

// Config holds user preferences that persist across invocations.
type Config struct {
	// Clipboard selects the clipboard backend: auto, system, osc52 or off.
	Clipboard string `json:"clipboard,omitempty"`

	// CopyErrors controls whether a failed copy is reported in the UI.
	CopyErrors string `json:"copy_errors,omitempty"`
}

// ClipboardMode returns the configured backend, defaulting to "auto".
func (c *Config) ClipboardMode() string {
	if c.Clipboard == "" {
		return clipboard.ModeAuto
	}
	return c.Clipboard
}

// ShowCopyErrors reports whether clipboard failures should be surfaced.
// Anything other than "silent" counts as showing them.
func (c *Config) ShowCopyErrors() bool {
	return c.CopyErrors != CopyErrorsSilent
}

// Path returns the config file location. A path set with SetPath wins;
// otherwise the file lives under os.UserConfigDir.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// Load reads the preferences from Path. A missing file yields a zero
// Config, which means every key takes its default.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the preferences stored at path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the preferences to Path.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the preferences to path as indented JSON, creating the
// parent directory if needed. The file is replaced atomically.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, fileName+".*")
	if err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	return nil
}
