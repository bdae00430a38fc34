// Package clipboard provides the clipboard backends huepick can copy to:
// the native system clipboard and the terminal's OSC 52 sequence.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnavailable indicates that no clipboard could accept the text.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer places text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// Backend modes accepted by New.
const (
	ModeAuto   = "auto"
	ModeSystem = "system"
	ModeOSC52  = "osc52"
	ModeOff    = "off"
)

// Modes lists the accepted backend modes in display order.
var Modes = []string{ModeAuto, ModeSystem, ModeOSC52, ModeOff}

// New returns the Writer for mode. The empty mode means ModeAuto, which
// tries the system clipboard first and falls back to OSC 52 written to out.
func New(mode string, out io.Writer) (Writer, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeAuto:
		return Chain{System{}, NewOSC52(out)}, nil
	case ModeSystem:
		return System{}, nil
	case ModeOSC52:
		return NewOSC52(out), nil
	case ModeOff:
		return Disabled{}, nil
	default:
		return nil, fmt.Errorf("clipboard: unknown mode %q (valid: %s)", mode, strings.Join(Modes, ", "))
	}
}

// Chain tries each Writer in order and stops at the first success.
type Chain []Writer

// WriteText implements Writer. When every writer fails the joined errors
// are returned.
func (c Chain) WriteText(text string) error {
	if len(c) == 0 {
		return ErrUnavailable
	}

	var errs []error
	for _, w := range c {
		err := w.WriteText(text)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Disabled is a Writer that never copies.
type Disabled struct{}

// WriteText always returns ErrUnavailable.
func (Disabled) WriteText(string) error {
	return fmt.Errorf("%w: clipboard is turned off", ErrUnavailable)
}
