// Package color implements the hex color model used by huepick: random
// generation, the perceptual brightness heuristic and the black/white
// contrast decision.
package color

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidColor indicates a string that is not a 3- or 6-digit hex color.
var ErrInvalidColor = errors.New("invalid color")

// Color is an RGB color in the canonical form "#RRGGBB" with uppercase
// hex digits. Values produced by Generate and Parse always satisfy Valid;
// arbitrary strings may be converted for use with Brightness.
type Color string

const (
	// Black is the text color used on bright backgrounds.
	Black Color = "#000000"
	// White is the text color used on dark backgrounds.
	White Color = "#FFFFFF"
)

const hexDigits = "0123456789ABCDEF"

// String returns the color as displayed to the user.
func (c Color) String() string { return string(c) }

// Valid reports whether c is exactly '#' followed by six uppercase hex digits.
func (c Color) Valid() bool {
	if len(c) != 7 || c[0] != '#' {
		return false
	}
	for i := 1; i < len(c); i++ {
		if strings.IndexByte(hexDigits, c[i]) < 0 {
			return false
		}
	}
	return true
}

// Parse converts user input into a canonical Color.
//
// Accepted forms are "#RRGGBB", "RRGGBB", "#RGB" and "RGB", in any case,
// with surrounding whitespace ignored. Short forms are expanded by
// doubling each digit.
func Parse(s string) (Color, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 3 && len(raw) != 6 {
		return "", fmt.Errorf("%w %q: expected 3 or 6 hex digits, got %d", ErrInvalidColor, s, len(raw))
	}

	hex := strings.ToUpper(raw)
	for i := 0; i < len(hex); i++ {
		if strings.IndexByte(hexDigits, hex[i]) < 0 {
			return "", fmt.Errorf("%w %q: %q is not a hex digit", ErrInvalidColor, s, string(raw[i]))
		}
	}

	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	return Color("#" + hex), nil
}
