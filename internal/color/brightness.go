package color

import (
	"math"
	"strings"
)

// ContrastThreshold is the brightness above which dark text is used.
const ContrastThreshold = 150

// Brightness returns the perceptual luminance of c in the range [0, 255]:
//
//	(R*299 + G*587 + B*114) / 1000
//
// A leading '#' is optional. Input is not validated: a channel is read from
// the longest run of hex digits at the start of its two-character slot, and
// a slot with no leading hex digit makes the result NaN.
func Brightness(c Color) float64 {
	hex := strings.TrimPrefix(string(c), "#")

	r := channel(hex, 0)
	g := channel(hex, 2)
	b := channel(hex, 4)

	return (r*299 + g*587 + b*114) / 1000
}

// TextColor picks Black or White text for readability on background c.
// The comparison is strict, so a brightness of exactly 150 gets White.
func TextColor(c Color) Color {
	if Brightness(c) > ContrastThreshold {
		return Black
	}
	return White
}

func channel(hex string, start int) float64 {
	if start >= len(hex) {
		return math.NaN()
	}
	end := min(start+2, len(hex))

	v, n := 0, 0
	for _, ch := range []byte(hex[start:end]) {
		d := hexValue(ch)
		if d < 0 {
			break
		}
		v = v*16 + d
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return float64(v)
}

func hexValue(ch byte) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	default:
		return -1
	}
}
