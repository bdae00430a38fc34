package color

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Info holds the secondary representations shown under a color's hex code.
type Info struct {
	R, G, B uint8

	// Hue in degrees [0, 360), saturation and lightness in [0, 1].
	Hue        float64
	Saturation float64
	Lightness  float64
}

// Describe decodes c into its RGB and HSL components.
func Describe(c Color) (Info, error) {
	parsed, err := Parse(string(c))
	if err != nil {
		return Info{}, err
	}

	cf, err := colorful.Hex(string(parsed))
	if err != nil {
		return Info{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, c, err)
	}

	r, g, b := cf.RGB255()
	h, s, l := cf.Hsl()
	return Info{R: r, G: g, B: b, Hue: h, Saturation: s, Lightness: l}, nil
}

// RGBString formats the components as "rgb(r, g, b)".
func (i Info) RGBString() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", i.R, i.G, i.B)
}

// HSLString formats the components as "hsl(h, s%, l%)" rounded to integers.
func (i Info) HSLString() string {
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", i.Hue, i.Saturation*100, i.Lightness*100)
}
