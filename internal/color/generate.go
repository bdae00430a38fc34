package color

import "math/rand/v2"

// Source supplies uniformly distributed integers in [0, n).
// *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource returns a Source backed by the runtime's global generator.
func DefaultSource() Source { return globalSource{} }

// Generate returns a random color. Each of the six digits is drawn
// independently and uniformly from the sixteen hex symbols.
func Generate(src Source) Color {
	if src == nil {
		src = DefaultSource()
	}

	buf := make([]byte, 7)
	buf[0] = '#'
	for i := 1; i < len(buf); i++ {
		buf[i] = hexDigits[src.IntN(len(hexDigits))]
	}
	return Color(buf)
}
