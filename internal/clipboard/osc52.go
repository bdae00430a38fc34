package clipboard

import (
	"fmt"
	"io"
	"os"

	"github.com/aymanbagabas/go-osc52/v2"
)

// OSC52 asks the terminal emulator to set its clipboard by writing an
// OSC 52 escape sequence. It works over SSH but gives no confirmation that
// the terminal honored the request.
type OSC52 struct {
	out    io.Writer
	getenv func(string) string
}

// NewOSC52 returns an OSC52 writer that emits sequences to out.
func NewOSC52(out io.Writer) OSC52 {
	return OSC52{out: out, getenv: os.Getenv}
}

// WriteText implements Writer.
func (o OSC52) WriteText(text string) error {
	if o.out == nil {
		return fmt.Errorf("%w: no terminal for OSC 52", ErrUnavailable)
	}

	if _, err := o.Sequence(text).WriteTo(o.out); err != nil {
		return fmt.Errorf("%w: osc52: %v", ErrUnavailable, err)
	}
	return nil
}

// Sequence builds the escape sequence for text, wrapped for tmux or screen
// when running inside one.
func (o OSC52) Sequence(text string) osc52.Sequence {
	seq := osc52.New(text)

	getenv := o.getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	switch {
	case getenv("TMUX") != "":
		seq = seq.Tmux()
	case getenv("STY") != "":
		seq = seq.Screen()
	}
	return seq
}
