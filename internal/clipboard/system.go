package clipboard

import (
	"fmt"

	atotto "github.com/atotto/clipboard"
)

// System writes to the native clipboard (pbcopy, xclip, xsel, wl-copy or
// the Windows clipboard API).
type System struct{}

// writeAll is swapped in tests.
var writeAll = atotto.WriteAll

// unsupported reports whether no native clipboard utility was found.
var unsupported = func() bool { return atotto.Unsupported }

// WriteText implements Writer.
func (System) WriteText(text string) error {
	if unsupported() {
		return fmt.Errorf("%w: no system clipboard utility found", ErrUnavailable)
	}
	if err := writeAll(text); err != nil {
		return fmt.Errorf("%w: system clipboard: %v", ErrUnavailable, err)
	}
	return nil
}
