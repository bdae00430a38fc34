// Package widget holds the color picker's behavior independent of how it is
// drawn: the current color, the change-color and copy actions, the hover
// label of the copy button and the copy acknowledgment timer.
package widget

import "nathanbeddoewebdev/huepick/internal/color"

// State holds the single currently displayed color.
type State struct {
	current color.Color
}

// CurrentColor returns the displayed color, or "" before the first change.
func (s *State) CurrentColor() color.Color { return s.current }

// SetColor replaces the displayed color.
func (s *State) SetColor(c color.Color) { s.current = c }
