package widget

import "nathanbeddoewebdev/huepick/internal/color"

// View is everything a renderer needs to draw the color display.
type View struct {
	// Background fills the display surface.
	Background color.Color
	// Text is the string shown on the surface.
	Text string
	// Foreground is the color of Text, chosen for contrast.
	Foreground color.Color
}

// Renderer draws a View. Render receives all three visual effects of a
// color change in one call.
type Renderer interface {
	Render(v View)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(v View)

// Render calls f(v).
func (f RendererFunc) Render(v View) { f(v) }

// ViewFor builds the View for background c.
func ViewFor(c color.Color) View {
	return View{
		Background: c,
		Text:       c.String(),
		Foreground: color.TextColor(c),
	}
}
