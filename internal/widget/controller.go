package widget

import (
	"fmt"
	"io"
	"log/slog"

	"nathanbeddoewebdev/huepick/internal/color"
)

// CopyCaption is the copy button label when the pointer is not over it.
const CopyCaption = "Copy Code"

// Clipboard places text on a clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// Config wires a Controller to its collaborators. Renderer and Clipboard
// are required; Source and Logger fall back to defaults when nil.
type Config struct {
	Renderer  Renderer
	Clipboard Clipboard
	Source    color.Source
	Logger    *slog.Logger
}

// Controller runs the picker's actions against a Renderer and a Clipboard.
// It is meant to be driven from a single event loop and is not safe for
// concurrent use.
type Controller struct {
	state    State
	feedback Feedback

	renderer  Renderer
	clipboard Clipboard
	source    color.Source
	logger    *slog.Logger

	hovering    bool
	initialized bool
}

// NewController returns a Controller with no color applied yet. Call Init
// to display the first color.
func NewController(cfg Config) *Controller {
	src := cfg.Source
	if src == nil {
		src = color.DefaultSource()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{
		renderer:  cfg.Renderer,
		clipboard: cfg.Clipboard,
		source:    src,
		logger:    logger,
	}
}

// Init displays the first random color. Only the first call has an effect.
func (c *Controller) Init() {
	if c.initialized {
		return
	}
	c.initialized = true
	c.ChangeColor()
}

// ChangeColor generates a new random color and applies it.
func (c *Controller) ChangeColor() color.Color {
	next := color.Generate(c.source)
	c.ApplyColor(next)
	return next
}

// ApplyColor displays col: background, text and contrast foreground are
// rendered together and col becomes the current color.
func (c *Controller) ApplyColor(col color.Color) {
	v := ViewFor(col)
	c.state.SetColor(col)
	c.renderer.Render(v)

	c.logger.Debug("color applied",
		slog.String("color", v.Text),
		slog.Float64("brightness", color.Brightness(col)),
		slog.String("foreground", v.Foreground.String()),
	)
}

// CurrentColor returns the displayed color.
func (c *Controller) CurrentColor() color.Color { return c.state.CurrentColor() }

// Copy writes text to the clipboard. On success the acknowledgment becomes
// visible and the returned token must be passed to HideFeedback once
// FeedbackDelay has elapsed. On failure the acknowledgment is untouched.
func (c *Controller) Copy(text string) (uint64, error) {
	if err := c.clipboard.WriteText(text); err != nil {
		c.logger.Warn("copy failed", slog.String("text", text), slog.Any("error", err))
		return 0, fmt.Errorf("copy %s: %w", text, err)
	}

	token := c.feedback.Show()
	c.logger.Debug("copied to clipboard", slog.String("text", text), slog.Uint64("token", token))
	return token, nil
}

// CopyCurrent copies the displayed color code.
func (c *Controller) CopyCurrent() (uint64, error) {
	return c.Copy(c.state.CurrentColor().String())
}

// HideFeedback is the hide timer callback for token.
func (c *Controller) HideFeedback(token uint64) {
	if c.feedback.Hide(token) {
		c.logger.Debug("copy feedback hidden", slog.Uint64("token", token))
		return
	}
	c.logger.Debug("stale feedback timer ignored", slog.Uint64("token", token))
}

// FeedbackVisible reports whether the copy acknowledgment is shown.
func (c *Controller) FeedbackVisible() bool { return c.feedback.Visible() }

// HoverCopy records whether the pointer is over the copy button.
func (c *Controller) HoverCopy(over bool) { c.hovering = over }

// CopyLabel returns the copy button's label: the current color code while
// hovered, CopyCaption otherwise.
func (c *Controller) CopyLabel() string {
	if c.hovering {
		return c.state.CurrentColor().String()
	}
	return CopyCaption
}
