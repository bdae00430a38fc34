package widget

import "time"

// FeedbackDelay is how long the copy acknowledgment stays visible.
const FeedbackDelay = 1500 * time.Millisecond

// Feedback tracks the copy acknowledgment indicator.
//
// Each Show issues a new token. Hide only takes effect for the most recent
// token, so a timer started by an earlier copy cannot cut short the display
// of a later one.
type Feedback struct {
	visible bool
	token   uint64
}

// Show makes the indicator visible and returns the token for its hide timer.
func (f *Feedback) Show() uint64 {
	f.token++
	f.visible = true
	return f.token
}

// Hide hides the indicator if token is the latest one issued by Show.
// It reports whether the indicator was hidden.
func (f *Feedback) Hide(token uint64) bool {
	if token != f.token || !f.visible {
		return false
	}
	f.visible = false
	return true
}

// Visible reports whether the indicator is shown.
func (f *Feedback) Visible() bool { return f.visible }
