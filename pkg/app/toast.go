package app

import (
	"time"

	"github.com/go-chaikin/chaikin/pkg/animation"
)

// DefaultToastDuration is how long a toast stays on screen before it
// hides itself.
const DefaultToastDuration = 8 * time.Second

// Toast is a transient notification shown near the bottom of the
// canvas, used to tell the user they have not placed enough points.
// It reads time from the animation clock so tests can expire it.
type Toast struct {
	// Duration overrides how long the toast shows. Zero means
	// DefaultToastDuration.
	Duration time.Duration

	message string
	shownAt time.Time
	active  bool
}

// Show displays the given message, restarting the auto-dismiss timer.
func (t *Toast) Show(message string) {
	t.message = message
	t.shownAt = animation.Now()
	t.active = true
}

// Dismiss hides the toast.
func (t *Toast) Dismiss() {
	t.active = false
}

// Showing reports whether the toast should be drawn this frame.
func (t *Toast) Showing() bool {
	if !t.active {
		return false
	}
	d := t.Duration
	if d <= 0 {
		d = DefaultToastDuration
	}
	return animation.Now().Sub(t.shownAt) < d
}

// Message returns the current toast text.
func (t *Toast) Message() string {
	return t.message
}
