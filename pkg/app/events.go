package app

// Key identifies the commands the visualizer responds to. Which
// physical keys map to them is the windowing layer's business.
type Key int

const (
	// KeyStart begins playback of the smoothing animation.
	KeyStart Key = iota
	// KeyReset clears the control points and returns to drawing.
	KeyReset
	// KeyDismiss hides the active toast message.
	KeyDismiss
	// KeyQuit closes the application.
	KeyQuit
)

// Event is an input event delivered by the windowing layer.
type Event interface {
	isEvent()
}

// PointerDown reports a primary-button press at canvas coordinates.
type PointerDown struct {
	X float64
	Y float64
}

func (PointerDown) isEvent() {}

// KeyPress reports one of the application key commands.
type KeyPress struct {
	Key Key
}

func (KeyPress) isEvent() {}
