package app

// Surface is the boundary to the windowing collaborator. It owns the
// actual window, the event queue, and the frame pacing; the app only
// reads events from it and hands it finished pixels.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)
	// PollEvents returns the input events received since the last poll.
	PollEvents() []Event
	// Present displays the pixel buffer, blocking until the frame is
	// consumed. Implementations own the frame-rate limit.
	Present(pix []uint32) error
	// Closed reports whether the window has been closed.
	Closed() bool
}
