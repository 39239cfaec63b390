package testing

import "github.com/go-chaikin/chaikin/pkg/app"

// Recorder is a headless app.Surface. Tests enqueue one batch of
// events per frame and inspect the pixel buffers the app presented.
type Recorder struct {
	width  int
	height int

	pending [][]app.Event
	// Frames holds a copy of every presented pixel buffer, in order.
	Frames [][]uint32

	closed bool
}

// NewRecorder returns a recorder of the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

// Size returns the recorder's dimensions.
func (r *Recorder) Size() (width, height int) {
	return r.width, r.height
}

// Enqueue schedules a batch of events to be delivered on an upcoming
// frame, one batch per PollEvents call.
func (r *Recorder) Enqueue(events ...app.Event) {
	r.pending = append(r.pending, events)
}

// PollEvents pops the next scheduled batch, or nothing.
func (r *Recorder) PollEvents() []app.Event {
	if len(r.pending) == 0 {
		return nil
	}
	batch := r.pending[0]
	r.pending = r.pending[1:]
	return batch
}

// Present records a copy of the pixel buffer.
func (r *Recorder) Present(pix []uint32) error {
	frame := make([]uint32, len(pix))
	copy(frame, pix)
	r.Frames = append(r.Frames, frame)
	return nil
}

// Close marks the surface closed; the app loop exits on its next
// iteration.
func (r *Recorder) Close() {
	r.closed = true
}

// Closed reports whether Close has been called.
func (r *Recorder) Closed() bool {
	return r.closed
}
