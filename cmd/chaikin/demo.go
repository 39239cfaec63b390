package main

import (
	"time"

	"github.com/go-chaikin/chaikin/pkg/animation"
	"github.com/go-chaikin/chaikin/pkg/app"
)

// framePacing approximates a 60Hz present cadence, the rate the real
// window backend would enforce.
const framePacing = 16600 * time.Microsecond

// settleFrames is how many frames the demo keeps presenting after the
// animation finishes before closing.
const settleFrames = 30

// demoSurface is an offscreen app.Surface that scripts a short
// session: place a zig-zag of control points, start playback, and
// close once the final generation has been on screen for a moment.
type demoSurface struct {
	application *app.App
	width       int
	height      int
	pending     [][]app.Event
	settled     int
}

func newDemoSurface(application *app.App) *demoSurface {
	s := &demoSurface{application: application}
	s.width, s.height = application.Size()

	w := float64(s.width)
	h := float64(s.height)
	clicks := []app.Event{
		app.PointerDown{X: 0.10 * w, Y: 0.70 * h},
		app.PointerDown{X: 0.30 * w, Y: 0.20 * h},
		app.PointerDown{X: 0.50 * w, Y: 0.80 * h},
		app.PointerDown{X: 0.70 * w, Y: 0.25 * h},
		app.PointerDown{X: 0.90 * w, Y: 0.60 * h},
	}
	// One click per frame, then start playback.
	for _, click := range clicks {
		s.pending = append(s.pending, []app.Event{click})
	}
	s.pending = append(s.pending, []app.Event{app.KeyPress{Key: app.KeyStart}})

	return s
}

func (s *demoSurface) Size() (width, height int) {
	return s.width, s.height
}

func (s *demoSurface) PollEvents() []app.Event {
	if len(s.pending) == 0 {
		return nil
	}
	batch := s.pending[0]
	s.pending = s.pending[1:]
	return batch
}

func (s *demoSurface) Present(pix []uint32) error {
	time.Sleep(framePacing)
	if s.application.Status() == animation.StatusFinished {
		s.settled++
	}
	return nil
}

func (s *demoSurface) Closed() bool {
	return s.settled > settleFrames
}
