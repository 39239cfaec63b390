package testing

import (
	"testing"

	"github.com/go-chaikin/chaikin/pkg/app"
)

func TestRecorderDeliversOneBatchPerPoll(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.Enqueue(app.PointerDown{X: 1, Y: 2})
	rec.Enqueue(app.KeyPress{Key: app.KeyStart}, app.KeyPress{Key: app.KeyQuit})

	first := rec.PollEvents()
	if len(first) != 1 {
		t.Fatalf("first poll returned %d events, want 1", len(first))
	}
	second := rec.PollEvents()
	if len(second) != 2 {
		t.Fatalf("second poll returned %d events, want 2", len(second))
	}
	if rec.PollEvents() != nil {
		t.Error("drained recorder still returned events")
	}
}

func TestRecorderCopiesPresentedFrames(t *testing.T) {
	rec := NewRecorder(2, 1)
	pix := []uint32{1, 2}
	if err := rec.Present(pix); err != nil {
		t.Fatalf("Present: %v", err)
	}

	pix[0] = 99
	if rec.Frames[0][0] != 1 {
		t.Error("recorder aliased the presented buffer")
	}

	if w, h := rec.Size(); w != 2 || h != 1 {
		t.Errorf("Size() = %dx%d", w, h)
	}
}

func TestRecorderClose(t *testing.T) {
	rec := NewRecorder(1, 1)
	if rec.Closed() {
		t.Error("new recorder already closed")
	}
	rec.Close()
	if !rec.Closed() {
		t.Error("recorder not closed after Close")
	}
}
