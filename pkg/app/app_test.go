package app_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-chaikin/chaikin/pkg/animation"
	"github.com/go-chaikin/chaikin/pkg/app"
	"github.com/go-chaikin/chaikin/pkg/rendering"
	chaikintest "github.com/go-chaikin/chaikin/pkg/testing"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	a, err := app.New(app.Options{
		Width:        100,
		Height:       100,
		StepCount:    2,
		StepInterval: 100 * time.Millisecond,
	})
	require.NoError(t, err)
	return a
}

// snapshot copies the live pixel buffer Render returns.
func snapshot(a *app.App) []uint32 {
	pix := a.Render()
	out := make([]uint32, len(pix))
	copy(out, pix)
	return out
}

func TestNewRejectsNegativeStepCount(t *testing.T) {
	_, err := app.New(app.Options{StepCount: -1})
	require.Error(t, err)
}

func TestPointerPlacesPointsWhileIdle(t *testing.T) {
	withFakeClock(t)
	a := newTestApp(t)

	require.True(t, a.HandleEvent(app.PointerDown{X: 10, Y: 20}))
	require.True(t, a.HandleEvent(app.PointerDown{X: 30, Y: 40}))

	points, step, total := a.Frame()
	require.Len(t, points, 2)
	assert.Equal(t, 0, step)
	assert.Equal(t, 0, total)
	assert.Equal(t, 10.0, points[0].X)
	assert.Equal(t, 40.0, points[1].Y)
}

func TestDuplicateClickIgnored(t *testing.T) {
	withFakeClock(t)
	a := newTestApp(t)

	a.HandleEvent(app.PointerDown{X: 10, Y: 20})
	a.HandleEvent(app.PointerDown{X: 10, Y: 20})

	points, _, _ := a.Frame()
	assert.Len(t, points, 1)
}

func TestStartWithTooFewPointsShowsToast(t *testing.T) {
	withFakeClock(t)
	a := newTestApp(t)

	a.HandleEvent(app.PointerDown{X: 10, Y: 20})
	a.HandleEvent(app.PointerDown{X: 30, Y: 40})
	before := snapshot(a)

	a.HandleEvent(app.KeyPress{Key: app.KeyStart})
	assert.Equal(t, animation.StatusIdle, a.Status())

	after := snapshot(a)
	assert.NotEqual(t, before, after, "failed start should draw a toast")
}

func TestClickDismissesToast(t *testing.T) {
	withFakeClock(t)
	a := newTestApp(t)

	a.HandleEvent(app.PointerDown{X: 10, Y: 20})
	a.HandleEvent(app.PointerDown{X: 30, Y: 40})
	clean := snapshot(a)

	a.HandleEvent(app.KeyPress{Key: app.KeyStart})
	withToast := snapshot(a)
	require.NotEqual(t, clean, withToast)

	// A click on an existing point dismisses the toast without
	// landing a new one.
	a.HandleEvent(app.PointerDown{X: 10, Y: 20})
	assert.Equal(t, clean, snapshot(a))
}

func TestDismissKeyHidesToast(t *testing.T) {
	withFakeClock(t)
	a := newTestApp(t)

	a.HandleEvent(app.PointerDown{X: 10, Y: 20})
	clean := snapshot(a)
	a.HandleEvent(app.KeyPress{Key: app.KeyStart})
	require.NotEqual(t, clean, snapshot(a))

	a.HandleEvent(app.KeyPress{Key: app.KeyDismiss})
	assert.Equal(t, clean, snapshot(a))
}

func TestRenderDrawsControlPoints(t *testing.T) {
	withFakeClock(t)
	a := newTestApp(t)
	a.HandleEvent(app.PointerDown{X: 50, Y: 50})

	pix := a.Render()
	w, _ := a.Size()
	center := rendering.Color(pix[50*w+50])
	assert.Equal(t, rendering.RGB(0xFF, 0x55, 0x55), center)
}

func TestStartFreezesInputAndAdvances(t *testing.T) {
	withFakeClock(t)
	a := newTestApp(t)

	a.HandleEvent(app.PointerDown{X: 10, Y: 80})
	a.HandleEvent(app.PointerDown{X: 50, Y: 20})
	a.HandleEvent(app.PointerDown{X: 90, Y: 80})
	a.HandleEvent(app.KeyPress{Key: app.KeyStart})
	require.Equal(t, animation.StatusRunning, a.Status())

	// Clicks during playback are ignored.
	a.HandleEvent(app.PointerDown{X: 5, Y: 5})
	points, _, _ := a.Frame()
	assert.Len(t, points, 3)

	a.Advance(100 * time.Millisecond)
	_, step, total := a.Frame()
	assert.Equal(t, 1, step)
	assert.Equal(t, 2, total)

	a.Advance(100 * time.Millisecond)
	assert.Equal(t, animation.StatusFinished, a.Status())
}

func TestResetReturnsToStartupState(t *testing.T) {
	withFakeClock(t)
	a := newTestApp(t)

	a.HandleEvent(app.PointerDown{X: 10, Y: 80})
	a.HandleEvent(app.PointerDown{X: 50, Y: 20})
	a.HandleEvent(app.PointerDown{X: 90, Y: 80})
	a.HandleEvent(app.KeyPress{Key: app.KeyStart})
	a.Advance(100 * time.Millisecond)

	a.HandleEvent(app.KeyPress{Key: app.KeyReset})
	assert.Equal(t, animation.StatusIdle, a.Status())
	points, step, total := a.Frame()
	assert.Empty(t, points)
	assert.Equal(t, 0, step)
	assert.Equal(t, 0, total)
}

func TestQuitEvent(t *testing.T) {
	withFakeClock(t)
	a := newTestApp(t)
	assert.False(t, a.HandleEvent(app.KeyPress{Key: app.KeyQuit}))
}

// clockedSurface advances the fake clock on every presented frame so
// App.Run sees time passing, and closes itself after maxFrames.
type clockedSurface struct {
	*chaikintest.Recorder
	clk       *chaikintest.FakeClock
	perFrame  time.Duration
	frames    int
	maxFrames int
}

func (s *clockedSurface) Present(pix []uint32) error {
	s.frames++
	if s.frames >= s.maxFrames {
		s.Close()
	}
	if err := s.Recorder.Present(pix); err != nil {
		return err
	}
	s.clk.Advance(s.perFrame)
	return nil
}

func TestRunScriptedPlayback(t *testing.T) {
	clk := withFakeClock(t)
	a := newTestApp(t)

	surface := &clockedSurface{
		Recorder:  chaikintest.NewRecorder(100, 100),
		clk:       clk,
		perFrame:  50 * time.Millisecond,
		maxFrames: 20,
	}
	surface.Enqueue(app.PointerDown{X: 10, Y: 80})
	surface.Enqueue(app.PointerDown{X: 50, Y: 20})
	surface.Enqueue(app.PointerDown{X: 90, Y: 80})
	surface.Enqueue(app.KeyPress{Key: app.KeyStart})

	var visited []int
	defer a.AddStepListener(func(step int) {
		visited = append(visited, step)
	})()

	require.NoError(t, a.Run(surface))

	assert.Equal(t, animation.StatusFinished, a.Status())
	assert.Equal(t, []int{0, 1, 2}, visited)
	assert.Len(t, surface.Frames, 20)
}

func TestRunStopsOnQuit(t *testing.T) {
	clk := withFakeClock(t)
	a := newTestApp(t)

	surface := &clockedSurface{
		Recorder:  chaikintest.NewRecorder(100, 100),
		clk:       clk,
		perFrame:  time.Millisecond,
		maxFrames: 1000,
	}
	surface.Enqueue(app.PointerDown{X: 10, Y: 10})
	surface.Enqueue(app.KeyPress{Key: app.KeyQuit})

	require.NoError(t, a.Run(surface))
	assert.Less(t, len(surface.Frames), 5)
}
