// Package app wires the curve player, the framebuffer, and the toast
// into the classic poll input, update state, render, present frame
// loop. The window itself stays behind the [Surface] interface.
package app

import (
	stderrors "errors"
	"time"

	"github.com/go-chaikin/chaikin/pkg/animation"
	"github.com/go-chaikin/chaikin/pkg/curve"
	"github.com/go-chaikin/chaikin/pkg/errors"
	"github.com/go-chaikin/chaikin/pkg/rendering"
)

// insufficientPointsMessage is shown when playback is requested before
// enough control points have been placed.
const insufficientPointsMessage = "You did not select enough points"

// Toast box metrics, matching the bottom-centered layout.
const (
	toastHeight  = 40.0
	toastPadding = 10.0
	toastMargin  = 20.0
)

// Options configures an App. Zero values fall back to the defaults
// from DefaultOptions.
type Options struct {
	// Width and Height are the canvas dimensions in pixels.
	Width  int
	Height int

	// StepCount is the number of smoothing passes shown per playback.
	StepCount int
	// StepInterval is the cadence between generation advances.
	StepInterval time.Duration

	// PointRadius is the radius of the control point markers.
	PointRadius float64

	// Background fills the canvas each frame.
	Background rendering.Color
	// PointColor draws the control point markers.
	PointColor rendering.Color
	// LineColor draws the curve segments.
	LineColor rendering.Color
	// ToastBackground fills the toast box; its alpha byte controls how
	// much of the scene shows through.
	ToastBackground rendering.Color
	// ToastTextColor draws the toast message.
	ToastTextColor rendering.Color

	// ToastDuration overrides how long toasts stay visible.
	ToastDuration time.Duration
}

// DefaultOptions returns the stock configuration: an 800x600 canvas,
// seven smoothing steps, red point markers on teal lines, and a
// translucent grey toast.
func DefaultOptions() Options {
	return Options{
		Width:           800,
		Height:          600,
		StepCount:       animation.DefaultStepCount,
		StepInterval:    animation.DefaultStepInterval,
		PointRadius:     5,
		Background:      rendering.RGB(0x00, 0x00, 0x00),
		PointColor:      rendering.RGB(0xFF, 0x55, 0x55),
		LineColor:       rendering.RGB(0x55, 0xCC, 0xAA),
		ToastBackground: rendering.RGBA8(0x33, 0x33, 0x33, 0x80),
		ToastTextColor:  rendering.RGB(0xFF, 0xFF, 0xFF),
	}
}

// App owns one player, one framebuffer, and one toast, and advances
// them together once per frame. It is driven by a single goroutine.
type App struct {
	opts   Options
	player *animation.Player
	fb     *rendering.Framebuffer
	toast  Toast
}

// New creates an App with the given options. Zero-valued fields are
// filled from DefaultOptions; a negative step count is rejected.
func New(opts Options) (*App, error) {
	defaults := DefaultOptions()
	if opts.Width == 0 {
		opts.Width = defaults.Width
	}
	if opts.Height == 0 {
		opts.Height = defaults.Height
	}
	if opts.StepCount == 0 {
		opts.StepCount = defaults.StepCount
	}
	if opts.StepInterval == 0 {
		opts.StepInterval = defaults.StepInterval
	}
	if opts.PointRadius == 0 {
		opts.PointRadius = defaults.PointRadius
	}
	if opts.Background == 0 {
		opts.Background = defaults.Background
	}
	if opts.PointColor == 0 {
		opts.PointColor = defaults.PointColor
	}
	if opts.LineColor == 0 {
		opts.LineColor = defaults.LineColor
	}
	if opts.ToastBackground == 0 {
		opts.ToastBackground = defaults.ToastBackground
	}
	if opts.ToastTextColor == 0 {
		opts.ToastTextColor = defaults.ToastTextColor
	}

	player, err := animation.NewPlayer(opts.StepCount, opts.StepInterval)
	if err != nil {
		return nil, err
	}
	fb, err := rendering.NewFramebuffer(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}

	return &App{
		opts:   opts,
		player: player,
		fb:     fb,
		toast:  Toast{Duration: opts.ToastDuration},
	}, nil
}

// HandleEvent applies one input event. It returns false when the
// event asks the application to quit.
func (a *App) HandleEvent(ev Event) bool {
	switch e := ev.(type) {
	case PointerDown:
		a.handlePointer(e)
	case KeyPress:
		return a.handleKey(e.Key)
	}
	return true
}

func (a *App) handlePointer(e PointerDown) {
	// Any click hides an active toast, whether or not it lands a point.
	a.toast.Dismiss()

	if a.player.Status() != animation.StatusIdle {
		return
	}
	pt := curve.Pt(e.X, e.Y)
	if a.hasPoint(pt) {
		return
	}
	if err := a.player.AddPoint(pt); err != nil {
		a.reportIgnored("app.App.handlePointer", err)
	}
}

func (a *App) handleKey(key Key) bool {
	switch key {
	case KeyStart:
		if err := a.player.Start(); err != nil {
			if stderrors.Is(err, errors.ErrInsufficientPoints) {
				a.toast.Show(insufficientPointsMessage)
			} else {
				a.reportIgnored("app.App.handleKey", err)
			}
		}
	case KeyReset:
		a.Reset()
	case KeyDismiss:
		a.toast.Dismiss()
	case KeyQuit:
		return false
	}
	return true
}

// hasPoint reports whether a control point already sits at exactly
// this position. Repeated events from a held button would otherwise
// pile points onto one spot.
func (a *App) hasPoint(pt curve.Point) bool {
	for _, existing := range a.player.Points() {
		if existing == pt {
			return true
		}
	}
	return false
}

// reportIgnored routes a rejected transition to the error handler.
// The state machine has already left state untouched.
func (a *App) reportIgnored(op string, err error) {
	var appErr *errors.Error
	if stderrors.As(err, &appErr) {
		errors.Report(&errors.Error{Op: op, Kind: appErr.Kind, Err: err})
		return
	}
	errors.Report(&errors.Error{Op: op, Kind: errors.KindUnknown, Err: err})
}

// Advance feeds elapsed frame time to the player.
func (a *App) Advance(dt time.Duration) {
	a.player.Tick(dt)
}

// Reset returns the whole application to its startup state.
func (a *App) Reset() {
	a.player.Reset()
	a.toast = Toast{Duration: a.opts.ToastDuration}
}

// Size returns the canvas dimensions in pixels.
func (a *App) Size() (width, height int) {
	return a.opts.Width, a.opts.Height
}

// Status returns the player's playback status.
func (a *App) Status() animation.Status {
	return a.player.Status()
}

// Frame reports the current point sequence, step index, and total
// steps, exactly as the player would have them drawn.
func (a *App) Frame() (points []curve.Point, step, total int) {
	return a.player.Frame()
}

// AddStepListener forwards to the player; the callback fires whenever
// the displayed generation changes.
func (a *App) AddStepListener(fn func(step int)) func() {
	return a.player.AddStepListener(fn)
}

// Render draws the current frame and returns the pixel buffer to
// present: the current generation as a polyline, the control points as
// circles, and the toast if one is active.
func (a *App) Render() []uint32 {
	a.fb.Clear(a.opts.Background)

	points, _, _ := a.player.Frame()
	a.fb.Polyline(points, a.opts.LineColor)

	for _, pt := range a.player.Points() {
		a.fb.DrawCircleAA(pt.X, pt.Y, a.opts.PointRadius, a.opts.PointColor)
	}

	a.drawToast()
	return a.fb.Pix()
}

// drawToast lays out the toast bottom-centered: a translucent box
// sized to the message with the text vertically centered inside.
func (a *App) drawToast() {
	if !a.toast.Showing() {
		return
	}

	msg := a.toast.Message()
	textWidth, textHeight := rendering.MeasureText(msg)

	boxWidth := float64(textWidth) + 2*toastPadding
	box := rendering.RectFromLTWH(
		(float64(a.opts.Width)-boxWidth)/2,
		float64(a.opts.Height)-toastHeight-toastMargin,
		boxWidth,
		toastHeight,
	)
	a.fb.FillRect(box, a.opts.ToastBackground)

	textX := int(box.Left + toastPadding)
	textY := int(box.Top) + (int(toastHeight)-textHeight)/2
	a.fb.DrawText(textX, textY, msg, a.opts.ToastTextColor)
}

// Run drives the frame loop against the given surface until the
// window closes or a quit event arrives. Elapsed time comes from the
// animation clock; frame pacing belongs to the surface.
func (a *App) Run(s Surface) error {
	defer errors.Recover("app.App.Run")

	last := animation.Now()
	for !s.Closed() {
		for _, ev := range s.PollEvents() {
			if !a.HandleEvent(ev) {
				return nil
			}
		}

		now := animation.Now()
		a.Advance(now.Sub(last))
		last = now

		if err := s.Present(a.Render()); err != nil {
			return &errors.Error{Op: "app.App.Run", Kind: errors.KindRender, Err: err}
		}
	}
	return nil
}
