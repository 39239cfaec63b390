// Package animation drives the timed playback of a smoothed curve.
//
// A [Player] collects control points while idle, computes the full
// smoothing history when playback starts, and steps through the
// generations on a fixed cadence as the frame loop feeds it elapsed
// time. It is the single owner of the control points and the history;
// one goroutine drives it per frame, so it carries no locks.
package animation

import (
	"fmt"
	"time"

	"github.com/go-chaikin/chaikin/pkg/curve"
	"github.com/go-chaikin/chaikin/pkg/errors"
)

// Status represents the current playback state.
//
// The status follows this state machine:
//
//	         Start()            Tick() at last step
//	Idle ──────────────► Running ──────────────► Finished
//	  ▲                     │                        │
//	  │       Reset()       │         Reset()        │
//	  └─────────────────────┴────────────────────────┘
type Status int

const (
	// StatusIdle means the player is collecting control points.
	StatusIdle Status = iota
	// StatusRunning means the generation history is fixed and the
	// current step advances on the tick cadence.
	StatusRunning
	// StatusFinished means the last generation is showing and no
	// further automatic advancement occurs.
	StatusFinished
)

// String returns a human-readable representation of the playback status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusFinished:
		return "finished"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MinStartPoints is the number of control points required before
// playback may start. Fewer cannot form a curve worth smoothing.
const MinStartPoints = 3

// DefaultStepInterval is the cadence between generation advances when
// the caller does not configure one.
const DefaultStepInterval = 400 * time.Millisecond

// DefaultStepCount is the number of smoothing passes shown during one
// playback when the caller does not configure one.
const DefaultStepCount = 7

// Player owns the control points, the precomputed generation history,
// and the playback state machine.
//
// While idle, AddPoint appends control points. Start freezes the set,
// computes every generation once, and begins stepping. Tick advances
// the current step on the configured cadence. Frame reports what the
// rendering layer should draw this frame.
type Player struct {
	steps    int
	interval time.Duration

	status  Status
	points  []curve.Point
	history [][]curve.Point
	step    int
	acc     time.Duration

	stepListeners  map[int]func(step int)
	nextListenerID int
}

// NewPlayer creates a player that shows the given number of smoothing
// steps, advancing once per interval. A negative step count is a
// misconfiguration and fails immediately; a non-positive interval
// falls back to DefaultStepInterval.
func NewPlayer(steps int, interval time.Duration) (*Player, error) {
	if steps < 0 {
		return nil, &errors.Error{
			Op:   "animation.NewPlayer",
			Kind: errors.KindInvalidArgument,
			Err:  fmt.Errorf("negative step count %d", steps),
		}
	}
	if interval <= 0 {
		interval = DefaultStepInterval
	}
	return &Player{
		steps:         steps,
		interval:      interval,
		status:        StatusIdle,
		stepListeners: make(map[int]func(int)),
	}, nil
}

// AddPoint appends a control point. Valid only while idle; in any
// other state the point is dropped and ErrInvalidState is returned
// for the caller to ignore or report.
func (p *Player) AddPoint(pt curve.Point) error {
	if p.status != StatusIdle {
		return errors.ErrInvalidState
	}
	p.points = append(p.points, pt)
	return nil
}

// Start freezes the control points, computes the full generation
// history, and transitions to running at step 0.
//
// Fails with ErrInsufficientPoints when fewer than MinStartPoints
// control points have been placed; the player stays idle.
func (p *Player) Start() error {
	if p.status != StatusIdle {
		return errors.ErrInvalidState
	}
	if len(p.points) < MinStartPoints {
		return errors.ErrInsufficientPoints
	}

	history, err := curve.History(p.points, p.steps)
	if err != nil {
		return err
	}
	p.history = history
	p.step = 0
	p.acc = 0
	p.status = StatusRunning
	p.notifyStep()
	return nil
}

// Tick feeds elapsed frame time to the player. While running, time
// accumulates against the step interval; each time the interval is
// reached the current step advances by one and the accumulator resets.
// Reaching the last step transitions to finished. Tick is a no-op in
// any other state.
func (p *Player) Tick(elapsed time.Duration) {
	if p.status != StatusRunning {
		return
	}

	last := len(p.history) - 1
	if p.step >= last {
		p.acc = 0
		p.status = StatusFinished
		return
	}

	p.acc += elapsed
	for p.acc >= p.interval {
		p.acc -= p.interval
		p.step++
		p.notifyStep()
		if p.step >= last {
			p.acc = 0
			p.status = StatusFinished
			return
		}
	}
}

// Reset returns the player to idle from any state, discarding the
// control points and the generation history.
func (p *Player) Reset() {
	p.status = StatusIdle
	p.points = nil
	p.history = nil
	p.step = 0
	p.acc = 0
}

// Frame reports what the rendering layer should draw this frame: the
// current point sequence, the current step index, and the total number
// of steps. While idle it returns the raw control points with step 0
// of 0. The returned slice must not be mutated.
func (p *Player) Frame() (points []curve.Point, step, total int) {
	if p.status == StatusIdle {
		return p.points, 0, 0
	}
	return p.history[p.step], p.step, len(p.history) - 1
}

// Status returns the current playback status.
func (p *Player) Status() Status {
	return p.status
}

// Points returns a copy of the control points placed so far.
func (p *Player) Points() []curve.Point {
	out := make([]curve.Point, len(p.points))
	copy(out, p.points)
	return out
}

// StepInterval returns the cadence between generation advances.
func (p *Player) StepInterval() time.Duration {
	return p.interval
}

// AddStepListener adds a callback that fires whenever the current step
// changes. Returns an unsubscribe function.
func (p *Player) AddStepListener(fn func(step int)) func() {
	id := p.nextListenerID
	p.nextListenerID++
	p.stepListeners[id] = fn
	return func() {
		delete(p.stepListeners, id)
	}
}

func (p *Player) notifyStep() {
	for _, listener := range p.stepListeners {
		listener(p.step)
	}
}
