// Package curve implements Chaikin's corner-cutting algorithm for
// iteratively smoothing an open polyline.
//
// Each smoothing pass replaces every segment (P, Q) with the two points
// at 1/4 and 3/4 along it. Corners are cut away and the polyline
// converges toward a quadratic B-spline as passes accumulate.
//
// All functions are pure: they never mutate their input and return
// freshly allocated slices.
package curve

import (
	"fmt"

	"github.com/go-chaikin/chaikin/pkg/errors"
)

// Corner-cut interpolation ratios along each segment.
const (
	qRatio = 0.25
	rRatio = 0.75
)

// SmoothOnce applies a single Chaikin pass to an open polyline.
//
// For every pair of consecutive points (P, Q) the output receives
// P.Lerp(Q, 0.25) followed by P.Lerp(Q, 0.75), in traversal order.
// No wrap segment is added between the last and first point, so an
// input of M >= 2 points yields exactly 2*(M-1) points. Inputs with
// fewer than two points have no segments and are returned as a copy.
func SmoothOnce(points []Point) []Point {
	if len(points) < 2 {
		out := make([]Point, len(points))
		copy(out, points)
		return out
	}

	out := make([]Point, 0, 2*(len(points)-1))
	for i := 0; i < len(points)-1; i++ {
		p, q := points[i], points[i+1]
		out = append(out, p.Lerp(q, qRatio), p.Lerp(q, rRatio))
	}
	return out
}

// History returns the full smoothing history for the given control
// points: steps+1 generations, where generation 0 is a copy of the
// input and generation i is SmoothOnce applied to generation i-1.
//
// A negative step count is a caller bug and fails immediately.
func History(points []Point, steps int) ([][]Point, error) {
	if steps < 0 {
		return nil, &errors.Error{
			Op:   "curve.History",
			Kind: errors.KindInvalidArgument,
			Err:  fmt.Errorf("negative step count %d", steps),
		}
	}

	history := make([][]Point, 0, steps+1)
	first := make([]Point, len(points))
	copy(first, points)
	history = append(history, first)

	for i := 1; i <= steps; i++ {
		history = append(history, SmoothOnce(history[i-1]))
	}
	return history, nil
}
