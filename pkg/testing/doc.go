// Package testing provides deterministic test doubles for the
// visualizer: a controllable clock for the animation package and a
// headless recording surface for driving the app without a window.
//
// Import it with an alias to avoid clashing with the standard library:
//
//	chaikintest "github.com/go-chaikin/chaikin/pkg/testing"
package testing
