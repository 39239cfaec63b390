package app_test

import (
	"testing"
	"time"

	"github.com/go-chaikin/chaikin/pkg/animation"
	"github.com/go-chaikin/chaikin/pkg/app"
	chaikintest "github.com/go-chaikin/chaikin/pkg/testing"
)

func withFakeClock(t *testing.T) *chaikintest.FakeClock {
	t.Helper()
	clk := chaikintest.NewFakeClock()
	prev := animation.SetClock(clk)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clk
}

func TestToastLifecycle(t *testing.T) {
	clk := withFakeClock(t)

	var toast app.Toast
	if toast.Showing() {
		t.Error("new toast already showing")
	}

	toast.Show("You did not select enough points")
	if !toast.Showing() {
		t.Fatal("toast not showing after Show")
	}
	if toast.Message() != "You did not select enough points" {
		t.Errorf("got message %q", toast.Message())
	}

	clk.Advance(app.DefaultToastDuration - time.Second)
	if !toast.Showing() {
		t.Error("toast expired early")
	}

	clk.Advance(2 * time.Second)
	if toast.Showing() {
		t.Error("toast survived past its duration")
	}
}

func TestToastDismiss(t *testing.T) {
	withFakeClock(t)

	var toast app.Toast
	toast.Show("message")
	toast.Dismiss()
	if toast.Showing() {
		t.Error("toast showing after dismiss")
	}
}

func TestToastCustomDuration(t *testing.T) {
	clk := withFakeClock(t)

	toast := app.Toast{Duration: time.Second}
	toast.Show("short lived")
	clk.Advance(500 * time.Millisecond)
	if !toast.Showing() {
		t.Error("toast expired before its custom duration")
	}
	clk.Advance(600 * time.Millisecond)
	if toast.Showing() {
		t.Error("toast ignored its custom duration")
	}
}

func TestToastShowRestartsTimer(t *testing.T) {
	clk := withFakeClock(t)

	toast := app.Toast{Duration: time.Second}
	toast.Show("first")
	clk.Advance(900 * time.Millisecond)
	toast.Show("second")
	clk.Advance(900 * time.Millisecond)
	if !toast.Showing() {
		t.Error("re-showing did not restart the timer")
	}
}
