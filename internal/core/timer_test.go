package core

import (
	"testing"
	"time"
)

func TestEveryTicksOnFrameMultiples(t *testing.T) {
	fs := Every(5)
	var ticks []int
	for frame := 0; frame < 12; frame++ {
		if fs.ShouldStep() {
			ticks = append(ticks, frame)
		}
	}
	want := []int{0, 5, 10}
	if len(ticks) != len(want) {
		t.Fatalf("ticks %v, expected %v", ticks, want)
	}
	for i := range want {
		if ticks[i] != want[i] {
			t.Fatalf("ticks %v, expected %v", ticks, want)
		}
	}

	fs.Reset()
	if !fs.ShouldStep() {
		t.Fatal("first call after Reset should tick")
	}
}

func TestFixedStepPacesByClock(t *testing.T) {
	now := time.Unix(0, 0)
	fs := NewFixedStep(100 * time.Millisecond).WithClock(func() time.Time { return now })

	if !fs.ShouldStep() {
		t.Fatal("first call should tick")
	}
	now = now.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("ticked before a full step elapsed")
	}
	now = now.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not tick after a full step")
	}

	// A long stall is paid back one tick per call.
	now = now.Add(300 * time.Millisecond)
	n := 0
	for fs.ShouldStep() {
		n++
	}
	if n != 3 {
		t.Fatalf("caught up %d ticks, expected 3", n)
	}
}

func TestFixedStepDefaultsRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.step != time.Second/60 {
		t.Fatalf("step %v, expected 60 ticks per second", fs.step)
	}
	if Every(-2).every != 1 {
		t.Fatal("Every should clamp to 1")
	}
}
