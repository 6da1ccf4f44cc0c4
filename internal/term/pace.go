package term

import (
	"time"

	"life-sandbox/internal/core"
)

// pace reads frame timestamps until frames closes or done fires and calls
// post for every frame on which step is due. The frame times drive step's
// clock, so a stalled reader catches up one generation per frame.
func pace(done <-chan struct{}, frames <-chan time.Time, step *core.FixedStep, post func()) {
	var now time.Time
	step.WithClock(func() time.Time { return now })
	for {
		select {
		case <-done:
			return
		case t, ok := <-frames:
			if !ok {
				return
			}
			now = t
			if step.ShouldStep() {
				post()
			}
		}
	}
}
