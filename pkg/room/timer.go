package room

import (
	"time"
)

// nextHandTimer starts the next hand after a delay
// Every schedule or cancel bumps the generation, a firing that does not match
// the current generation is stale and gets dropped
type nextHandTimer struct {
	timer      *time.Timer
	generation uint64
	fire       func(generation uint64)
}

func newNextHandTimer(fire func(generation uint64)) *nextHandTimer {
	return &nextHandTimer{fire: fire}
}

// ScheduleNextHand replaces any pending timer
func (n *nextHandTimer) ScheduleNextHand(delay time.Duration) {
	n.CancelNextHand()

	gen := n.generation
	n.timer = time.AfterFunc(delay, func() {
		n.fire(gen)
	})
}

// CancelNextHand stops the pending timer, if any
func (n *nextHandTimer) CancelNextHand() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}

	n.generation++
}

// claim reports whether generation is still current and marks it as used
func (n *nextHandTimer) claim(generation uint64) bool {
	if generation != n.generation || n.timer == nil {
		return false
	}

	n.timer = nil
	return true
}
