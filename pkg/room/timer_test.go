package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextHandTimer(t *testing.T) {
	a := assert.New(t)

	fired := make(chan uint64, 4)
	n := newNextHandTimer(func(generation uint64) {
		fired <- generation
	})

	n.ScheduleNextHand(time.Millisecond)
	var gen uint64
	select {
	case gen = <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}

	a.True(n.claim(gen))
	a.False(n.claim(gen), "a firing can only be used once")
}

func TestNextHandTimer_reschedule(t *testing.T) {
	a := assert.New(t)

	fired := make(chan uint64, 4)
	n := newNextHandTimer(func(generation uint64) {
		fired <- generation
	})

	n.ScheduleNextHand(time.Hour)
	first := n.generation
	n.ScheduleNextHand(time.Millisecond)
	a.NotEqual(first, n.generation)
	a.False(n.claim(first), "the replaced timer is stale")

	gen := <-fired
	a.True(n.claim(gen))
}

func TestNextHandTimer_cancel(t *testing.T) {
	a := assert.New(t)

	n := newNextHandTimer(func(uint64) {})
	n.ScheduleNextHand(time.Hour)
	gen := n.generation

	n.CancelNextHand()
	a.Nil(n.timer)
	a.False(n.claim(gen))

	// cancelling with nothing pending is fine
	n.CancelNextHand()
}
