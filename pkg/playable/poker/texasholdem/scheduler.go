package texasholdem

import "time"

// Scheduler runs the next hand after a delay
// The owner of the table is expected to call StartNewRound when the task fires
type Scheduler interface {
	// ScheduleNextHand replaces any pending task with one that fires after delay
	ScheduleNextHand(delay time.Duration)
	// CancelNextHand drops the pending task, if any
	CancelNextHand()
}
