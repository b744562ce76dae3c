package sched

import (
	"time"

	"go.uber.org/zap"
)

// Timer schedules tasks on runtime timers. Each task runs on its own
// goroutine, so tasks may run concurrently with the caller and with each
// other; callers that share state with tasks must synchronise it.
type Timer struct {
	logger *zap.Logger
}

// NewTimer creates a Timer scheduler.
func NewTimer(opts ...Option) *Timer {
	o := applyOptions(opts)
	return &Timer{logger: o.logger}
}

// Now returns the wall-clock time.
func (t *Timer) Now() time.Time { return time.Now() }

// Schedule runs task on a timer goroutine after d.
func (t *Timer) Schedule(d time.Duration, task func()) {
	time.AfterFunc(max(d, 0), func() {
		run(t.logger, task)
	})
}
