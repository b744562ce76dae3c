package sched

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Virtual is a deterministic [Scheduler] driven by hand. Time stands still
// until [Virtual.Advance] moves it; due tasks then run on the caller's
// goroutine, in due order.
//
//	clock := sched.NewVirtual(time.Time{}) // starts at the Unix epoch
//	clock.Schedule(100*time.Millisecond, func() { fmt.Println("tick") })
//	clock.Advance(99 * time.Millisecond) // nothing
//	clock.Advance(time.Millisecond)      // prints "tick"
type Virtual struct {
	mu     sync.Mutex
	now    time.Time
	queue  queue
	logger *zap.Logger
}

// NewVirtual creates a Virtual clock reading start. A zero start reads as
// the Unix epoch.
func NewVirtual(start time.Time, opts ...Option) *Virtual {
	o := applyOptions(opts)
	if start.IsZero() {
		start = time.Unix(0, 0).UTC()
	}
	return &Virtual{now: start, logger: o.logger}
}

// Now returns the virtual time.
func (v *Virtual) Now() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

// Schedule queues task to run once the clock reaches Now()+d.
func (v *Virtual) Schedule(d time.Duration, task func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.queue.push(v.now.Add(max(d, 0)), task)
}

// Advance moves the clock forward by d, running every task that falls due
// on the way. While a task runs, Now reports that task's due time. Tasks
// scheduled by running tasks are run too if they fall due before the
// target time. Advance returns the number of tasks run.
func (v *Virtual) Advance(d time.Duration) int {
	v.mu.Lock()
	target := v.now.Add(max(d, 0))
	ran := 0
	for {
		next, ok := v.queue.peek()
		if !ok || next.due.After(target) {
			break
		}
		v.queue.pop()
		v.now = next.due
		v.mu.Unlock()

		run(v.logger, next.task)
		ran++

		v.mu.Lock()
	}
	v.now = target
	v.mu.Unlock()
	return ran
}

// Pending returns the number of tasks not yet run.
func (v *Virtual) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.queue.len()
}
