package sched

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Loop is a cooperative, single-goroutine [Scheduler]. Tasks are queued by
// Schedule from any goroutine and executed one at a time by [Loop.Run], in
// due order, on the goroutine that called Run. Nothing runs while Run is not
// running.
type Loop struct {
	mu     sync.Mutex
	queue  queue
	wake   chan struct{}
	logger *zap.Logger
}

// NewLoop creates a Loop. Call [Loop.Run] to start executing tasks.
func NewLoop(opts ...Option) *Loop {
	o := applyOptions(opts)
	return &Loop{
		wake:   make(chan struct{}, 1),
		logger: o.logger,
	}
}

// Now returns the wall-clock time.
func (l *Loop) Now() time.Time { return time.Now() }

// Schedule queues task to run after d. It never blocks, and may be called
// from inside a running task.
func (l *Loop) Schedule(d time.Duration, task func()) {
	l.mu.Lock()
	l.queue.push(time.Now().Add(max(d, 0)), task)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Pending returns the number of tasks not yet run.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.queue.len()
}

// Run executes due tasks until ctx is done, then returns ctx.Err().
// Tasks still pending at that point stay queued for a later Run.
func (l *Loop) Run(ctx context.Context) error {
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		l.mu.Lock()
		next, ok := l.queue.peek()
		if ok && !next.due.After(time.Now()) {
			l.queue.pop()
			l.mu.Unlock()
			run(l.logger, next.task)
			continue
		}
		l.mu.Unlock()

		var fire <-chan time.Time
		if ok {
			timer.Reset(time.Until(next.due))
			fire = timer.C
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		case <-fire:
		}
		timer.Stop()
	}
}
