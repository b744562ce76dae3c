package sched

import (
	"time"

	"go.uber.org/zap"
)

// Scheduler defers work without blocking the caller.
type Scheduler interface {
	// Now returns the scheduler's current time.
	Now() time.Time

	// Schedule arranges for task to run once, no earlier than d from Now.
	// A non-positive d means "as soon as possible".
	Schedule(d time.Duration, task func())
}

// Option configures a scheduler.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

func defaultOptions() options {
	return options{logger: zap.NewNop()}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger used to report panicking tasks.
// A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

var defaultScheduler Scheduler = NewTimer()

// Default returns the package-wide [Timer] used when callers do not supply a
// scheduler.
func Default() Scheduler { return defaultScheduler }

// run executes task, recovering and logging a panic.
func run(logger *zap.Logger, task func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("scheduled task panicked",
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
		}
	}()
	task()
}
