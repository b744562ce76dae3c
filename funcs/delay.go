package funcs

import (
	"slices"
	"time"

	"github.com/hasbyte1/go-underbar/sched"
)

// Delay schedules one call of fn no earlier than wait from now and returns
// immediately. A nil scheduler means [sched.Default].
func Delay(s sched.Scheduler, wait time.Duration, fn func()) {
	if s == nil {
		s = sched.Default()
	}
	s.Schedule(wait, fn)
}

// Delay1 is [Delay] for a function of one argument. a is captured now.
func Delay1[A any](s sched.Scheduler, wait time.Duration, fn func(A), a A) {
	Delay(s, wait, func() { fn(a) })
}

// DelayN is [Delay] for variadic functions. The arguments are copied now, so
// later changes to the caller's slice are not seen by the deferred call.
//
//	funcs.DelayN(clock, 500*time.Millisecond, log, "a", "b") // log("a", "b") in 500ms
func DelayN[A any](s sched.Scheduler, wait time.Duration, fn func(...A), args ...A) {
	captured := slices.Clone(args)
	Delay(s, wait, func() { fn(captured...) })
}
