// Package sched provides the scheduling capability used by the deferred
// function decorators in package funcs.
//
// Decorators never reach for a process-wide timer. They are handed a
// [Scheduler], which tells the time and runs a task no earlier than a given
// delay from now:
//
//	type Scheduler interface {
//	    Now() time.Time
//	    Schedule(d time.Duration, task func())
//	}
//
// Three implementations are provided:
//
//   - [Timer] runs each task on a runtime timer goroutine ([time.AfterFunc]).
//     It is the default when no scheduler is configured.
//   - [Loop] is a cooperative event loop. Tasks run one at a time, in due
//     order, on the goroutine that calls [Loop.Run].
//   - [Virtual] is a manual clock for tests. Time moves only when
//     [Virtual.Advance] is called, and due tasks run synchronously inside it.
//
// Scheduled tasks cannot be cancelled. A task that panics is recovered and
// logged through the scheduler's zap logger; the scheduler keeps running.
package sched
