// Package funcs provides function decorators: wrappers that take a function
// and return a new one with altered calling behaviour.
//
// Decorators never modify the function they wrap. Each call to a decorator
// returns a fresh function owning its own private state, so decorating the
// same function twice yields two independent instances:
//
//	init := funcs.Once(loadConfig)     // runs loadConfig on the first call only
//	fib := funcs.Memoize(slowFib)      // caches results per argument
//	funcs.Delay(clock, time.Second, f) // runs f one second from now
//	save := funcs.Throttle(flush, time.Second)
//
// # Scheduling
//
// [Delay] and [Throttle] never block the caller. They defer work through a
// [sched.Scheduler]; pass [sched.NewVirtual] in tests for a deterministic
// clock. Scheduled work cannot be cancelled.
//
// # Concurrency
//
// [Once] is safe for concurrent use. [Throttle] guards its own state, since
// its trailing call may run on a scheduler goroutine. [Memoize] with the
// default unbounded cache is not: callers that share a memoized function
// across goroutines must synchronise it, or use [WithCapacity], whose LRU
// cache is internally locked.
package funcs
