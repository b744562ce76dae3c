package funcs

import "sync"

// Once returns a function that calls fn on its first invocation and returns
// that first result on every invocation after it.
func Once[R any](fn func() R) func() R {
	return sync.OnceValue(fn)
}

// Once1 is [Once] for functions of one argument. The first caller's argument
// is used; arguments of later calls are ignored.
//
//	greet := funcs.Once1(func(name string) string { return "hello " + name })
//	greet("ann") // → "hello ann"
//	greet("bob") // → "hello ann"
func Once1[A, R any](fn func(A) R) func(A) R {
	var (
		once   sync.Once
		result R
	)
	return func(a A) R {
		once.Do(func() { result = fn(a) })
		return result
	}
}

// OnceN is [Once] for variadic functions.
func OnceN[A, R any](fn func(...A) R) func(...A) R {
	var (
		once   sync.Once
		result R
	)
	return func(args ...A) R {
		once.Do(func() { result = fn(args...) })
		return result
	}
}
