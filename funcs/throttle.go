package funcs

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/hasbyte1/go-underbar/sched"
)

// Policy decides what [Throttle] does with calls made during a cooldown.
type Policy int

const (
	// PolicyDrop discards calls made during the cooldown. It is the default.
	PolicyDrop Policy = iota

	// PolicyTrailing coalesces every call made during the cooldown into a
	// single trailing call, run with the most recent arguments when the
	// window closes. The trailing call opens the next window.
	PolicyTrailing
)

// String returns the policy name.
func (p Policy) String() string {
	if p == PolicyTrailing {
		return "trailing"
	}
	return "drop"
}

// ThrottleOption configures [Throttle].
type ThrottleOption func(*throttleConfig)

type throttleConfig struct {
	policy    Policy
	scheduler sched.Scheduler
	logger    *zap.Logger
}

func defaultThrottleConfig() throttleConfig {
	return throttleConfig{
		policy:    PolicyDrop,
		scheduler: sched.Default(),
		logger:    zap.NewNop(),
	}
}

// WithPolicy selects the cooldown policy.
func WithPolicy(p Policy) ThrottleOption {
	return func(c *throttleConfig) { c.policy = p }
}

// WithScheduler sets the clock windows are measured on and the scheduler
// trailing calls run on. The default is [sched.Default].
func WithScheduler(s sched.Scheduler) ThrottleOption {
	return func(c *throttleConfig) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// WithThrottleLogger logs dropped and coalesced calls at debug level.
func WithThrottleLogger(logger *zap.Logger) ThrottleOption {
	return func(c *throttleConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Throttle returns a function that calls fn at most once per wait window.
// The first call of a window runs fn immediately, on the caller's
// goroutine; what happens to calls during the cooldown depends on the
// [Policy]. A non-positive wait disables throttling.
func Throttle(fn func(), wait time.Duration, opts ...ThrottleOption) func() {
	t := Throttle1(func(struct{}) { fn() }, wait, opts...)
	return func() { t(struct{}{}) }
}

// Throttle1 is [Throttle] for functions of one argument. With
// [PolicyTrailing], the trailing call receives the argument of the last call
// made during the cooldown.
func Throttle1[A any](fn func(A), wait time.Duration, opts ...ThrottleOption) func(A) {
	cfg := defaultThrottleConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	t := &throttle[A]{
		fn:      fn,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Every(wait), 1),
	}
	return t.call
}

type throttle[A any] struct {
	fn      func(A)
	cfg     throttleConfig
	limiter *rate.Limiter

	mu      sync.Mutex
	pending bool
	args    A
}

func (t *throttle[A]) call(a A) {
	t.mu.Lock()
	if t.pending {
		t.args = a
		t.mu.Unlock()
		t.cfg.logger.Debug("throttled call coalesced")
		return
	}

	now := t.cfg.scheduler.Now()
	if t.limiter.AllowN(now, 1) {
		t.mu.Unlock()
		t.fn(a)
		return
	}

	if t.cfg.policy != PolicyTrailing {
		t.mu.Unlock()
		t.cfg.logger.Debug("throttled call dropped")
		return
	}

	// Reserving takes the next window's token now, so the trailing call
	// runs without a second check at the boundary.
	delay := t.limiter.ReserveN(now, 1).DelayFrom(now)
	t.pending = true
	t.args = a
	t.mu.Unlock()

	t.cfg.logger.Debug("throttled call deferred", zap.Duration("delay", delay))
	t.cfg.scheduler.Schedule(delay, t.trailing)
}

func (t *throttle[A]) trailing() {
	t.mu.Lock()
	a := t.args
	var zero A
	t.args = zero
	t.pending = false
	t.mu.Unlock()

	t.fn(a)
}
