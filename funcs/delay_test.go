package funcs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-underbar/funcs"
	"github.com/hasbyte1/go-underbar/sched"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestDelayRunsNoEarlierThanWait(t *testing.T) {
	clock := sched.NewVirtual(epoch)
	var at time.Time
	funcs.Delay(clock, 500*time.Millisecond, func() { at = clock.Now() })

	assert.Zero(t, clock.Advance(499*time.Millisecond))
	assert.True(t, at.IsZero(), "must not run early")

	assert.Equal(t, 1, clock.Advance(time.Millisecond))
	assert.Equal(t, epoch.Add(500*time.Millisecond), at)
}

func TestDelayDoesNotBlockCaller(t *testing.T) {
	clock := sched.NewVirtual(epoch)
	ran := false
	funcs.Delay(clock, time.Hour, func() { ran = true })
	assert.False(t, ran)
	assert.Equal(t, 1, clock.Pending())
}

func TestDelay1AndDelayNPassArguments(t *testing.T) {
	clock := sched.NewVirtual(epoch)
	var got []string

	funcs.Delay1(clock, 20*time.Millisecond, func(s string) { got = append(got, s) }, "one")

	args := []string{"a", "b"}
	funcs.DelayN(clock, 10*time.Millisecond, func(parts ...string) { got = append(got, parts...) }, args...)
	args[0] = "mutated"

	clock.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "one"}, got)
}

func TestDelayRunsEachCallOnce(t *testing.T) {
	clock := sched.NewVirtual(epoch)
	calls := 0
	for i := 0; i < 3; i++ {
		funcs.Delay(clock, 10*time.Millisecond, func() { calls++ })
	}
	clock.Advance(time.Second)
	clock.Advance(time.Second)
	assert.Equal(t, 3, calls)
}

func TestDelayNilSchedulerUsesDefault(t *testing.T) {
	done := make(chan struct{})
	funcs.Delay(nil, time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("delayed call never ran")
	}
}
