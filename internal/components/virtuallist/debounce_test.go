package virtuallist

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerCoalescesBurst(t *testing.T) {
	var calls int32
	d := NewDebouncer(20*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
	})

	for i := 0; i < 10; i++ {
		d.Trigger()
		time.Sleep(2 * time.Millisecond)
	}

	assert.True(t, d.IsPending())
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 1
	}, time.Second, 5*time.Millisecond)
	assert.False(t, d.IsPending())

	// No second trailing call sneaks in later
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDebouncerTrailingEdgeOnly(t *testing.T) {
	var calls int32
	d := NewDebouncer(15*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
	})

	d.Trigger()
	// The callback does not run on the leading edge
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestDebouncerCancel(t *testing.T) {
	var calls int32
	d := NewDebouncer(10*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
	})

	d.Trigger()
	d.Cancel()

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	assert.False(t, d.IsPending())
}

func TestDebouncerFlush(t *testing.T) {
	var calls int32
	d := NewDebouncer(time.Hour, func() {
		atomic.AddInt32(&calls, 1)
	})

	// Flush with nothing pending is a no-op
	d.Flush()
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))

	d.Trigger()
	d.Flush()
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.False(t, d.IsPending())
}

func TestDebouncerRetrigger(t *testing.T) {
	var calls int32
	d := NewDebouncer(10*time.Millisecond, func() {
		atomic.AddInt32(&calls, 1)
	})

	d.Trigger()
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 1
	}, time.Second, 2*time.Millisecond)

	// The debouncer is reusable after firing
	d.Trigger()
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 2
	}, time.Second, 2*time.Millisecond)
}

func TestDebouncerSetDelay(t *testing.T) {
	var calls int32
	d := NewDebouncer(time.Hour, func() {
		atomic.AddInt32(&calls, 1)
	})

	d.SetDelay(5 * time.Millisecond)
	d.Trigger()

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 1
	}, time.Second, 2*time.Millisecond)
}
