// Package pool keeps timers for reuse by motors that wait on every scan step.
package pool

import (
	"sync"
	"time"
)

var timers sync.Pool

// Timer returns a timer that fires after d, taken from the pool when one is available.
//
// Hand the timer back with Release once nothing reads its channel.
func Timer(d time.Duration) *time.Timer {
	if t, ok := timers.Get().(*time.Timer); ok {
		t.Reset(d)
		return t
	}

	return time.NewTimer(d)
}

// Release stops t and puts it back into the pool. A pending expiry of t is discarded.
//
// t must not be used after Release.
func Release(t *time.Timer) {
	t.Stop()
	timers.Put(t)
}
