package watch

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer(t *testing.T) {
	t.Run("Coalesces Bursts", func(t *testing.T) {
		d := newDebouncer(30 * time.Millisecond)
		var fired int32

		for i := 0; i < 10; i++ {
			d.add("a.md", func() { atomic.AddInt32(&fired, 1) })
		}

		time.Sleep(150 * time.Millisecond)
		if got := atomic.LoadInt32(&fired); got != 1 {
			t.Errorf("Expected one fire for a burst, got %d", got)
		}
	})

	t.Run("Separate Keys Fire Separately", func(t *testing.T) {
		d := newDebouncer(20 * time.Millisecond)
		var fired int32

		d.add("a.md", func() { atomic.AddInt32(&fired, 1) })
		d.add("b.md", func() { atomic.AddInt32(&fired, 1) })

		time.Sleep(120 * time.Millisecond)
		if got := atomic.LoadInt32(&fired); got != 2 {
			t.Errorf("Expected two fires, got %d", got)
		}
	})

	t.Run("Stopped Debouncer Drops Events", func(t *testing.T) {
		d := newDebouncer(20 * time.Millisecond)
		d.stopAndWait(time.Second)

		var fired int32
		d.add("a.md", func() { atomic.AddInt32(&fired, 1) })

		time.Sleep(100 * time.Millisecond)
		if got := atomic.LoadInt32(&fired); got != 0 {
			t.Errorf("Stopped debouncer fired %d times", got)
		}
	})

	t.Run("StopAndWait Waits For Inflight Timers", func(t *testing.T) {
		d := newDebouncer(20 * time.Millisecond)
		var fired int32
		d.add("a.md", func() { atomic.AddInt32(&fired, 1) })

		d.stopAndWait(time.Second)
		// The pending timer either fired before stop or was seen stopped;
		// in both cases no callback may run after stopAndWait returns.
		before := atomic.LoadInt32(&fired)
		time.Sleep(100 * time.Millisecond)
		if after := atomic.LoadInt32(&fired); after != before {
			t.Errorf("Callback ran after stopAndWait: %d -> %d", before, after)
		}
	})
}
