package usecase

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer(t *testing.T) {
	t.Run("zero interval runs synchronously", func(t *testing.T) {
		d := NewDebouncer(0)

		ran := false
		d.Schedule(func() { ran = true })

		if !ran {
			t.Error("task did not run synchronously with zero interval")
		}
	})

	t.Run("trailing edge: rescheduling cancels the pending task", func(t *testing.T) {
		d := NewDebouncer(20 * time.Millisecond)
		defer d.Stop()

		var fired atomic.Int32
		for i := 0; i < 5; i++ {
			d.Schedule(func() { fired.Add(1) })
			time.Sleep(2 * time.Millisecond)
		}

		time.Sleep(100 * time.Millisecond)
		if got := fired.Load(); got != 1 {
			t.Errorf("fired %d times, want exactly 1 (trailing edge)", got)
		}
	})

	t.Run("stop cancels without running", func(t *testing.T) {
		d := NewDebouncer(10 * time.Millisecond)

		var fired atomic.Int32
		d.Schedule(func() { fired.Add(1) })
		d.Stop()

		time.Sleep(50 * time.Millisecond)
		if got := fired.Load(); got != 0 {
			t.Errorf("fired %d times after Stop, want 0", got)
		}
	})
}
