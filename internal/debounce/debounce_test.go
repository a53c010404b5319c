package debounce

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_OnlyTrailingEventFires(t *testing.T) {
	d := New(100 * time.Millisecond)

	var calls int64
	var mu sync.Mutex
	var got string

	// Three keystrokes inside one delay window; only the last commits.
	for _, input := range []string{"l", "la", "lap"} {
		input := input
		d.Do(func() {
			atomic.AddInt64(&calls, 1)
			mu.Lock()
			got = input
			mu.Unlock()
		})
		time.Sleep(20 * time.Millisecond)
	}

	time.Sleep(200 * time.Millisecond)

	if n := atomic.LoadInt64(&calls); n != 1 {
		t.Fatalf("calls = %d, want exactly 1", n)
	}
	mu.Lock()
	defer mu.Unlock()
	if got != "lap" {
		t.Errorf("committed value = %q, want the last input %q", got, "lap")
	}
}

func TestDebouncer_SeparatedEventsBothFire(t *testing.T) {
	d := New(30 * time.Millisecond)

	var calls int64
	d.Do(func() { atomic.AddInt64(&calls, 1) })
	time.Sleep(60 * time.Millisecond)
	d.Do(func() { atomic.AddInt64(&calls, 1) })
	time.Sleep(60 * time.Millisecond)

	if n := atomic.LoadInt64(&calls); n != 2 {
		t.Errorf("calls = %d, want 2", n)
	}
}

func TestDebouncer_Stop(t *testing.T) {
	d := New(20 * time.Millisecond)

	var calls int64
	d.Do(func() { atomic.AddInt64(&calls, 1) })
	d.Stop()

	time.Sleep(50 * time.Millisecond)

	if n := atomic.LoadInt64(&calls); n != 0 {
		t.Errorf("calls = %d, want 0 after Stop", n)
	}
}
