package debounce

import (
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) record(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.values))
	copy(out, r.values)
	return out
}

func TestDebouncer_BurstCollapsesToLastValue(t *testing.T) {
	rec := &recorder{}
	d := New(50*time.Millisecond, rec.record)
	defer d.Stop()

	d.Set("m")
	d.Set("mi")
	d.Set("mil")
	d.Set("milk")

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(rec.snapshot()) > 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	got := rec.snapshot()
	if len(got) != 1 {
		t.Fatalf("expected exactly one delivery, got %d: %v", len(got), got)
	}
	if got[0] != "milk" {
		t.Errorf("expected last value %q, got %q", "milk", got[0])
	}
}

func TestDebouncer_SetRestartsWait(t *testing.T) {
	rec := &recorder{}
	d := New(80*time.Millisecond, rec.record)
	defer d.Stop()

	d.Set("first")
	time.Sleep(50 * time.Millisecond)
	d.Set("second")
	time.Sleep(50 * time.Millisecond)

	// 100ms elapsed but neither value has been quiet for the full delay.
	if got := rec.snapshot(); len(got) != 0 {
		t.Fatalf("expected no delivery yet, got %v", got)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(rec.snapshot()) > 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	got := rec.snapshot()
	if len(got) != 1 || got[0] != "second" {
		t.Errorf("expected single delivery of %q, got %v", "second", got)
	}
}

func TestDebouncer_StopCancelsPendingDelivery(t *testing.T) {
	rec := &recorder{}
	d := New(30*time.Millisecond, rec.record)

	d.Set("doomed")
	d.Stop()

	time.Sleep(100 * time.Millisecond)

	if got := rec.snapshot(); len(got) != 0 {
		t.Errorf("expected no delivery after Stop, got %v", got)
	}
}

func TestDebouncer_SetAfterStopIsNoop(t *testing.T) {
	rec := &recorder{}
	d := New(10*time.Millisecond, rec.record)
	d.Stop()

	d.Set("late")
	time.Sleep(50 * time.Millisecond)

	if got := rec.snapshot(); len(got) != 0 {
		t.Errorf("expected no delivery after Stop, got %v", got)
	}
}

func TestDebouncer_FlushDeliversImmediately(t *testing.T) {
	rec := &recorder{}
	d := New(time.Hour, rec.record)
	defer d.Stop()

	d.Set("pending")
	d.Flush("now")

	got := rec.snapshot()
	if len(got) != 1 || got[0] != "now" {
		t.Fatalf("expected immediate delivery of %q, got %v", "now", got)
	}

	time.Sleep(50 * time.Millisecond)
	if got := rec.snapshot(); len(got) != 1 {
		t.Errorf("pending timer should have been cancelled, got %v", got)
	}
}
