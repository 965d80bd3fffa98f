package pool

import "testing"

func counter(ready *bool) func() (int, bool) {
	next := 0
	return func() (int, bool) {
		if !*ready {
			return 0, false
		}
		next++
		return next, true
	}
}

func TestAcquireWithoutPrototype(t *testing.T) {
	ready := false
	p := New(counter(&ready), nil)

	if _, ok := p.Acquire(); ok {
		t.Fatal("Acquire succeeded before prototype was ready")
	}
	if p.Created() != 0 {
		t.Fatalf("Created() = %d, want 0", p.Created())
	}

	ready = true
	v, ok := p.Acquire()
	if !ok || v != 1 {
		t.Fatalf("Acquire() = %d, %v", v, ok)
	}
}

func TestReleaseReuses(t *testing.T) {
	ready := true
	var resets []int
	p := New(counter(&ready), func(v int) { resets = append(resets, v) })

	a, _ := p.Acquire()
	b, _ := p.Acquire()
	p.Release(a)

	c, _ := p.Acquire()
	if c != a {
		t.Fatalf("Acquire after Release = %d, want reused %d", c, a)
	}
	if p.Created() != 2 {
		t.Fatalf("Created() = %d, want 2", p.Created())
	}
	if len(resets) != 1 || resets[0] != a {
		t.Fatalf("resets = %v", resets)
	}
	_ = b
}

func TestDoubleReleaseIgnored(t *testing.T) {
	ready := true
	p := New(counter(&ready), nil)

	v, _ := p.Acquire()
	if !p.Release(v) {
		t.Fatal("first Release rejected")
	}
	if p.Release(v) {
		t.Fatal("second Release accepted")
	}
	if p.Free() != 1 {
		t.Fatalf("Free() = %d, want 1", p.Free())
	}

	got, _ := p.Acquire()
	if got != v || p.Idle(v) {
		t.Fatalf("value %d should be live again, idle=%v", got, p.Idle(v))
	}
	if p.Free() != 0 {
		t.Fatalf("Free() = %d, want 0", p.Free())
	}
}
