// Package pool caches reusable instances so hot spawn paths do not allocate
// a fresh renderable every time.
package pool

// Pool keeps released values for reuse. A value handed out by Acquire is
// owned by the caller until it is passed back to Release; a released value is
// held exactly once no matter how many times Release is called with it.
type Pool[T comparable] struct {
	create  func() (T, bool)
	reset   func(T)
	free    []T
	idle    map[T]struct{}
	created int
}

// New builds a pool. create makes a fresh value and reports false when no
// prototype is available yet. reset runs on every successful Release and may
// be nil.
func New[T comparable](create func() (T, bool), reset func(T)) *Pool[T] {
	return &Pool[T]{
		create: create,
		reset:  reset,
		idle:   make(map[T]struct{}),
	}
}

// Acquire returns a pooled value, or a new one when the free list is empty.
// The second result is false when nothing could be produced; callers skip the
// spawn for this tick.
func (p *Pool[T]) Acquire() (T, bool) {
	if n := len(p.free); n > 0 {
		v := p.free[n-1]
		var zero T
		p.free[n-1] = zero
		p.free = p.free[:n-1]
		delete(p.idle, v)
		return v, true
	}

	v, ok := p.create()
	if !ok {
		var zero T
		return zero, false
	}
	p.created++
	return v, true
}

// Release hands v back for reuse. It returns false if v was already idle.
func (p *Pool[T]) Release(v T) bool {
	if _, dup := p.idle[v]; dup {
		return false
	}
	if p.reset != nil {
		p.reset(v)
	}
	p.idle[v] = struct{}{}
	p.free = append(p.free, v)
	return true
}

// Idle reports whether v is currently sitting in the free list.
func (p *Pool[T]) Idle(v T) bool {
	_, ok := p.idle[v]
	return ok
}

// Free is the number of values waiting for reuse.
func (p *Pool[T]) Free() int {
	return len(p.free)
}

// Created is the number of values the pool ever had to create.
func (p *Pool[T]) Created() int {
	return p.created
}
