package frogger

import "sync"

// Guarded keeps a value together with the mutex that protects it.
// The value is only reachable inside With, so it cannot be touched unlocked.
type Guarded[T any] struct {
	mu sync.Mutex
	v  T
}

// NewGuarded wraps v.
func NewGuarded[T any](v T) *Guarded[T] {
	return &Guarded[T]{v: v}
}

// With runs fn with the lock held. fn must not block or sleep.
func (g *Guarded[T]) With(fn func(v *T)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(&g.v)
}
