package frogger

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// ErrDuplicateObstacle is returned when inserting an obstacle twice.
var ErrDuplicateObstacle = errors.New("obstacle already registered")

// ObstacleRegistry is the set of live obstacles.
//
// There is no shared traversal cursor: every enumeration works on its own
// snapshot taken under the lock, so the player's carried scan and the
// cleanup scan never interfere with each other.
type ObstacleRegistry struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*Obstacle
	next  uint64
}

// NewObstacleRegistry creates an empty registry.
func NewObstacleRegistry() *ObstacleRegistry {
	return &ObstacleRegistry{items: make(map[uuid.UUID]*Obstacle)}
}

// Insert adds o. Inserting the same identity twice fails.
func (r *ObstacleRegistry) Insert(o *Obstacle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[o.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateObstacle, o.ID)
	}
	r.next++
	o.seq = r.next
	r.items[o.ID] = o
	return nil
}

// Remove deletes the obstacle with the given identity and returns it.
// It reports false if it was not registered, so removal happens exactly once.
func (r *ObstacleRegistry) Remove(id uuid.UUID) (*Obstacle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.items[id]
	if ok {
		delete(r.items, id)
	}
	return o, ok
}

// Len returns the number of registered obstacles.
func (r *ObstacleRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Scan runs fn over a snapshot while still holding the registry lock, so no
// obstacle is inserted or removed during fn. Callers may take the player lock
// inside fn (registry before player), never the render lock.
func (r *ObstacleRegistry) Scan(fn func(obstacles []*Obstacle)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn(r.snapshotLocked())
}

// Dead returns the obstacles whose dead flag is set.
func (r *ObstacleRegistry) Dead() []*Obstacle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var dead []*Obstacle
	for _, o := range r.items {
		if o.Dead() {
			dead = append(dead, o)
		}
	}
	return dead
}

// Drain removes and returns every obstacle in insertion order.
func (r *ObstacleRegistry) Drain() []*Obstacle {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.snapshotLocked()
	slices.SortFunc(all, func(a, b *Obstacle) int { return cmp.Compare(a.seq, b.seq) })
	r.items = make(map[uuid.UUID]*Obstacle)
	return all
}

func (r *ObstacleRegistry) snapshotLocked() []*Obstacle {
	out := make([]*Obstacle, 0, len(r.items))
	for _, o := range r.items {
		out = append(out, o)
	}
	return out
}
