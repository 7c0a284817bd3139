package hakoniwa

import "fmt"

// entityRegistry tracks the set of live entities and the next identifier to
// issue. Identifiers only increase; a destroyed entity's ID is never handed
// out again, so the capacity bounds the total number of creations per world
// (Clear resets the counter).
type entityRegistry struct {
	alive    map[Entity]struct{}
	nextID   Entity
	capacity int
}

func newEntityRegistry(capacity int) entityRegistry {
	return entityRegistry{
		alive:    make(map[Entity]struct{}, capacity),
		capacity: capacity,
	}
}

// create issues the next identifier and marks it live. A failing call
// consumes no identifier.
func (r *entityRegistry) create() (Entity, error) {
	if int(r.nextID) >= r.capacity {
		return 0, fmt.Errorf("%w: %d entities", ErrCapacityExceeded, r.capacity)
	}
	e := r.nextID
	r.nextID++
	r.alive[e] = struct{}{}
	return e, nil
}

// remaining reports how many identifiers can still be issued.
func (r *entityRegistry) remaining() int {
	return r.capacity - int(r.nextID)
}

// destroy marks the entity not-live and reports whether it was alive.
// Destroying a dead or never-issued entity is a no-op.
func (r *entityRegistry) destroy(e Entity) bool {
	if _, ok := r.alive[e]; !ok {
		return false
	}
	delete(r.alive, e)
	return true
}

func (r *entityRegistry) isAlive(e Entity) bool {
	_, ok := r.alive[e]
	return ok
}

func (r *entityRegistry) count() int {
	return len(r.alive)
}

// reset drops all live entities and restarts the identifier counter.
func (r *entityRegistry) reset() {
	clear(r.alive)
	r.nextID = 0
}
