package hakoniwa

import "fmt"

// World is the coordinator: it owns one entity registry, one component store
// per registered type, the registered systems, an EventBus and a Resources
// store. All mutation of entity and component state goes through it.
//
// A World is not safe for concurrent use. One goroutine owns the world and
// performs all mutation; run queries from other goroutines only while no
// mutation is in flight.
type World struct {
	types     typeRegistry
	stores    []storage // indexed by ComponentID
	entities  entityRegistry
	systems   []System
	bus       EventBus
	resources Resources
}

// EntityCreated is published on the world's event bus after each successful
// entity creation.
type EntityCreated struct {
	Entity Entity
}

// EntityDestroyed is published on the world's event bus after an entity has
// been destroyed and its components purged.
type EntityDestroyed struct {
	Entity Entity
}

// NewWorld creates a World that can issue up to capacity entities. A
// non-positive capacity selects DefaultCapacity.
func NewWorld(capacity int) *World {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &World{
		types:    newTypeRegistry(),
		entities: newEntityRegistry(capacity),
	}
}

// CreateEntity issues a new live entity. It fails with ErrCapacityExceeded
// once the world's identifier space is exhausted; no identifier is consumed
// by a failing call.
func (w *World) CreateEntity() (Entity, error) {
	e, err := w.entities.create()
	if err != nil {
		return 0, err
	}
	Publish(&w.bus, EntityCreated{Entity: e})
	return e, nil
}

// CreateEntities issues count entities at once. The batch is all-or-nothing:
// if fewer than count identifiers remain, no entity is created and
// ErrCapacityExceeded is returned.
func (w *World) CreateEntities(count int) ([]Entity, error) {
	if count <= 0 {
		return nil, nil
	}
	if left := w.entities.remaining(); left < count {
		return nil, fmt.Errorf("%w: %d entities requested, %d identifiers left", ErrCapacityExceeded, count, left)
	}
	ents := make([]Entity, count)
	for i := range ents {
		e, err := w.entities.create()
		if err != nil {
			return nil, err
		}
		ents[i] = e
		Publish(&w.bus, EntityCreated{Entity: e})
	}
	return ents, nil
}

// DestroyEntity marks the entity not-live, drops its component from every
// store, untracks it from every registered system and publishes
// EntityDestroyed. Destroying a dead or never-issued entity is a no-op.
func (w *World) DestroyEntity(e Entity) {
	if !w.entities.destroy(e) {
		return
	}
	for _, s := range w.stores {
		s.discard(e)
	}
	for _, sys := range w.systems {
		sys.Untrack(e)
	}
	Publish(&w.bus, EntityDestroyed{Entity: e})
}

// IsAlive reports whether the entity is currently live.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// EntityCount returns the number of currently live entities.
func (w *World) EntityCount() int {
	return w.entities.count()
}

// Capacity returns the world's entity capacity.
func (w *World) Capacity() int {
	return w.entities.capacity
}

// AddSystem registers a system with the world. Registered systems run in
// registration order on Update and have destroyed entities untracked
// automatically.
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
}

// Update runs every registered system once, in registration order.
func (w *World) Update(dt float64) {
	for _, s := range w.systems {
		s.Update(w, dt)
	}
}

// Events returns the world's event bus.
func (w *World) Events() *EventBus {
	return &w.bus
}

// Resources returns the world's resource store.
func (w *World) Resources() *Resources {
	return &w.resources
}

// Clear destroys all entities, purges every component store and restarts the
// identifier counter. Registered component types, systems, subscriptions and
// resources survive; tracked-entity sets of registered systems are emptied.
func (w *World) Clear() {
	w.entities.reset()
	for _, s := range w.stores {
		s.clear()
	}
	for _, sys := range w.systems {
		sys.Clear()
	}
}
