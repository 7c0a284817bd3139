package hakoniwa

import "fmt"

// storage is the type-erased handle a World keeps for each registered
// component type. It exposes only the operations that need no knowledge of
// the concrete component type, so the world can clean up any store for a
// destroyed entity.
type storage interface {
	// discard drops the entity's component if present. Unlike remove it is
	// not an error when the entity has no component; it exists for entity
	// destruction, where absence is expected.
	discard(e Entity)
	contains(e Entity) bool
	count() int
	clear()
}

// componentStore holds all components of a single type T, keyed by entity.
// Values are stored behind pointers so that get hands back a reference the
// caller can mutate in place.
type componentStore[T any] struct {
	items map[Entity]*T
}

func newComponentStore[T any]() *componentStore[T] {
	return &componentStore[T]{items: make(map[Entity]*T)}
}

// insert adds the entity's component. The entity must not already have one.
func (self *componentStore[T]) insert(e Entity, value T) error {
	if _, ok := self.items[e]; ok {
		return fmt.Errorf("%w: entity %d", ErrDuplicateComponent, e)
	}
	self.items[e] = &value
	return nil
}

// set adds or replaces the entity's component.
func (self *componentStore[T]) set(e Entity, value T) {
	self.items[e] = &value
}

// remove deletes the entity's component. The entity must have one.
func (self *componentStore[T]) remove(e Entity) error {
	if _, ok := self.items[e]; !ok {
		return fmt.Errorf("%w: entity %d", ErrMissingComponent, e)
	}
	delete(self.items, e)
	return nil
}

// get returns a pointer to the entity's component, or nil if absent.
func (self *componentStore[T]) get(e Entity) *T {
	return self.items[e]
}

func (self *componentStore[T]) discard(e Entity) {
	delete(self.items, e)
}

func (self *componentStore[T]) contains(e Entity) bool {
	_, ok := self.items[e]
	return ok
}

func (self *componentStore[T]) count() int {
	return len(self.items)
}

func (self *componentStore[T]) clear() {
	clear(self.items)
}
