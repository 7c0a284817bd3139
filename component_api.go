package hakoniwa

import (
	"fmt"
	"reflect"
)

// RegisterComponent registers component type T with the world and returns
// its ComponentID. A type must be registered before any entity can carry a
// component of it. Registering the same type twice fails with
// ErrDuplicateRegistration and leaves the existing store untouched.
func RegisterComponent[T any](w *World) (ComponentID, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if id, ok := w.types.lookup(t); ok {
		return id, fmt.Errorf("%w: %s", ErrDuplicateRegistration, t)
	}
	if w.types.count() >= MaxComponentTypes {
		return 0, fmt.Errorf("%w: %d component types", ErrCapacityExceeded, MaxComponentTypes)
	}
	id := w.types.assign(t)
	w.stores = append(w.stores, newComponentStore[T]())
	return id, nil
}

// ComponentIDFor returns the ComponentID assigned to T, or false if T was
// never registered.
func ComponentIDFor[T any](w *World) (ComponentID, bool) {
	return w.types.lookup(reflect.TypeOf((*T)(nil)).Elem())
}

// storeFor fetches the store registered for T. The type assertion is safe by
// construction: a ComponentID is created exactly once per type, bound to a
// store built for that same type in RegisterComponent.
func storeFor[T any](w *World) (*componentStore[T], error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	id, ok := w.types.lookup(t)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnregisteredType, t)
	}
	return w.stores[id].(*componentStore[T]), nil
}

// AddComponent attaches a component of type T to the entity. The entity must
// be alive (ErrUnknownEntity), T must be registered (ErrUnregisteredType)
// and the entity must not already carry a T (ErrDuplicateComponent, original
// value unchanged).
func AddComponent[T any](w *World, e Entity, value T) error {
	if !w.entities.isAlive(e) {
		return fmt.Errorf("%w: entity %d", ErrUnknownEntity, e)
	}
	s, err := storeFor[T](w)
	if err != nil {
		return err
	}
	return s.insert(e, value)
}

// SetComponent attaches or replaces the entity's component of type T. It is
// the upsert variant of AddComponent and never reports
// ErrDuplicateComponent.
func SetComponent[T any](w *World, e Entity, value T) error {
	if !w.entities.isAlive(e) {
		return fmt.Errorf("%w: entity %d", ErrUnknownEntity, e)
	}
	s, err := storeFor[T](w)
	if err != nil {
		return err
	}
	s.set(e, value)
	return nil
}

// RemoveComponent detaches the entity's component of type T. The entity must
// be alive, T registered and the component present (ErrMissingComponent).
func RemoveComponent[T any](w *World, e Entity) error {
	if !w.entities.isAlive(e) {
		return fmt.Errorf("%w: entity %d", ErrUnknownEntity, e)
	}
	s, err := storeFor[T](w)
	if err != nil {
		return err
	}
	return s.remove(e)
}

// GetComponent returns a pointer to the entity's component of type T, valid
// until the component is removed. A nil pointer with a nil error means the
// entity has no T; absence is a normal answer, not a failure. The only error
// is ErrUnregisteredType.
func GetComponent[T any](w *World, e Entity) (*T, error) {
	s, err := storeFor[T](w)
	if err != nil {
		return nil, err
	}
	return s.get(e), nil
}

// HasComponent reports whether the entity carries a component of type T. The
// only error is ErrUnregisteredType.
func HasComponent[T any](w *World, e Entity) (bool, error) {
	s, err := storeFor[T](w)
	if err != nil {
		return false, err
	}
	return s.contains(e), nil
}

// ComponentCount returns how many entities currently carry a component of
// type T. The only error is ErrUnregisteredType.
func ComponentCount[T any](w *World) (int, error) {
	s, err := storeFor[T](w)
	if err != nil {
		return 0, err
	}
	return s.count(), nil
}
