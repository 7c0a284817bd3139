package hakoniwa

import "reflect"

// Resources holds world-scoped singleton values keyed by their type: at most
// one value per type at a time. It is meant for data shared by systems that
// belongs to no single entity, such as a tick counter or an asset table.
// Store a pointer type when systems need to mutate the value in place.
//
// The zero value is ready to use.
type Resources struct {
	values map[reflect.Type]any
}

// PutResource stores the value of type T, replacing any previous value of
// the same type.
func PutResource[T any](r *Resources, value T) {
	if r.values == nil {
		r.values = make(map[reflect.Type]any)
	}
	r.values[reflect.TypeOf((*T)(nil)).Elem()] = value
}

// GetResource retrieves the stored value of type T, reporting whether one
// was present.
func GetResource[T any](r *Resources) (T, bool) {
	if v, ok := r.values[reflect.TypeOf((*T)(nil)).Elem()]; ok {
		return v.(T), true
	}
	var zero T
	return zero, false
}

// HasResource reports whether a value of type T is stored.
func HasResource[T any](r *Resources) bool {
	_, ok := r.values[reflect.TypeOf((*T)(nil)).Elem()]
	return ok
}

// RemoveResource drops the stored value of type T, if any.
func RemoveResource[T any](r *Resources) {
	delete(r.values, reflect.TypeOf((*T)(nil)).Elem())
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return len(r.values)
}

// Clear removes all stored resources.
func (r *Resources) Clear() {
	clear(r.values)
}
