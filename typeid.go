package hakoniwa

import "reflect"

// typeRegistry assigns ComponentIDs to component types. It is owned by one
// World, so IDs are deterministic within a run but carry no meaning across
// worlds or processes. There is no package-level counter.
type typeRegistry struct {
	typeToID map[reflect.Type]ComponentID
	idToType []reflect.Type
}

func newTypeRegistry() typeRegistry {
	return typeRegistry{
		typeToID: make(map[reflect.Type]ComponentID, 16),
	}
}

// lookup returns the ID previously assigned to t, if any.
func (r *typeRegistry) lookup(t reflect.Type) (ComponentID, bool) {
	id, ok := r.typeToID[t]
	return id, ok
}

// assign allocates the next ID for t. The caller must have checked that t is
// not yet registered and that the type limit is not exceeded.
func (r *typeRegistry) assign(t reflect.Type) ComponentID {
	id := ComponentID(len(r.idToType))
	r.typeToID[t] = id
	r.idToType = append(r.idToType, t)
	return id
}

func (r *typeRegistry) count() int {
	return len(r.idToType)
}
