package hakoniwa

import "errors"

// Contract violations surface as wrapped sentinel errors so that callers can
// treat them as fatal or recoverable. Match with errors.Is. Query operations
// (GetComponent presence, HasComponent, IsAlive) never report absence as an
// error; absence is a normal answer.
var (
	// ErrCapacityExceeded reports entity creation beyond the world's fixed
	// capacity, or component registration beyond MaxComponentTypes.
	ErrCapacityExceeded = errors.New("ecs: capacity exceeded")

	// ErrUnregisteredType reports a component operation on a type that was
	// never registered with the world.
	ErrUnregisteredType = errors.New("ecs: component type not registered")

	// ErrDuplicateRegistration reports a second registration of the same
	// component type.
	ErrDuplicateRegistration = errors.New("ecs: component type already registered")

	// ErrDuplicateComponent reports an insert for an entity that already has
	// a component of that type.
	ErrDuplicateComponent = errors.New("ecs: component already present")

	// ErrMissingComponent reports a removal for an entity that has no
	// component of that type.
	ErrMissingComponent = errors.New("ecs: component not present")

	// ErrUnknownEntity reports a component mutation on an entity that was
	// never issued or is no longer alive.
	ErrUnknownEntity = errors.New("ecs: unknown or dead entity")
)
