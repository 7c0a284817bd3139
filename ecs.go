// Package hakoniwa implements a small, map-backed Entity Component System
// for Go.
//
// Features:
// - Per-type component stores keyed by entity, O(1) expected access.
// - Runtime component type registry with per-world, deterministic IDs.
// - A World facade owning entity lifecycle, stores, systems and events.
// - Contract violations reported as error values, never as panics.
// - Simple, generic View APIs for iterating 1 or 2 components.
package hakoniwa

// Entity is an opaque identifier for one object in a World. Identifiers are
// issued monotonically and never reassigned to a different logical entity,
// even after destruction.
type Entity uint32

// ComponentID is a unique identifier for a component type within one World.
// IDs are assigned in first-registration order, starting at 0.
type ComponentID uint32

const (
	// DefaultCapacity is the entity capacity used when NewWorld is given a
	// non-positive capacity.
	DefaultCapacity = 5000

	// MaxComponentTypes caps the number of distinct component types a World
	// can register.
	MaxComponentTypes = 256
)
