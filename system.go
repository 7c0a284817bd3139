package hakoniwa

// System is a logic unit that runs once per tick over the entities it
// tracks. Membership is managed externally: whoever assigns entities to a
// system calls Track, except that a World untracks destroyed entities from
// every system registered with AddSystem. The core defines no ordering
// between systems beyond registration order in World.Update.
type System interface {
	// Update performs one tick of work, reading and writing components for
	// tracked entities through the world.
	Update(w *World, dt float64)

	Track(e Entity)
	Untrack(e Entity)
	IsTracked(e Entity) bool

	// Clear empties the tracked set. Called by World.Clear.
	Clear()
}

// SystemBase carries a system's tracked-entity set. Embed it and implement
// Update to get a complete System.
type SystemBase struct {
	tracked map[Entity]struct{}
}

func (self *SystemBase) Track(e Entity) {
	if self.tracked == nil {
		self.tracked = make(map[Entity]struct{})
	}
	self.tracked[e] = struct{}{}
}

func (self *SystemBase) Untrack(e Entity) {
	delete(self.tracked, e)
}

func (self *SystemBase) IsTracked(e Entity) bool {
	_, ok := self.tracked[e]
	return ok
}

func (self *SystemBase) Clear() {
	clear(self.tracked)
}

// TrackedCount returns the number of tracked entities.
func (self *SystemBase) TrackedCount() int {
	return len(self.tracked)
}

// Entities returns a snapshot of the tracked set, in no particular order.
// Safe to mutate membership while ranging over the snapshot.
func (self *SystemBase) Entities() []Entity {
	ents := make([]Entity, 0, len(self.tracked))
	for e := range self.tracked {
		ents = append(ents, e)
	}
	return ents
}
