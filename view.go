package hakoniwa

// View is an iterator over the entities that carry a component of type T.
// Iteration order is unspecified. The view snapshots membership when it is
// created or Reset; entities destroyed after the snapshot are skipped, and
// entities added after it are not visited until the next Reset.
type View[T any] struct {
	store   *componentStore[T]
	ents    []Entity
	index   int
	current *T
}

// NewView creates a view over component type T. Fails with
// ErrUnregisteredType if T was never registered.
func NewView[T any](w *World) (*View[T], error) {
	s, err := storeFor[T](w)
	if err != nil {
		return nil, err
	}
	v := &View[T]{store: s}
	v.Reset()
	return v, nil
}

// Reset re-snapshots membership and rewinds the view for reuse.
func (self *View[T]) Reset() {
	self.ents = self.ents[:0]
	for e := range self.store.items {
		self.ents = append(self.ents, e)
	}
	self.index = -1
	self.current = nil
}

// Next advances to the next entity. Returns false when exhausted.
func (self *View[T]) Next() bool {
	for self.index+1 < len(self.ents) {
		self.index++
		if p := self.store.get(self.ents[self.index]); p != nil {
			self.current = p
			return true
		}
	}
	self.current = nil
	return false
}

// Entity returns the current entity.
func (self *View[T]) Entity() Entity {
	return self.ents[self.index]
}

// Get returns a pointer to the current entity's component.
func (self *View[T]) Get() *T {
	return self.current
}

// View2 iterates the entities that carry both T1 and T2.
type View2[T1, T2 any] struct {
	store1   *componentStore[T1]
	store2   *componentStore[T2]
	ents     []Entity
	index    int
	current1 *T1
	current2 *T2
}

// NewView2 creates a view over entities holding both component types. Fails
// with ErrUnregisteredType if either type was never registered.
func NewView2[T1, T2 any](w *World) (*View2[T1, T2], error) {
	s1, err := storeFor[T1](w)
	if err != nil {
		return nil, err
	}
	s2, err := storeFor[T2](w)
	if err != nil {
		return nil, err
	}
	v := &View2[T1, T2]{store1: s1, store2: s2}
	v.Reset()
	return v, nil
}

// Reset re-snapshots membership and rewinds the view for reuse.
func (self *View2[T1, T2]) Reset() {
	self.ents = self.ents[:0]
	// Walk the smaller store, probe the other.
	if self.store1.count() <= self.store2.count() {
		for e := range self.store1.items {
			if self.store2.contains(e) {
				self.ents = append(self.ents, e)
			}
		}
	} else {
		for e := range self.store2.items {
			if self.store1.contains(e) {
				self.ents = append(self.ents, e)
			}
		}
	}
	self.index = -1
	self.current1 = nil
	self.current2 = nil
}

// Next advances to the next entity. Returns false when exhausted.
func (self *View2[T1, T2]) Next() bool {
	for self.index+1 < len(self.ents) {
		self.index++
		e := self.ents[self.index]
		p1 := self.store1.get(e)
		p2 := self.store2.get(e)
		if p1 != nil && p2 != nil {
			self.current1 = p1
			self.current2 = p2
			return true
		}
	}
	self.current1 = nil
	self.current2 = nil
	return false
}

// Entity returns the current entity.
func (self *View2[T1, T2]) Entity() Entity {
	return self.ents[self.index]
}

// Get returns pointers to the current entity's components.
func (self *View2[T1, T2]) Get() (*T1, *T2) {
	return self.current1, self.current2
}
