package hakoniwa

import (
	"testing"
)

type testEvent struct {
	Value int
}

type otherEvent struct {
	Name string
}

func TestEventBusSubscribeAndPublish(t *testing.T) {
	bus := &EventBus{}
	received := 0
	Subscribe(bus, func(e testEvent) {
		received += e.Value
	})
	Subscribe(bus, func(e testEvent) {
		received += e.Value * 2
	})
	Publish(bus, testEvent{Value: 1})
	if received != 3 {
		t.Errorf("expected received 3, got %d", received)
	}
	Publish(bus, testEvent{Value: 2})
	if received != 3+6 {
		t.Errorf("expected received 9, got %d", received)
	}
}

func TestEventBusMultipleTypes(t *testing.T) {
	bus := &EventBus{}
	received1 := 0
	received2 := ""
	Subscribe(bus, func(e testEvent) {
		received1 += e.Value
	})
	Subscribe(bus, func(e otherEvent) {
		received2 += e.Name
	})
	Publish(bus, testEvent{Value: 42})
	Publish(bus, otherEvent{Name: "x"})
	if received1 != 42 {
		t.Errorf("expected received1 42, got %d", received1)
	}
	if received2 != "x" {
		t.Errorf("expected received2 %q, got %q", "x", received2)
	}
}

func TestEventBusNoHandlers(t *testing.T) {
	bus := &EventBus{}
	// No panic expected
	Publish(bus, testEvent{Value: 42})
}

func TestEventBusManySubscribers(t *testing.T) {
	bus := &EventBus{}
	const numSubs = 100
	received := 0
	for i := 0; i < numSubs; i++ {
		Subscribe(bus, func(e testEvent) {
			received += e.Value
		})
	}
	Publish(bus, testEvent{Value: 1})
	if received != numSubs {
		t.Errorf("expected %d, got %d", numSubs, received)
	}
}

func TestWorldLifecycleEvents(t *testing.T) {
	w := NewWorld(10)
	var created, destroyed []Entity
	Subscribe(w.Events(), func(e EntityCreated) {
		created = append(created, e.Entity)
	})
	Subscribe(w.Events(), func(e EntityDestroyed) {
		destroyed = append(destroyed, e.Entity)
	})

	e1, _ := w.CreateEntity()
	e2, _ := w.CreateEntity()
	w.DestroyEntity(e1)
	w.DestroyEntity(e1) // no-op, no second event

	if len(created) != 2 || created[0] != e1 || created[1] != e2 {
		t.Errorf("expected created events for %d and %d, got %v", e1, e2, created)
	}
	if len(destroyed) != 1 || destroyed[0] != e1 {
		t.Errorf("expected one destroyed event for %d, got %v", e1, destroyed)
	}
}

func TestWorldDestroyedEventAfterPurge(t *testing.T) {
	w := NewWorld(10)
	if _, err := RegisterComponent[testEvent](w); err != nil {
		t.Fatalf("register: %v", err)
	}
	e, _ := w.CreateEntity()
	if err := AddComponent(w, e, testEvent{Value: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}

	// By the time the event fires the component is already gone.
	Subscribe(w.Events(), func(ev EntityDestroyed) {
		if has, _ := HasComponent[testEvent](w, ev.Entity); has {
			t.Error("components must be purged before EntityDestroyed is published")
		}
	})
	w.DestroyEntity(e)
}
