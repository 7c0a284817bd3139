package hakoniwa

import "reflect"

// EventBus is a small, type-safe publish/subscribe bus for decoupled
// communication between systems and application code. Handlers run
// synchronously, in subscription order, on the publishing goroutine.
//
// The zero value is ready to use. A World owns one bus (World.Events) and
// publishes EntityCreated and EntityDestroyed on it; any other event type
// may be published by callers.
type EventBus struct {
	typeIDs  map[reflect.Type]int
	handlers [][]any
}

// Subscribe registers a handler for events of type T.
//
// Parameters:
//   - bus: The EventBus to subscribe to.
//   - handler: A function taking a single argument of type T.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	id := bus.eventTypeID(reflect.TypeOf((*T)(nil)).Elem())
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish delivers the event to every handler subscribed for type T, in
// subscription order. Publishing a type with no subscribers is a no-op.
//
// Parameters:
//   - bus: The EventBus to publish to.
//   - event: The event value delivered to handlers.
func Publish[T any](bus *EventBus, event T) {
	if bus.typeIDs == nil {
		return
	}
	id, ok := bus.typeIDs[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return
	}
	for _, h := range bus.handlers[id] {
		h.(func(T))(event)
	}
}

// eventTypeID retrieves or assigns the slot for an event type.
func (bus *EventBus) eventTypeID(t reflect.Type) int {
	if bus.typeIDs == nil {
		bus.typeIDs = make(map[reflect.Type]int)
	}
	if id, ok := bus.typeIDs[t]; ok {
		return id
	}
	id := len(bus.handlers)
	bus.typeIDs[t] = id
	bus.handlers = append(bus.handlers, nil)
	return id
}
