package engine

// ListenerID identifies one subscription to an EventWithArg.
type ListenerID int

// EventWithArg fans one value out to its listeners in subscription order.
// Gameplay components expose these (picked up, dropped, thrown) so the game
// layer can react without the component knowing about it.
type EventWithArg[T any] struct {
	listeners []listener[T]
	next      ListenerID
}

type listener[T any] struct {
	id ListenerID
	fn func(T)
}

// AddListener subscribes fn. Nil is ignored and yields id 0.
func (e *EventWithArg[T]) AddListener(fn func(T)) ListenerID {
	if fn == nil {
		return 0
	}
	e.next++
	e.listeners = append(e.listeners, listener[T]{id: e.next, fn: fn})
	return e.next
}

// RemoveListener drops the subscription with id. Unknown ids are ignored.
func (e *EventWithArg[T]) RemoveListener(id ListenerID) {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls every listener with arg. Listeners added during Invoke run
// from the next call on.
func (e *EventWithArg[T]) Invoke(arg T) {
	current := e.listeners
	for _, l := range current {
		l.fn(arg)
	}
}

func (e *EventWithArg[T]) ListenerCount() int {
	return len(e.listeners)
}
