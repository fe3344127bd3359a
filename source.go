package touchable

import "time"

// Touch is one finger in a touch event.
type Touch struct {
	// ID stays stable for the life of the finger on the screen.
	ID    int
	Point Vec2
}

// RawEvent is a device event as delivered by an InputSource, before any
// gesture interpretation.
type RawEvent struct {
	Family Family
	Phase  Phase
	// Point is the document position for mouse events.
	Point Vec2
	// Touches lists every finger currently on the screen (touch events only).
	Touches []Touch
	// ChangedTouches lists the fingers this event is about (touch events only).
	ChangedTouches []Touch
	// Timestamp is read from a monotonic input clock.
	Timestamp time.Duration
}

// findTouch returns the touch with the given id from list.
func findTouch(list []Touch, id int) (Touch, bool) {
	for _, t := range list {
		if t.ID == id {
			return t, true
		}
	}
	return Touch{}, false
}

// Listener receives raw events.
type Listener func(RawEvent)

// Subscription detaches a listener. Remove is idempotent.
type Subscription interface {
	Remove()
}

// InputSource is the effectful boundary between the platform and a
// Touchable: it delivers raw events for one surface and the document that
// owns it.
type InputSource interface {
	// Subscribe attaches fn to events of the given family and phase at scope.
	Subscribe(scope Scope, family Family, phase Phase, fn Listener) Subscription
}

// --- Dispatcher ---

type listenerKey struct {
	scope  Scope
	family Family
	phase  Phase
}

type listenerEntry struct {
	id uint32
	fn Listener
}

// Dispatcher is an in-process listener registry implementing InputSource.
// Platform adapters and tests feed it events through Dispatch. It is not
// safe for concurrent use.
type Dispatcher struct {
	listeners map[listenerKey][]listenerEntry
	nextID    uint32
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[listenerKey][]listenerEntry)}
}

// dispatcherHandle allows removing a registered listener.
type dispatcherHandle struct {
	d   *Dispatcher
	key listenerKey
	id  uint32
}

// Remove unregisters the listener. The entry is removed from the slice to
// avoid nil iteration waste.
func (h *dispatcherHandle) Remove() {
	if h.d == nil {
		return
	}
	s := h.d.listeners[h.key]
	for i := range s {
		if s[i].id == h.id {
			// Copy on write: a Dispatch in progress keeps iterating its own slice.
			out := make([]listenerEntry, 0, len(s)-1)
			out = append(out, s[:i]...)
			out = append(out, s[i+1:]...)
			if len(out) == 0 {
				delete(h.d.listeners, h.key)
			} else {
				h.d.listeners[h.key] = out
			}
			break
		}
	}
	h.d = nil
}

// Subscribe implements InputSource.
func (d *Dispatcher) Subscribe(scope Scope, family Family, phase Phase, fn Listener) Subscription {
	d.nextID++
	key := listenerKey{scope, family, phase}
	d.listeners[key] = append(d.listeners[key], listenerEntry{id: d.nextID, fn: fn})
	return &dispatcherHandle{d: d, key: key, id: d.nextID}
}

// Dispatch delivers ev synchronously to the listeners registered for
// (scope, ev.Family, ev.Phase), in registration order. A listener removed
// by an earlier listener in the same dispatch is skipped.
func (d *Dispatcher) Dispatch(scope Scope, ev RawEvent) {
	key := listenerKey{scope, ev.Family, ev.Phase}
	snapshot := d.listeners[key]
	for _, l := range snapshot {
		if !d.live(key, l.id) {
			continue
		}
		l.fn(ev)
	}
}

// Len returns the number of live subscriptions.
func (d *Dispatcher) Len() int {
	n := 0
	for _, s := range d.listeners {
		n += len(s)
	}
	return n
}

// LenScope returns the number of live subscriptions at scope.
func (d *Dispatcher) LenScope(scope Scope) int {
	n := 0
	for k, s := range d.listeners {
		if k.scope == scope {
			n += len(s)
		}
	}
	return n
}

// Has reports whether any listener is attached for the key.
func (d *Dispatcher) Has(scope Scope, family Family, phase Phase) bool {
	return len(d.listeners[listenerKey{scope, family, phase}]) > 0
}

func (d *Dispatcher) live(key listenerKey, id uint32) bool {
	for _, l := range d.listeners[key] {
		if l.id == id {
			return true
		}
	}
	return false
}
