package record

// Event names raised by records.
const (
	// EventChange fires once per Set call that modified any attribute
	// through the base assignment mechanism.
	EventChange = "change"

	// EventSomeChange is the aggregate notification: it fires when the full
	// nested-expanded representation of the record differs after a Set
	// call, carrying a deep copy of the originally supplied payload.
	// Nested instances' own change events are not re-raised on the parent;
	// callers interested in a specific nested node bind to it directly.
	EventSomeChange = "someChange"
)

// EventChangeKey returns the per-attribute change event name for key.
func EventChangeKey(key string) string {
	return "change:" + key
}

// Handler receives an event payload. The payload is nil for events that
// carry no metadata.
type Handler func(payload Attrs)

// emitter is a minimal synchronous event broadcaster. Execution is
// single-threaded by contract, so no locking is involved.
type emitter struct {
	next     int
	handlers map[string]map[int]Handler
}

// on binds h to event and returns a function that unbinds it.
func (e *emitter) on(event string, h Handler) func() {
	if e.handlers == nil {
		e.handlers = make(map[string]map[int]Handler)
	}
	if e.handlers[event] == nil {
		e.handlers[event] = make(map[int]Handler)
	}
	id := e.next
	e.next++
	e.handlers[event][id] = h
	return func() {
		delete(e.handlers[event], id)
	}
}

// emit invokes every handler bound to event.
func (e *emitter) emit(event string, payload Attrs) {
	for _, h := range e.handlers[event] {
		h(payload)
	}
}
