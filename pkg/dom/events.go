package dom

// Event is passed to listeners when an event is dispatched on an element.
type Event struct {
	Type   string
	Target *Element
	Data   any
}

// HandlerFunc handles a dispatched event.
type HandlerFunc func(Event)

// ListenerOptions mirror the options accepted when registering a listener.
type ListenerOptions struct {
	// Once removes the listener after its first invocation.
	Once bool

	// Capture listeners run before non-capture listeners for the same
	// event type.
	Capture bool
}

// Listener pairs a handler with registration options.
type Listener struct {
	Handler HandlerFunc
	Options ListenerOptions
}

type listenerEntry struct {
	handler HandlerFunc
	options ListenerOptions
}

// AddEventListener registers a handler for an event type. Registration is
// append-only: registering the same handler twice means two invocations per
// dispatch.
func (e *Element) AddEventListener(event string, handler HandlerFunc, opts ...ListenerOptions) {
	if handler == nil {
		return
	}
	entry := listenerEntry{handler: handler}
	if len(opts) > 0 {
		entry.options = opts[0]
	}
	e.listeners[event] = append(e.listeners[event], entry)
}

// ListenerCount returns the number of listeners registered for an event
// type.
func (e *Element) ListenerCount(event string) int {
	return len(e.listeners[event])
}

// Dispatch synchronously invokes the element's listeners for an event type,
// capture listeners first, and returns the number of handlers invoked.
// Listeners registered with Once are removed after running.
func (e *Element) Dispatch(event string, data ...any) int {
	entries := e.listeners[event]
	if len(entries) == 0 {
		return 0
	}

	var payload any
	if len(data) > 0 {
		payload = data[0]
	}
	ev := Event{Type: event, Target: e, Data: payload}

	// Snapshot so handlers that add listeners do not run in this dispatch.
	snapshot := make([]listenerEntry, len(entries))
	copy(snapshot, entries)

	invoked := 0
	for _, entry := range snapshot {
		if entry.options.Capture {
			entry.handler(ev)
			invoked++
		}
	}
	for _, entry := range snapshot {
		if !entry.options.Capture {
			entry.handler(ev)
			invoked++
		}
	}

	remaining := e.listeners[event][:0]
	for _, entry := range e.listeners[event] {
		if !entry.options.Once {
			remaining = append(remaining, entry)
		}
	}
	e.listeners[event] = remaining

	return invoked
}
