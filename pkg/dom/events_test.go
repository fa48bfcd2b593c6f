package dom

import "testing"

func TestDispatchInvokesListeners(t *testing.T) {
	el := Create("button")
	calls := 0
	el.AddEventListener("click", func(ev Event) {
		calls++
		if ev.Type != "click" || ev.Target != el {
			t.Errorf("event = %+v", ev)
		}
	})

	if n := el.Dispatch("click"); n != 1 {
		t.Errorf("Dispatch() = %d, want 1", n)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestDuplicateRegistrationRunsTwice(t *testing.T) {
	el := Create("button")
	calls := 0
	handler := func(Event) { calls++ }

	el.AddEventListener("click", handler)
	el.AddEventListener("click", handler)

	el.Dispatch("click")
	if calls != 2 {
		t.Errorf("calls = %d, want 2 (no deduplication)", calls)
	}
	if el.ListenerCount("click") != 2 {
		t.Errorf("ListenerCount = %d, want 2", el.ListenerCount("click"))
	}
}

func TestDispatchPayload(t *testing.T) {
	el := Create("input")
	var got any
	el.AddEventListener("input", func(ev Event) { got = ev.Data })

	el.Dispatch("input", "typed")
	if got != "typed" {
		t.Errorf("payload = %v, want %q", got, "typed")
	}
}

func TestOnceListenerRemovedAfterDispatch(t *testing.T) {
	el := Create("div")
	calls := 0
	el.AddEventListener("focus", func(Event) { calls++ }, ListenerOptions{Once: true})

	el.Dispatch("focus")
	el.Dispatch("focus")

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if el.ListenerCount("focus") != 0 {
		t.Errorf("ListenerCount = %d, want 0", el.ListenerCount("focus"))
	}
}

func TestCaptureListenersRunFirst(t *testing.T) {
	el := Create("div")
	var order []string
	el.AddEventListener("click", func(Event) { order = append(order, "bubble") })
	el.AddEventListener("click", func(Event) { order = append(order, "capture") }, ListenerOptions{Capture: true})

	el.Dispatch("click")

	if len(order) != 2 || order[0] != "capture" || order[1] != "bubble" {
		t.Errorf("order = %v", order)
	}
}

func TestDispatchUnknownEvent(t *testing.T) {
	el := Create("div")
	if n := el.Dispatch("mouseover"); n != 0 {
		t.Errorf("Dispatch() = %d, want 0", n)
	}
}

func TestNilHandlerIgnored(t *testing.T) {
	el := Create("div")
	el.AddEventListener("click", nil)
	if el.ListenerCount("click") != 0 {
		t.Error("nil handler was registered")
	}
}
