package blueprint

import (
	"reflect"
	"testing"

	"github.com/blueprint-dev/blueprint/pkg/dom"
)

func TestOptionConstructors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want Options
	}{
		{"Attr", Attr("href", "/"), Options{OptionAttribute: map[string]any{"href": "/"}}},
		{"ID", ID("root"), Options{OptionAttribute: map[string]any{"id": "root"}}},
		{"Class", Class("a", "b"), Options{OptionAttribute: map[string]any{"class": "a b"}}},
		{"Data", Data("userId", "7"), Options{OptionDataset: map[string]any{"userId": "7"}}},
		{"StyleProp", StyleProp("color", "red"), Options{OptionStyle: map[string]any{"color": "red"}}},
		{"Content", Content("<b>x</b>"), Options{OptionContent: "<b>x</b>"}},
		{"Text", Text("t"), Options{OptionText: "t"}},
		{"PreText", PreText("p"), Options{OptionText: map[string]any{TextPre: "p"}}},
		{"PostText", PostText("q"), Options{OptionText: map[string]any{TextPost: "q"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.opts, tt.want) {
				t.Errorf("got %v, want %v", tt.opts, tt.want)
			}
		})
	}
}

func TestCombineUnionsNestedEntries(t *testing.T) {
	got := Combine(Attr("id", "x"), Attr("class", "c"), StyleProp("margin", "0"))

	want := Options{
		OptionAttribute: map[string]any{"id": "x", "class": "c"},
		OptionStyle:     map[string]any{"margin": "0"},
	}
	if !reflect.DeepEqual(map[string]any(got), map[string]any(want)) {
		t.Errorf("Combine() = %v, want %v", got, want)
	}
}

func TestCombineDoesNotMutateInputs(t *testing.T) {
	a := Attr("id", "x")
	Combine(a, Attr("id", "y"))

	if a[OptionAttribute].(map[string]any)["id"] != "x" {
		t.Error("Combine mutated its input")
	}
}

func TestOnConstructsListenerOption(t *testing.T) {
	called := false
	bp := Must(New("button", Combine(
		On("click", func(dom.Event) { called = true }),
	)))

	el, err := bp.Produce()
	if err != nil {
		t.Fatalf("Produce() error: %v", err)
	}
	el.Dispatch("click")
	if !called {
		t.Error("listener from On() was not registered")
	}
}

func TestOnWithOnce(t *testing.T) {
	calls := 0
	bp := Must(New("button", OnWith("click", func(dom.Event) { calls++ }, dom.ListenerOptions{Once: true})))

	el, err := bp.Produce()
	if err != nil {
		t.Fatalf("Produce() error: %v", err)
	}
	el.Dispatch("click")
	el.Dispatch("click")
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
