package blueprint

import (
	"errors"
	"reflect"
	"testing"

	"github.com/blueprint-dev/blueprint/pkg/dom"
	"golang.org/x/net/html"
)

func TestNewRequiresTag(t *testing.T) {
	if _, err := New("", nil); !errors.Is(err, ErrEmptyTag) {
		t.Fatalf("New(\"\") error = %v, want ErrEmptyTag", err)
	}
}

func TestNewMergesOverBase(t *testing.T) {
	bp := Must(New("div", Options{OptionContent: "hello"}))

	info := bp.Info()
	if info[OptionTag] != "div" {
		t.Errorf("tag = %v", info[OptionTag])
	}
	if info[OptionContent] != "hello" {
		t.Errorf("content = %v", info[OptionContent])
	}

	// Default content is the empty string.
	bp = Must(New("div", nil))
	if bp.Info()[OptionContent] != "" {
		t.Errorf("default content = %v", bp.Info()[OptionContent])
	}
}

func TestProduceAppliesScalarEntries(t *testing.T) {
	bp := Must(New("input", Options{
		OptionAttribute: map[string]any{"type": "text", "name": "q"},
		OptionDataset:   map[string]any{"fieldId": "f1"},
		OptionStyle:     map[string]any{"color": "red"},
	}))

	el, err := bp.Produce()
	if err != nil {
		t.Fatalf("Produce() error: %v", err)
	}

	want := []html.Attribute{
		{Key: "name", Val: "q"},
		{Key: "type", Val: "text"},
		{Key: "data-field-id", Val: "f1"},
		{Key: "style", Val: "color: red"},
	}
	if got := el.Attributes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Attributes() = %v, want %v", got, want)
	}
}

func TestProduceTwiceYieldsDistinctElements(t *testing.T) {
	calls := 0
	bp := Must(New("button", Options{
		OptionAttribute: map[string]any{"type": "submit"},
		OptionListener:  map[string]any{"click": dom.HandlerFunc(func(dom.Event) { calls++ })},
	}))

	first, err := bp.Produce()
	if err != nil {
		t.Fatalf("first Produce() error: %v", err)
	}
	second, err := bp.Produce()
	if err != nil {
		t.Fatalf("second Produce() error: %v", err)
	}

	if first == second {
		t.Fatal("Produce() returned the same element twice")
	}
	if !reflect.DeepEqual(first.Attributes(), second.Attributes()) {
		t.Errorf("attribute content differs: %v vs %v", first.Attributes(), second.Attributes())
	}
	if bp.Element() != second {
		t.Error("Element() does not track the latest produce")
	}

	// Listeners are independently registered per element.
	first.Dispatch("click")
	if calls != 1 {
		t.Errorf("calls after dispatch on first = %d, want 1", calls)
	}
	second.Dispatch("click")
	if calls != 2 {
		t.Errorf("calls after dispatch on second = %d, want 2", calls)
	}
}

func TestListenerEntryForms(t *testing.T) {
	calls := 0
	handler := dom.HandlerFunc(func(dom.Event) { calls++ })
	bp := Must(New("a", Options{OptionListener: map[string]any{
		"click":     handler,
		"auxclick":  handler,
		"focusonce": dom.Listener{Handler: handler, Options: dom.ListenerOptions{Once: true}},
	}}))

	el, err := bp.Produce()
	if err != nil {
		t.Fatalf("Produce() error: %v", err)
	}

	el.Dispatch("focusonce")
	el.Dispatch("focusonce")
	if calls != 1 {
		t.Errorf("once listener calls = %d, want 1", calls)
	}
	if el.ListenerCount("click") != 1 || el.ListenerCount("auxclick") != 1 {
		t.Error("bare handlers not registered")
	}
}

func TestProduceContent(t *testing.T) {
	bp := Must(New("div", nil)).SetOption(Options{OptionContent: "x"})

	el, err := bp.Produce()
	if err != nil {
		t.Fatalf("Produce() error: %v", err)
	}
	if got := el.Text(); got != "x" {
		t.Errorf("Text() = %q, want %q", got, "x")
	}

	// Markup is parsed, not escaped.
	bp.SetContent("<em>m</em>")
	el, err = bp.Produce()
	if err != nil {
		t.Fatalf("Produce() error: %v", err)
	}
	if el.Node().FirstChild == nil || el.Node().FirstChild.Data != "em" {
		t.Errorf("content not parsed as markup: %+v", el.Node().FirstChild)
	}
}

func TestProduceContentTypeError(t *testing.T) {
	bp := Must(New("div", Options{OptionContent: "x"}))
	produced, err := bp.Produce()
	if err != nil {
		t.Fatalf("Produce() error: %v", err)
	}

	bp.SetContent(123)
	if _, err := bp.Produce(); err == nil {
		t.Fatal("Produce() with numeric content: no error")
	} else {
		var cte *ContentTypeError
		if !errors.As(err, &cte) {
			t.Fatalf("error = %v, want ContentTypeError", err)
		}
		if cte.Field != OptionContent {
			t.Errorf("Field = %q, want %q", cte.Field, OptionContent)
		}
	}

	// The failed produce must not mutate the previously produced element,
	// and Element() still points at it.
	if got := produced.Text(); got != "x" {
		t.Errorf("previous element text = %q, want %q", got, "x")
	}
	if bp.Element() != produced {
		t.Error("Element() changed after failed Produce")
	}
}

func TestProduceChildrenInInsertionOrder(t *testing.T) {
	childA := Must(New("li", Options{OptionText: "a"}))
	childB := Must(New("li", Options{OptionText: "b"}))
	bp := Must(New("ul", nil, WithChild("a", childA), WithChild("b", childB)))

	el, err := bp.Produce()
	if err != nil {
		t.Fatalf("Produce() error: %v", err)
	}
	if got := el.Text(); got != "ab" {
		t.Errorf("Text() = %q, want %q", got, "ab")
	}

	// Re-adding an existing key keeps its position; removal frees it.
	bp.AddChildren(WithChild("a", Must(New("li", Options{OptionText: "A"}))))
	bp.RemoveChildren("b")
	bp.AddChildren(WithChild("c", Must(New("li", Options{OptionText: "c"}))))

	el, err = bp.Produce()
	if err != nil {
		t.Fatalf("Produce() error: %v", err)
	}
	if got := el.Text(); got != "Ac" {
		t.Errorf("Text() = %q, want %q", got, "Ac")
	}
	if got := bp.ChildKeys(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("ChildKeys() = %v", got)
	}
}

func TestChildProduceErrorNamesKey(t *testing.T) {
	bad := Must(New("span", nil)).SetContent(42)
	bp := Must(New("div", nil, WithChild("inner", bad)))

	_, err := bp.Produce()
	if err == nil {
		t.Fatal("Produce() with failing child: no error")
	}
	var cte *ContentTypeError
	if !errors.As(err, &cte) {
		t.Fatalf("error = %v, want wrapped ContentTypeError", err)
	}
}

func TestProduceTextPositions(t *testing.T) {
	bp := Must(New("p", Options{
		OptionContent: "M",
		OptionText:    map[string]any{TextPre: "P", TextPost: "Q", "mid": "ignored"},
	}))

	el, err := bp.Produce()
	if err != nil {
		t.Fatalf("Produce() error: %v", err)
	}
	if got := el.Text(); got != "PMQ" {
		t.Errorf("Text() = %q, want %q", got, "PMQ")
	}
}

func TestProducePlainTextAppended(t *testing.T) {
	bp := Must(New("p", Options{OptionContent: "M", OptionText: 7}))

	el, err := bp.Produce()
	if err != nil {
		t.Fatalf("Produce() error: %v", err)
	}
	if got := el.Text(); got != "M7" {
		t.Errorf("Text() = %q, want %q", got, "M7")
	}
}

func TestSetOptionDeepMerges(t *testing.T) {
	bp := Must(New("div", Options{OptionAttribute: map[string]any{"id": "x"}}))
	bp.SetOption(Options{OptionAttribute: map[string]any{"class": "c"}})

	el, err := bp.Produce()
	if err != nil {
		t.Fatalf("Produce() error: %v", err)
	}
	if v, _ := el.Attribute("id"); v != "x" {
		t.Errorf("id = %q, want %q (existing keys retained)", v, "x")
	}
	if v, _ := el.Attribute("class"); v != "c" {
		t.Errorf("class = %q, want %q", v, "c")
	}
}

func TestRemoveOption(t *testing.T) {
	bp := Must(New("div", Options{
		OptionAttribute: map[string]any{"id": "x", "class": "c"},
		OptionDataset:   map[string]any{"a": "1", "b": "2"},
	}))

	bp.RemoveOption(Options{
		OptionAttribute: "id",
		OptionDataset:   []string{"a", "b"},
		OptionContent:   "ignored", // content is not a mapping
	})

	el, err := bp.Produce()
	if err != nil {
		t.Fatalf("Produce() error: %v", err)
	}
	want := []html.Attribute{{Key: "class", Val: "c"}}
	if got := el.Attributes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Attributes() = %v, want %v", got, want)
	}
}

func TestInfoIsMutationSafe(t *testing.T) {
	bp := Must(New("div", nil))
	info := bp.Info()
	info[OptionTag] = "span"

	if bp.Tag() != "div" {
		t.Error("mutating Info() leaked into the blueprint")
	}
}

func TestChildrenInfoIsShallowCopy(t *testing.T) {
	child := Must(New("span", nil))
	bp := Must(New("div", nil, WithChild("c", child)))

	info := bp.ChildrenInfo()
	if info["c"] != child {
		t.Error("ChildrenInfo() lost the child")
	}
	delete(info, "c")
	if len(bp.ChildrenInfo()) != 1 {
		t.Error("mutating ChildrenInfo() leaked into the blueprint")
	}
}

func TestMutatorsChain(t *testing.T) {
	bp := Must(New("div", nil))
	got := bp.SetContent("x").SetOption(Options{OptionAttribute: map[string]any{"id": "i"}}).
		AddChildren(WithChild("c", Must(New("span", nil)))).
		RemoveChildren("c").
		RemoveOption(Options{OptionAttribute: "id"})
	if got != bp {
		t.Error("mutators do not return the receiver")
	}
}
