package blueprint

import (
	"fmt"
	"sort"

	"github.com/blueprint-dev/blueprint/pkg/dom"
	"github.com/blueprint-dev/blueprint/pkg/dyn"
)

// Option keys recognized by Produce. Unknown keys are carried in the
// description but ignored during materialization.
const (
	OptionTag       = "tag"
	OptionContent   = "content"
	OptionAttribute = "attribute"
	OptionDataset   = "dataset"
	OptionStyle     = "style"
	OptionListener  = "listener"
	OptionText      = "text"
)

// Insertion-position tags for the text option. Unrecognized position tags
// are silently skipped.
const (
	TextPre  = "pre"
	TextPost = "post"
)

// Options is the dynamic description of an element. Values are merged with
// dyn.Merge semantics: composites union entry-by-entry, scalars replace.
type Options map[string]any

// Child names a nested blueprint within its parent.
type Child struct {
	Key       string
	Blueprint *Blueprint
}

// WithChild pairs a key with a child blueprint.
func WithChild(key string, bp *Blueprint) Child {
	return Child{Key: key, Blueprint: bp}
}

// Blueprint is a declarative element description plus at most one produced
// live element.
type Blueprint struct {
	opts     map[string]any
	children *childSet
	element  *dom.Element
}

// New creates a blueprint for the given tag. Options are merged over the
// base description {tag, content: ""}, so option fields override. The tag
// is not validated against any element vocabulary; materialization fails
// downstream if the environment rejects it.
func New(tag string, opts Options, children ...Child) (*Blueprint, error) {
	if tag == "" {
		return nil, ErrEmptyTag
	}
	base := map[string]any{
		OptionTag:     tag,
		OptionContent: "",
	}
	dyn.Merge(base, map[string]any(opts))

	b := &Blueprint{
		opts:     base,
		children: newChildSet(),
	}
	b.AddChildren(children...)
	return b, nil
}

// Must returns bp and panics when err is non-nil. Intended for blueprints
// built from constant tags.
func Must(bp *Blueprint, err error) *Blueprint {
	if err != nil {
		panic(err)
	}
	return bp
}

// Produce materializes the blueprint into a fresh live element. Each call
// creates a new element and registers listeners anew; there is no
// deduplication across calls. The produced element is retained and
// retrievable via Element until the next Produce.
func (b *Blueprint) Produce() (*dom.Element, error) {
	el := dom.Create(optionString(b.opts[OptionTag]))

	if attrs, ok := dyn.AsMapping(b.opts[OptionAttribute]); ok {
		for _, name := range sortedKeys(attrs) {
			el.SetAttribute(name, optionString(attrs[name]))
		}
	}

	if dataset, ok := dyn.AsMapping(b.opts[OptionDataset]); ok {
		for _, key := range sortedKeys(dataset) {
			el.SetDataset(key, optionString(dataset[key]))
		}
	}

	if style, ok := dyn.AsMapping(b.opts[OptionStyle]); ok {
		for _, property := range sortedKeys(style) {
			el.SetStyleProperty(property, optionString(style[property]))
		}
	}

	if listeners, ok := dyn.AsMapping(b.opts[OptionListener]); ok {
		for _, event := range sortedKeys(listeners) {
			registerListener(el, event, listeners[event])
		}
	}

	if content, present := b.opts[OptionContent]; present {
		markup, ok := content.(string)
		if !ok {
			return nil, &ContentTypeError{Field: OptionContent, Value: content}
		}
		if markup != "" {
			if err := el.SetInnerHTML(markup); err != nil {
				return nil, fmt.Errorf("blueprint: content markup: %w", err)
			}
		}
	}

	for _, key := range b.children.keys {
		childEl, err := b.children.index[key].Produce()
		if err != nil {
			return nil, fmt.Errorf("blueprint: child %q: %w", key, err)
		}
		el.AppendChild(childEl)
	}

	b.applyText(el)

	b.element = el
	return el, nil
}

// applyText inserts the text option. A mapping places entries by position
// tag; any other value is appended as the last text node.
func (b *Blueprint) applyText(el *dom.Element) {
	text, present := b.opts[OptionText]
	if !present || text == nil {
		return
	}
	positions, ok := dyn.AsMapping(text)
	if !ok {
		el.AppendText(optionString(text))
		return
	}
	if v, ok := positions[TextPre]; ok {
		el.PrependText(optionString(v))
	}
	if v, ok := positions[TextPost]; ok {
		el.AppendText(optionString(v))
	}
}

// registerListener accepts a bare handler or a handler/options pair.
// Anything else is not a listener and is skipped, matching the pass-through
// treatment of other malformed option values.
func registerListener(el *dom.Element, event string, v any) {
	switch handler := v.(type) {
	case dom.HandlerFunc:
		el.AddEventListener(event, handler)
	case func(dom.Event):
		el.AddEventListener(event, handler)
	case dom.Listener:
		el.AddEventListener(event, handler.Handler, handler.Options)
	case *dom.Listener:
		el.AddEventListener(event, handler.Handler, handler.Options)
	}
}

// SetContent replaces the content option in place. It does not re-produce:
// a previously produced element keeps its markup.
func (b *Blueprint) SetContent(v any) *Blueprint {
	b.opts[OptionContent] = v
	return b
}

// SetOption deep-merges opts into the current description: composite values
// merge entry-by-entry with existing ones, scalars replace.
func (b *Blueprint) SetOption(opts Options) *Blueprint {
	dyn.Merge(b.opts, map[string]any(opts))
	return b
}

// RemoveOption deletes nested option entries. Each top-level key selects an
// option field and its value names the nested key (or keys) to delete:
//
//	bp.RemoveOption(blueprint.Options{blueprint.OptionAttribute: "id"})
//
// removes the "id" entry from the attribute mapping. Fields that are not
// mappings are left untouched.
func (b *Blueprint) RemoveOption(opts Options) *Blueprint {
	for field, name := range opts {
		entries, ok := dyn.AsMapping(b.opts[field])
		if !ok {
			continue
		}
		switch n := name.(type) {
		case string:
			delete(entries, n)
		default:
			if names, ok := dyn.AsSequence(n); ok {
				for _, cand := range names {
					if s, ok := cand.(string); ok {
						delete(entries, s)
					}
				}
			}
		}
		b.opts[field] = entries
	}
	return b
}

// AddChildren adds child blueprints. Re-adding an existing key replaces the
// child but keeps its position; new keys append in call order. Entries with
// an empty key or nil blueprint are skipped.
func (b *Blueprint) AddChildren(children ...Child) *Blueprint {
	for _, c := range children {
		if c.Key == "" || c.Blueprint == nil {
			continue
		}
		b.children.set(c.Key, c.Blueprint)
	}
	return b
}

// RemoveChildren deletes child blueprints by key. Unknown keys are ignored.
func (b *Blueprint) RemoveChildren(keys ...string) *Blueprint {
	for _, key := range keys {
		b.children.remove(key)
	}
	return b
}

// Element returns the most recently produced live element, or nil if the
// blueprint was never produced.
func (b *Blueprint) Element() *dom.Element {
	return b.element
}

// Tag returns the current tag option.
func (b *Blueprint) Tag() string {
	return optionString(b.opts[OptionTag])
}

// Info returns a shallow copy of the current description. Mutating the
// returned map does not affect the blueprint; nested composites are shared.
func (b *Blueprint) Info() Options {
	out := make(Options, len(b.opts))
	for k, v := range b.opts {
		out[k] = v
	}
	return out
}

// ChildrenInfo returns a shallow copy of the child map.
func (b *Blueprint) ChildrenInfo() map[string]*Blueprint {
	out := make(map[string]*Blueprint, len(b.children.keys))
	for key, child := range b.children.index {
		out[key] = child
	}
	return out
}

// ChildKeys returns the child keys in insertion order.
func (b *Blueprint) ChildKeys() []string {
	out := make([]string, len(b.children.keys))
	copy(out, b.children.keys)
	return out
}

// childSet is an insertion-ordered map of child blueprints. Produce appends
// children in this order.
type childSet struct {
	keys  []string
	index map[string]*Blueprint
}

func newChildSet() *childSet {
	return &childSet{index: make(map[string]*Blueprint)}
}

func (s *childSet) set(key string, bp *Blueprint) {
	if _, exists := s.index[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.index[key] = bp
}

func (s *childSet) remove(key string) {
	if _, exists := s.index[key]; !exists {
		return
	}
	delete(s.index, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
}

// optionString converts an option value to its attribute form.
func optionString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		if s {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", s)
	case int64:
		return fmt.Sprintf("%d", s)
	case float64:
		return fmt.Sprintf("%g", s)
	default:
		return fmt.Sprintf("%v", s)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
