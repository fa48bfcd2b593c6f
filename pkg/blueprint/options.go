package blueprint

import (
	"strings"

	"github.com/blueprint-dev/blueprint/pkg/dom"
	"github.com/blueprint-dev/blueprint/pkg/dyn"
)

// Option constructors. Each returns a one-entry Options value suitable for
// New or SetOption; because SetOption deep-merges, repeated calls union
// rather than clobber.

// Attr sets an attribute.
func Attr(name string, value any) Options {
	return Options{OptionAttribute: map[string]any{name: value}}
}

// ID sets the id attribute.
func ID(id string) Options { return Attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Options { return Attr("class", strings.Join(classes, " ")) }

// Data sets a dataset entry by camelCase key.
func Data(key string, value any) Options {
	return Options{OptionDataset: map[string]any{key: value}}
}

// StyleProp sets an inline style property.
func StyleProp(property string, value any) Options {
	return Options{OptionStyle: map[string]any{property: value}}
}

// Content sets the inner markup. The value is parsed as markup during
// Produce, not escaped.
func Content(markup string) Options {
	return Options{OptionContent: markup}
}

// Text appends a plain value as the element's last text node.
func Text(v any) Options {
	return Options{OptionText: v}
}

// PreText inserts a plain value as the element's first content.
func PreText(v any) Options {
	return Options{OptionText: map[string]any{TextPre: v}}
}

// PostText inserts a plain value as the element's last content.
func PostText(v any) Options {
	return Options{OptionText: map[string]any{TextPost: v}}
}

// On registers an event listener.
func On(event string, handler dom.HandlerFunc) Options {
	return Options{OptionListener: map[string]any{event: handler}}
}

// OnWith registers an event listener with options (once, capture).
func OnWith(event string, handler dom.HandlerFunc, opts dom.ListenerOptions) Options {
	return Options{OptionListener: map[string]any{event: dom.Listener{Handler: handler, Options: opts}}}
}

// Combine deep-merges several option values into one, later entries
// overriding earlier scalars. The inputs are never mutated.
func Combine(opts ...Options) Options {
	out := make(map[string]any)
	for _, o := range opts {
		dyn.Merge(out, map[string]any(o))
	}
	return Options(out)
}
