// This file re-exports blueprint option helpers for the el package.
package el

import (
	"github.com/blueprint-dev/blueprint/pkg/blueprint"
	"github.com/blueprint-dev/blueprint/pkg/dom"
)

func Attr(name string, value any) Options {
	return blueprint.Attr(name, value)
}
func ID(id string) Options {
	return blueprint.ID(id)
}
func Class(classes ...string) Options {
	return blueprint.Class(classes...)
}
func Data(key string, value any) Options {
	return blueprint.Data(key, value)
}
func StyleProp(property string, value any) Options {
	return blueprint.StyleProp(property, value)
}
func Content(markup string) Options {
	return blueprint.Content(markup)
}
func Text(v any) Options {
	return blueprint.Text(v)
}
func PreText(v any) Options {
	return blueprint.PreText(v)
}
func PostText(v any) Options {
	return blueprint.PostText(v)
}
func On(event string, handler dom.HandlerFunc) Options {
	return blueprint.On(event, handler)
}
func OnWith(event string, handler dom.HandlerFunc, opts dom.ListenerOptions) Options {
	return blueprint.OnWith(event, handler, opts)
}
func Combine(opts ...Options) Options {
	return blueprint.Combine(opts...)
}
func WithChild(key string, bp *Blueprint) Child {
	return blueprint.WithChild(key, bp)
}
