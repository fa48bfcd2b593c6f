// Package blueprint implements declarative element construction.
//
// A Blueprint holds a description of an element — tag, attributes, dataset
// entries, inline style properties, event listeners, inner markup, insertion
// text — plus an ordered set of named child blueprints. Calling Produce
// materializes the description into a live dom.Element, recursively
// producing children first. Every Produce call creates a fresh element;
// mutating the blueprint afterwards never updates elements produced earlier.
//
//	bp := blueprint.Must(blueprint.New("button", blueprint.Options{
//	    blueprint.OptionAttribute: map[string]any{"type": "submit"},
//	    blueprint.OptionContent:   "<b>Save</b>",
//	}))
//	el, err := bp.Produce()
//
// Blueprints are single-owner: no internal locking, no concurrent use.
package blueprint
