// Package el provides the construction DSL for blueprints.
//
// It offers per-tag constructors over the blueprint package plus re-exported
// option helpers, so element trees read declaratively:
//
//	import (
//	    "github.com/blueprint-dev/blueprint/pkg/blueprint"
//	    . "github.com/blueprint-dev/blueprint/el"
//	)
//
//	form := Form(ID("search"),
//	    Input(Attr("type", "text"), Attr("name", "q")),
//	    Button(Attr("type", "submit"), "Go"),
//	)
//
// This keeps the DSL in a dedicated package while the builder semantics live
// in pkg/blueprint.
package el
