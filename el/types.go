package el

import "github.com/blueprint-dev/blueprint/pkg/blueprint"

// Type aliases for the blueprint primitives used by the DSL.
type Blueprint = blueprint.Blueprint
type Options = blueprint.Options
type Child = blueprint.Child
