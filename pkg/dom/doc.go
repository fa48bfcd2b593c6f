// Package dom provides the live element layer that blueprints materialize
// into.
//
// An Element wraps a golang.org/x/net/html node and adds the pieces that
// library has no notion of: dataset entries, inline style properties, and an
// event listener registry with synchronous dispatch. The wrapped node tree
// is real parser output, so a produced element can be handed straight to any
// consumer of x/net/html nodes (including the render package).
//
// Elements are not safe for concurrent use. Each element is expected to be
// owned by a single builder or caller at a time.
package dom
