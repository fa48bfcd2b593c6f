// Package render serializes produced elements to HTML.
//
// The renderer walks the live node tree behind a dom.Element and writes
// markup with text escaping, void-element handling and optional
// pretty-printing. It renders what Produce built: attributes appear in set
// order, raw-text elements (script, style) are written verbatim, and text
// nodes are escaped.
//
//	r := render.New(render.Config{})
//	htmlStr, err := r.RenderToString(element)
//
// For a complete document, RenderPage wraps a body element in the usual
// doctype/head/body scaffolding.
package render
