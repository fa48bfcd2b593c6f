package dom

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is a live element node. It owns the underlying html.Node and the
// listener registry attached to it.
type Element struct {
	node      *html.Node
	listeners map[string][]listenerEntry
}

// Create returns a fresh element for the given tag. Any attributes the
// environment pre-populates on a new node are stripped: a created element
// carries exactly the attributes later set on it.
func Create(tag string) *Element {
	node := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	node.Attr = nil
	return &Element{
		node:      node,
		listeners: make(map[string][]listenerEntry),
	}
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.node.Data
}

// Node returns the underlying html node. The tree below it is live: children
// appended via AppendChild and markup set via SetInnerHTML are reachable
// from here.
func (e *Element) Node() *html.Node {
	return e.node
}

// SetAttribute sets an attribute, replacing any existing value.
func (e *Element) SetAttribute(name, value string) {
	for i, a := range e.node.Attr {
		if a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// Attribute returns the value of an attribute and whether it is present.
func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// RemoveAttribute removes an attribute if present.
func (e *Element) RemoveAttribute(name string) {
	for i, a := range e.node.Attr {
		if a.Key == name {
			e.node.Attr = append(e.node.Attr[:i], e.node.Attr[i+1:]...)
			return
		}
	}
}

// Attributes returns a copy of the element's attributes in set order.
func (e *Element) Attributes() []html.Attribute {
	out := make([]html.Attribute, len(e.node.Attr))
	copy(out, e.node.Attr)
	return out
}

// SetDataset sets a dataset entry. The key is converted the way the DOM
// converts dataset properties: camelCase becomes a hyphenated data-*
// attribute ("userId" → data-user-id).
func (e *Element) SetDataset(key, value string) {
	e.SetAttribute("data-"+hyphenate(key), value)
}

// Dataset returns a dataset entry by its camelCase key.
func (e *Element) Dataset(key string) (string, bool) {
	return e.Attribute("data-" + hyphenate(key))
}

// SetStyleProperty sets one inline style property, preserving the order of
// properties already declared.
func (e *Element) SetStyleProperty(property, value string) {
	decls := parseStyle(e.styleText())
	decls = decls.set(property, value)
	e.SetAttribute("style", decls.String())
}

// StyleProperty returns the value of an inline style property.
func (e *Element) StyleProperty(property string) (string, bool) {
	return parseStyle(e.styleText()).get(property)
}

func (e *Element) styleText() string {
	v, _ := e.Attribute("style")
	return v
}

// SetInnerHTML replaces the element's children with the parse of the given
// markup. The markup is parsed as an HTML fragment in this element's
// context, so tag soup is repaired the way a document parser would.
func (e *Element) SetInnerHTML(markup string) error {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     e.node.Data,
		DataAtom: e.node.DataAtom,
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return err
	}
	e.removeChildren()
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
	return nil
}

// AppendChild appends another element as the last child.
func (e *Element) AppendChild(child *Element) {
	e.node.AppendChild(child.node)
}

// PrependText inserts a text node as the first content of the element. The
// text is not parsed as markup.
func (e *Element) PrependText(text string) {
	e.node.InsertBefore(&html.Node{Type: html.TextNode, Data: text}, e.node.FirstChild)
}

// AppendText inserts a text node as the last content of the element. The
// text is not parsed as markup.
func (e *Element) AppendText(text string) {
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Text returns the concatenated text content of the element's subtree in
// document order.
func (e *Element) Text() string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return sb.String()
}

func (e *Element) removeChildren() {
	for e.node.FirstChild != nil {
		e.node.RemoveChild(e.node.FirstChild)
	}
}

// hyphenate converts a camelCase dataset key to its hyphenated attribute
// form.
func hyphenate(key string) string {
	var sb strings.Builder
	sb.Grow(len(key) + 2)
	for _, r := range key {
		if unicode.IsUpper(r) {
			sb.WriteByte('-')
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// styleDecls is an ordered list of inline style declarations.
type styleDecls []styleDecl

type styleDecl struct {
	property string
	value    string
}

func parseStyle(text string) styleDecls {
	var decls styleDecls
	for _, part := range strings.Split(text, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		property, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		decls = append(decls, styleDecl{
			property: strings.TrimSpace(property),
			value:    strings.TrimSpace(value),
		})
	}
	return decls
}

func (d styleDecls) set(property, value string) styleDecls {
	for i := range d {
		if d[i].property == property {
			d[i].value = value
			return d
		}
	}
	return append(d, styleDecl{property: property, value: value})
}

func (d styleDecls) get(property string) (string, bool) {
	for _, decl := range d {
		if decl.property == property {
			return decl.value, true
		}
	}
	return "", false
}

func (d styleDecls) String() string {
	parts := make([]string, len(d))
	for i, decl := range d {
		parts[i] = decl.property + ": " + decl.value
	}
	return strings.Join(parts, "; ")
}
