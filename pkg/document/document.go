package document

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/blueprint-dev/blueprint/internal/errors"
	"github.com/blueprint-dev/blueprint/pkg/blueprint"
	"github.com/blueprint-dev/blueprint/pkg/render"
)

// Document is a parsed page description.
type Document struct {
	// Title is the page title.
	Title string

	// Lang is the html element's lang attribute.
	Lang string

	// Head holds raw markup fragments for the document head.
	Head []string

	// Body is the root element node.
	Body *Node

	path string
}

// Node is one element description in a document.
type Node struct {
	// Tag names the HTML element.
	Tag string

	// Options holds raw blueprint option fields (attribute, dataset,
	// style, content, text).
	Options map[string]any

	// Children are the named child nodes in document order.
	Children []ChildNode
}

// ChildNode pairs a child key with its node.
type ChildNode struct {
	Key  string
	Node *Node
}

// Load reads and parses a document file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E142").
				WithDetail("No document at " + path)
		}
		return nil, errors.New("E001").Wrap(err)
	}
	return Parse(data, path)
}

// Parse parses document YAML. The name is used in error locations.
func Parse(data []byte, name string) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.New("E001").
			WithDetail(err.Error())
	}
	if len(root.Content) == 0 {
		return nil, errors.New("E007").
			WithDetail("The document file is empty")
	}

	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, errors.New("E001").
			WithYAMLNode(name, top).
			WithDetail("The top level of a document must be a mapping")
	}

	doc := &Document{path: name}
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, val := top.Content[i], top.Content[i+1]
		switch key.Value {
		case "title":
			doc.Title = val.Value
		case "lang":
			doc.Lang = val.Value
		case "head":
			if err := val.Decode(&doc.Head); err != nil {
				return nil, errors.New("E001").
					WithYAMLNode(name, val).
					WithDetail("'head' must be a sequence of markup strings")
			}
		case "body":
			body, err := parseNode(val, name)
			if err != nil {
				return nil, err
			}
			doc.Body = body
		default:
			return nil, errors.New("E005").
				WithYAMLNode(name, key).
				WithDetail("Unknown document field " + quote(key.Value)).
				WithSuggestion("Document fields are: title, lang, head, body")
		}
	}

	if doc.Body == nil {
		return nil, errors.New("E007").
			WithLocation(name, top.Line, top.Column)
	}
	return doc, nil
}

// parseNode parses one element node, preserving child order.
func parseNode(n *yaml.Node, name string) (*Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errors.New("E003").
			WithYAMLNode(name, n)
	}

	node := &Node{Options: map[string]any{}}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		switch key.Value {
		case "tag":
			node.Tag = val.Value
		case "options":
			if err := val.Decode(&node.Options); err != nil {
				return nil, errors.New("E006").
					WithYAMLNode(name, val).
					WithDetail(err.Error())
			}
		case "content":
			node.Options[blueprint.OptionContent] = val.Value
		case "text":
			var text any
			if err := val.Decode(&text); err != nil {
				return nil, errors.New("E006").
					WithYAMLNode(name, val).
					WithDetail(err.Error())
			}
			node.Options[blueprint.OptionText] = text
		case "attributes":
			var attrs map[string]any
			if err := val.Decode(&attrs); err != nil {
				return nil, errors.New("E006").
					WithYAMLNode(name, val).
					WithDetail("'attributes' must be a mapping")
			}
			node.Options[blueprint.OptionAttribute] = attrs
		case "children":
			if val.Kind != yaml.MappingNode {
				return nil, errors.New("E004").
					WithYAMLNode(name, val)
			}
			for j := 0; j+1 < len(val.Content); j += 2 {
				childKey, childVal := val.Content[j], val.Content[j+1]
				child, err := parseNode(childVal, name)
				if err != nil {
					return nil, err
				}
				node.Children = append(node.Children, ChildNode{
					Key:  childKey.Value,
					Node: child,
				})
			}
		default:
			return nil, errors.New("E005").
				WithYAMLNode(name, key).
				WithDetail("Unknown element field " + quote(key.Value)).
				WithSuggestion("Element fields are: tag, options, content, text, attributes, children")
		}
	}

	if node.Tag == "" {
		return nil, errors.New("E002").
			WithYAMLNode(name, n).
			WithSuggestion("Add a 'tag' field naming the element, e.g. tag: div")
	}
	return node, nil
}

// Blueprint builds the blueprint tree for the document body.
func (d *Document) Blueprint() (*blueprint.Blueprint, error) {
	return d.Body.Blueprint()
}

// Blueprint builds the blueprint for this node and its children.
func (n *Node) Blueprint() (*blueprint.Blueprint, error) {
	children := make([]blueprint.Child, 0, len(n.Children))
	for _, c := range n.Children {
		child, err := c.Node.Blueprint()
		if err != nil {
			return nil, err
		}
		children = append(children, blueprint.WithChild(c.Key, child))
	}

	bp, err := blueprint.New(n.Tag, blueprint.Options(n.Options), children...)
	if err != nil {
		return nil, errors.New("E020").Wrap(err)
	}
	return bp, nil
}

// Page returns the render scaffolding for this document.
func (d *Document) Page() render.PageConfig {
	return render.PageConfig{
		Title: d.Title,
		Lang:  d.Lang,
		Head:  append([]string(nil), d.Head...),
	}
}

// Path returns the file the document was loaded from. Empty for documents
// parsed from memory.
func (d *Document) Path() string {
	return d.path
}

// Name returns the document's base name without extension, used as the
// output file stem.
func (d *Document) Name() string {
	base := filepath.Base(d.path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func quote(s string) string {
	return "'" + s + "'"
}
