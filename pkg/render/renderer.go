package render

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"

	"github.com/blueprint-dev/blueprint/pkg/dom"
)

// Config configures the HTML renderer.
type Config struct {
	// Pretty enables pretty-printed output with indentation. Intended for
	// development; it increases output size.
	Pretty bool

	// Indent is the string used per indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string
}

// Renderer serializes element trees to HTML.
type Renderer struct {
	config Config
}

// New creates a Renderer with the given configuration.
func New(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders an element tree to an HTML string.
func (r *Renderer) RenderToString(el *dom.Element) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, el); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams an element tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, el *dom.Element) error {
	if el == nil {
		return nil
	}
	return r.renderNode(w, el.Node(), 0)
}

// renderNode dispatches rendering based on node type.
func (r *Renderer) renderNode(w io.Writer, n *html.Node, depth int) error {
	if n == nil {
		return nil
	}

	switch n.Type {
	case html.ElementNode:
		return r.renderElement(w, n, depth)
	case html.TextNode:
		_, err := io.WriteString(w, escapeText(n.Data))
		return err
	case html.CommentNode:
		_, err := fmt.Fprintf(w, "<!--%s-->", n.Data)
		return err
	case html.RawNode:
		_, err := io.WriteString(w, n.Data)
		return err
	default:
		return fmt.Errorf("render: unsupported node type: %d", n.Type)
	}
}

// renderElement renders an element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, n *html.Node, depth int) error {
	tag := n.Data

	if r.config.Pretty && depth > 0 {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	for _, a := range n.Attr {
		if isBooleanAttr(a.Key) && (a.Val == "" || a.Val == "true") {
			if _, err := io.WriteString(w, " "+a.Key); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, a.Key, escapeAttr(a.Val)); err != nil {
			return err
		}
	}

	if isVoidElement(tag) {
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		return r.maybeNewline(w)
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	raw := isRawTextElement(tag)
	blockChildren := n.FirstChild != nil && !isInlineElement(tag) && !raw
	if r.config.Pretty && blockChildren {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if raw && c.Type == html.TextNode {
			if _, err := io.WriteString(w, c.Data); err != nil {
				return err
			}
			continue
		}
		if err := r.renderNode(w, c, depth+1); err != nil {
			return err
		}
	}

	if r.config.Pretty && blockChildren {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "</"+tag+">"); err != nil {
		return err
	}
	return r.maybeNewline(w)
}

func (r *Renderer) maybeNewline(w io.Writer) error {
	if !r.config.Pretty {
		return nil
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (r *Renderer) writeIndent(w io.Writer, depth int) error {
	for i := 0; i < depth; i++ {
		if _, err := io.WriteString(w, r.config.Indent); err != nil {
			return err
		}
	}
	return nil
}
