package render

import (
	"bytes"
	"io"

	"github.com/blueprint-dev/blueprint/pkg/dom"
)

// PageConfig describes the document scaffolding around a rendered body.
type PageConfig struct {
	// Title is the document title. Escaped.
	Title string

	// Lang is the html element's lang attribute. Defaults to "en".
	Lang string

	// Charset defaults to "utf-8".
	Charset string

	// Head holds raw markup fragments injected into <head> verbatim
	// (stylesheet links, meta tags).
	Head []string

	// BodyScript is raw markup appended just before </body>. Used by the
	// preview server to inject the reload client.
	BodyScript string
}

// RenderPage writes a complete HTML document with the element as the body
// content.
func (r *Renderer) RenderPage(w io.Writer, cfg PageConfig, body *dom.Element) error {
	if cfg.Lang == "" {
		cfg.Lang = "en"
	}
	if cfg.Charset == "" {
		cfg.Charset = "utf-8"
	}

	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<html lang="`+escapeAttr(cfg.Lang)+"\">\n<head>\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `<meta charset="`+escapeAttr(cfg.Charset)+"\">\n"); err != nil {
		return err
	}
	if cfg.Title != "" {
		if _, err := io.WriteString(w, "<title>"+escapeText(cfg.Title)+"</title>\n"); err != nil {
			return err
		}
	}
	for _, fragment := range cfg.Head {
		if _, err := io.WriteString(w, fragment+"\n"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</head>\n<body>\n"); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, body); err != nil {
		return err
	}
	if !r.config.Pretty {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	if cfg.BodyScript != "" {
		if _, err := io.WriteString(w, cfg.BodyScript+"\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}

// RenderPageToString renders a complete HTML document to a string.
func (r *Renderer) RenderPageToString(cfg PageConfig, body *dom.Element) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderPage(&buf, cfg, body); err != nil {
		return "", err
	}
	return buf.String(), nil
}
