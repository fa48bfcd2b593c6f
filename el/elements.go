package el

import (
	"fmt"
	"strings"

	"github.com/blueprint-dev/blueprint/pkg/blueprint"
)

// construct creates a blueprint for the given tag and folds the arguments
// in. Arguments can be: nil, Options, Child, []Child, *Blueprint (added as a
// child under a positional key), or string (appended as trailing text).
func construct(tag string, args []any) *Blueprint {
	bp := blueprint.Must(blueprint.New(tag, nil))

	var text strings.Builder
	position := 0
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional arguments)
			continue

		case blueprint.Options:
			bp.SetOption(v)

		case blueprint.Child:
			bp.AddChildren(v)

		case []blueprint.Child:
			bp.AddChildren(v...)

		case *blueprint.Blueprint:
			if v != nil {
				bp.AddChildren(blueprint.WithChild(fmt.Sprintf("c%d", position), v))
				position++
			}

		case []*blueprint.Blueprint:
			for _, child := range v {
				if child != nil {
					bp.AddChildren(blueprint.WithChild(fmt.Sprintf("c%d", position), child))
					position++
				}
			}

		case string:
			text.WriteString(v)
		}
	}
	if text.Len() > 0 {
		bp.SetOption(blueprint.PostText(text.String()))
	}
	return bp
}

// Document structure elements

func Html(args ...any) *Blueprint  { return construct("html", args) }
func Head(args ...any) *Blueprint  { return construct("head", args) }
func Body(args ...any) *Blueprint  { return construct("body", args) }
func Title(args ...any) *Blueprint { return construct("title", args) }
func Meta(args ...any) *Blueprint  { return construct("meta", args) }
func Link(args ...any) *Blueprint  { return construct("link", args) }

// Content sectioning elements

func Header(args ...any) *Blueprint  { return construct("header", args) }
func Footer(args ...any) *Blueprint  { return construct("footer", args) }
func Main(args ...any) *Blueprint    { return construct("main", args) }
func Nav(args ...any) *Blueprint     { return construct("nav", args) }
func Section(args ...any) *Blueprint { return construct("section", args) }
func Article(args ...any) *Blueprint { return construct("article", args) }
func Aside(args ...any) *Blueprint   { return construct("aside", args) }
func H1(args ...any) *Blueprint      { return construct("h1", args) }
func H2(args ...any) *Blueprint      { return construct("h2", args) }
func H3(args ...any) *Blueprint      { return construct("h3", args) }
func H4(args ...any) *Blueprint      { return construct("h4", args) }
func H5(args ...any) *Blueprint      { return construct("h5", args) }
func H6(args ...any) *Blueprint      { return construct("h6", args) }

// Text content elements

func Div(args ...any) *Blueprint        { return construct("div", args) }
func P(args ...any) *Blueprint          { return construct("p", args) }
func Span(args ...any) *Blueprint       { return construct("span", args) }
func Pre(args ...any) *Blueprint        { return construct("pre", args) }
func Blockquote(args ...any) *Blueprint { return construct("blockquote", args) }
func Ul(args ...any) *Blueprint         { return construct("ul", args) }
func Ol(args ...any) *Blueprint         { return construct("ol", args) }
func Li(args ...any) *Blueprint         { return construct("li", args) }
func Dl(args ...any) *Blueprint         { return construct("dl", args) }
func Dt(args ...any) *Blueprint         { return construct("dt", args) }
func Dd(args ...any) *Blueprint         { return construct("dd", args) }
func Hr(args ...any) *Blueprint         { return construct("hr", args) }
func Figure(args ...any) *Blueprint     { return construct("figure", args) }
func Figcaption(args ...any) *Blueprint { return construct("figcaption", args) }

// Inline text semantics

func A(args ...any) *Blueprint      { return construct("a", args) }
func Strong(args ...any) *Blueprint { return construct("strong", args) }
func Em(args ...any) *Blueprint     { return construct("em", args) }
func B(args ...any) *Blueprint      { return construct("b", args) }
func I(args ...any) *Blueprint      { return construct("i", args) }
func Small(args ...any) *Blueprint  { return construct("small", args) }
func Mark(args ...any) *Blueprint   { return construct("mark", args) }
func Code(args ...any) *Blueprint   { return construct("code", args) }
func Kbd(args ...any) *Blueprint    { return construct("kbd", args) }
func Abbr(args ...any) *Blueprint   { return construct("abbr", args) }
func Time_(args ...any) *Blueprint  { return construct("time", args) }
func Cite(args ...any) *Blueprint   { return construct("cite", args) }
func Q(args ...any) *Blueprint      { return construct("q", args) }
func Br(args ...any) *Blueprint     { return construct("br", args) }

// Form elements

func Form(args ...any) *Blueprint     { return construct("form", args) }
func Input(args ...any) *Blueprint    { return construct("input", args) }
func Textarea(args ...any) *Blueprint { return construct("textarea", args) }
func Select(args ...any) *Blueprint   { return construct("select", args) }
func Option(args ...any) *Blueprint   { return construct("option", args) }
func Button(args ...any) *Blueprint   { return construct("button", args) }
func Label(args ...any) *Blueprint    { return construct("label", args) }
func Fieldset(args ...any) *Blueprint { return construct("fieldset", args) }
func Legend(args ...any) *Blueprint   { return construct("legend", args) }
func Output(args ...any) *Blueprint   { return construct("output", args) }
func Progress(args ...any) *Blueprint { return construct("progress", args) }

// Table elements

func Table(args ...any) *Blueprint   { return construct("table", args) }
func Thead(args ...any) *Blueprint   { return construct("thead", args) }
func Tbody(args ...any) *Blueprint   { return construct("tbody", args) }
func Tfoot(args ...any) *Blueprint   { return construct("tfoot", args) }
func Tr(args ...any) *Blueprint      { return construct("tr", args) }
func Th(args ...any) *Blueprint      { return construct("th", args) }
func Td(args ...any) *Blueprint      { return construct("td", args) }
func Caption(args ...any) *Blueprint { return construct("caption", args) }

// Media elements

func Img(args ...any) *Blueprint    { return construct("img", args) }
func Video(args ...any) *Blueprint  { return construct("video", args) }
func Audio(args ...any) *Blueprint  { return construct("audio", args) }
func Source(args ...any) *Blueprint { return construct("source", args) }
func Canvas(args ...any) *Blueprint { return construct("canvas", args) }
func Iframe(args ...any) *Blueprint { return construct("iframe", args) }

// Interactive elements

func Details(args ...any) *Blueprint { return construct("details", args) }
func Summary(args ...any) *Blueprint { return construct("summary", args) }
func Dialog(args ...any) *Blueprint  { return construct("dialog", args) }

// Scripting elements

func Script(args ...any) *Blueprint   { return construct("script", args) }
func Noscript(args ...any) *Blueprint { return construct("noscript", args) }
func Style(args ...any) *Blueprint    { return construct("style", args) }

// CustomElement creates a blueprint with a custom tag name.
func CustomElement(tag string, args ...any) (*Blueprint, error) {
	if tag == "" {
		return nil, blueprint.ErrEmptyTag
	}
	return construct(tag, args), nil
}
