package errors

import (
	"bufio"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Category represents the type of error.
type Category string

const (
	CategoryDocument   Category = "document"
	CategoryBlueprint  Category = "blueprint"
	CategoryRender     Category = "render"
	CategoryPublish    Category = "publish"
	CategoryServer     Category = "server"
	CategoryConfig     Category = "config"
	CategoryValidation Category = "validation"
	CategoryCLI        Category = "cli"
)

// Location represents a position in a source document.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// BlueprintError is a structured error with document location, suggestions,
// and documentation links.
type BlueprintError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (document, render, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the document position where the error occurred.
	Location *Location

	// Context contains surrounding document lines.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example is a snippet showing the correct form.
	Example string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *BlueprintError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *BlueprintError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a document location to the error.
func (e *BlueprintError) WithLocation(file string, line, column int) *BlueprintError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, 5)
	return e
}

// WithYAMLNode extracts the location from a parsed YAML node.
func (e *BlueprintError) WithYAMLNode(file string, node *yaml.Node) *BlueprintError {
	if node == nil {
		return e
	}
	return e.WithLocation(file, node.Line, node.Column)
}

// WithSuggestion adds a fix suggestion to the error.
func (e *BlueprintError) WithSuggestion(s string) *BlueprintError {
	e.Suggestion = s
	return e
}

// WithExample adds an example snippet to the error.
func (e *BlueprintError) WithExample(ex string) *BlueprintError {
	e.Example = ex
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *BlueprintError) WithDetail(d string) *BlueprintError {
	e.Detail = d
	return e
}

// WithContext adds custom context lines to the error.
func (e *BlueprintError) WithContext(lines []string) *BlueprintError {
	e.Context = lines
	return e
}

// Wrap wraps another error.
func (e *BlueprintError) Wrap(err error) *BlueprintError {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates a BlueprintError from a registered error code.
func New(code string) *BlueprintError {
	template, ok := registry[code]
	if !ok {
		return &BlueprintError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &BlueprintError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new BlueprintError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *BlueprintError {
	return &BlueprintError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a BlueprintError.
func FromError(err error, code string) *BlueprintError {
	if err == nil {
		return nil
	}
	if be, ok := err.(*BlueprintError); ok {
		return be
	}
	return New(code).Wrap(err)
}
