package blueprint

import (
	"errors"
	"fmt"
)

// ErrEmptyTag is returned by New when the tag is empty.
var ErrEmptyTag = errors.New("blueprint: tag must be a non-empty string")

// ContentTypeError reports that Produce found a non-string content option.
// This is the only precondition Produce validates; all other malformed
// option values pass through to the element layer.
type ContentTypeError struct {
	Field string
	Value any
}

// Error implements the error interface. The message names the offending
// field.
func (e *ContentTypeError) Error() string {
	return fmt.Sprintf("blueprint: option %q must be a string, got %T", e.Field, e.Value)
}
