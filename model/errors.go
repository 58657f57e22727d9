package model

import (
	"errors"
	"strings"
)

// ErrInvalidSchema indicates a schema document error.
var ErrInvalidSchema = errors.New("sharpen: invalid schema")

// SchemaError represents a schema document error.
type SchemaError struct {
	Container string // container name, if known
	Member    string // member name, if applicable
	Message   string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("sharpen: schema error")
	if e.Container != "" {
		b.WriteString(" on container ")
		b.WriteString(e.Container)
	}
	if e.Member != "" {
		b.WriteString(" member ")
		b.WriteString(e.Member)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(container, member, message string) *SchemaError {
	return &SchemaError{Container: container, Member: member, Message: message}
}

// IsSchemaError reports whether the error is a SchemaError.
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}
