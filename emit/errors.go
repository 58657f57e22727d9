package emit

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidModel indicates a structurally invalid builder graph.
	ErrInvalidModel = errors.New("sharpen: invalid model")
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("sharpen: invalid configuration")
)

// MissingConstInitializerError reports a const field without a usable
// initializer value.
type MissingConstInitializerError struct {
	Field string
}

// Error implements the error interface.
func (e *MissingConstInitializerError) Error() string {
	return fmt.Sprintf("sharpen: const field %q requires an initializer value", e.Field)
}

// Is reports whether the target matches the sentinel error for invalid models.
func (e *MissingConstInitializerError) Is(target error) bool {
	return target == ErrInvalidModel
}

// NewMissingConstInitializerError creates a new MissingConstInitializerError.
func NewMissingConstInitializerError(field string) *MissingConstInitializerError {
	return &MissingConstInitializerError{Field: field}
}

// ConflictingPropertyBodyError reports a property configured with both an
// expression body and an explicit accessor body.
type ConflictingPropertyBodyError struct {
	Property string
}

// Error implements the error interface.
func (e *ConflictingPropertyBodyError) Error() string {
	return fmt.Sprintf("sharpen: property %q combines an expression body with explicit accessor bodies", e.Property)
}

// Is reports whether the target matches the sentinel error for invalid models.
func (e *ConflictingPropertyBodyError) Is(target error) bool {
	return target == ErrInvalidModel
}

// NewConflictingPropertyBodyError creates a new ConflictingPropertyBodyError.
func NewConflictingPropertyBodyError(property string) *ConflictingPropertyBodyError {
	return &ConflictingPropertyBodyError{Property: property}
}

// ParameterlessStructConstructorError reports an explicit struct constructor
// declared without parameters. Value types must rely on the implicit default
// constructor instead.
type ParameterlessStructConstructorError struct {
	Struct string
}

// Error implements the error interface.
func (e *ParameterlessStructConstructorError) Error() string {
	return fmt.Sprintf("sharpen: struct %q declares a parameterless constructor", e.Struct)
}

// Is reports whether the target matches the sentinel error for invalid models.
func (e *ParameterlessStructConstructorError) Is(target error) bool {
	return target == ErrInvalidModel
}

// NewParameterlessStructConstructorError creates a new ParameterlessStructConstructorError.
func NewParameterlessStructConstructorError(structName string) *ParameterlessStructConstructorError {
	return &ParameterlessStructConstructorError{Struct: structName}
}

// ConfigError represents an invalid functional option. It is recorded when
// the option is applied and surfaced at render time, matching the deferred
// validation policy of the rest of the engine.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("sharpen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("sharpen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for configuration errors.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}

// IsMissingConstInitializer reports whether the error is a MissingConstInitializerError.
func IsMissingConstInitializer(err error) bool {
	var target *MissingConstInitializerError
	return errors.As(err, &target)
}

// IsConflictingPropertyBody reports whether the error is a ConflictingPropertyBodyError.
func IsConflictingPropertyBody(err error) bool {
	var target *ConflictingPropertyBodyError
	return errors.As(err, &target)
}

// IsParameterlessStructConstructor reports whether the error is a ParameterlessStructConstructorError.
func IsParameterlessStructConstructor(err error) bool {
	var target *ParameterlessStructConstructorError
	return errors.As(err, &target)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var target *ConfigError
	return errors.As(err, &target)
}
