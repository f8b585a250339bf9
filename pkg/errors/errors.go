package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeArtifact represents artifact read/parse errors
	ErrorTypeArtifact ErrorType = "artifact"
	// ErrorTypeChart represents chart rendering errors
	ErrorTypeChart ErrorType = "chart"
	// ErrorTypeLayout represents page composition errors
	ErrorTypeLayout ErrorType = "layout"
	// ErrorTypeSession represents session handling errors
	ErrorTypeSession ErrorType = "session"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Artifact Errors

// ErrArtifactRead is returned when an artifact file cannot be read
type ErrArtifactRead struct {
	*BaseError
	Path string
}

func NewArtifactRead(path string, err error) *ErrArtifactRead {
	return &ErrArtifactRead{
		BaseError: NewBaseError(ErrorTypeArtifact, fmt.Sprintf("failed to read artifact: %s", path), err),
		Path:      path,
	}
}

// ErrArtifactParse is returned when an artifact file cannot be decoded
type ErrArtifactParse struct {
	*BaseError
	Path string
}

func NewArtifactParse(path string, err error) *ErrArtifactParse {
	return &ErrArtifactParse{
		BaseError: NewBaseError(ErrorTypeArtifact, fmt.Sprintf("failed to parse artifact: %s", path), err),
		Path:      path,
	}
}

// ErrArtifactInvariant is returned when a decoded artifact violates its
// structural invariants (non-square adjacency, missing cluster names)
type ErrArtifactInvariant struct {
	*BaseError
	Path   string
	Reason string
}

func NewArtifactInvariant(path, reason string) *ErrArtifactInvariant {
	return &ErrArtifactInvariant{
		BaseError: NewBaseError(ErrorTypeArtifact, fmt.Sprintf("artifact invariant violated: %s - %s", path, reason), nil),
		Path:      path,
		Reason:    reason,
	}
}

// Chart Errors

// ErrChartRender is returned when a figure cannot be serialized
type ErrChartRender struct {
	*BaseError
	Chart string
}

func NewChartRender(chart string, err error) *ErrChartRender {
	return &ErrChartRender{
		BaseError: NewBaseError(ErrorTypeChart, fmt.Sprintf("failed to render chart: %s", chart), err),
		Chart:     chart,
	}
}

// Layout Errors

// ErrLayoutCompose is returned when the page template fails to execute
type ErrLayoutCompose struct {
	*BaseError
	Template string
}

func NewLayoutCompose(template string, err error) *ErrLayoutCompose {
	return &ErrLayoutCompose{
		BaseError: NewBaseError(ErrorTypeLayout, fmt.Sprintf("failed to compose layout: %s", template), err),
		Template:  template,
	}
}

// Config Errors

// ErrConfigMissingRequired is returned when a required config value is missing
type ErrConfigMissingRequired struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ErrConfigMissingRequired {
	return &ErrConfigMissingRequired{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// Helper functions

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errType ErrorType) bool {
	if baseErr, ok := err.(*BaseError); ok {
		return baseErr.Type == errType
	}
	// Check wrapped errors
	if baseErr, ok := err.(interface{ Unwrap() error }); ok {
		return IsErrorType(baseErr.Unwrap(), errType)
	}
	return false
}
