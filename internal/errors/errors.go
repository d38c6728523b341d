// Package errors provides the error taxonomy for the agentricai CLI and its
// supporting packages.
//
// Coordinator decisions (accepted, rejected, bad token) are never errors;
// they are reported as outcomes. Errors in this package cover everything
// around the coordinator: malformed scripts, invalid configuration, bad
// command-line input and cancellation.
//
// # Usage
//
//	err := errors.NewScriptError("step has no action", errors.ErrScriptInvalid).WithStep(2)
//
//	if errors.Is(err, errors.ErrScriptInvalid) { ... }
//
//	var scriptErr *errors.ScriptError
//	if errors.As(err, &scriptErr) { fmt.Println(scriptErr.Step) }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions so callers only import this package.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
	// ErrScriptInvalid indicates that an instruction script is malformed.
	ErrScriptInvalid = New("script is invalid")
	// ErrUnknownAction indicates a script step with an unrecognized action.
	ErrUnknownAction = New("unknown action")
	// ErrCanceled indicates that an operation was canceled.
	ErrCanceled = New("operation canceled")
	// ErrConfigInvalid indicates that the loaded configuration failed validation.
	ErrConfigInvalid = New("configuration is invalid")
)

// -----------------------------------------------------------------------------
// Base Error
// -----------------------------------------------------------------------------

// CoordinatorError is implemented by every error type in this package.
type CoordinatorError interface {
	error
	Unwrap() error
	Severity() Severity
	IsUserFacing() bool
}

type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Unwrap() error      { return e.cause }
func (e *baseError) Severity() Severity { return e.severity }
func (e *baseError) IsUserFacing() bool { return e.userFacing }

// format renders "<kind> [k=v, ...]: message: cause".
func (e *baseError) format(kind string, parts []string) string {
	prefix := kind
	if len(parts) > 0 {
		prefix = fmt.Sprintf("%s [%s]", kind, strings.Join(parts, ", "))
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// -----------------------------------------------------------------------------
// Script Errors
// -----------------------------------------------------------------------------

// ScriptError reports a problem with an instruction script.
//
// Example:
//
//	err := errors.NewScriptError("step sets both authorize and instruct", errors.ErrScriptInvalid).
//	    WithStep(3).WithAction("instruct")
//	fmt.Println(err) // "script error [step=3, action=instruct]: step sets both ...: script is invalid"
type ScriptError struct {
	baseError
	Step   int // 1-based; 0 when the error is not tied to a step
	Action string
}

// NewScriptError creates a new ScriptError.
func NewScriptError(message string, cause error) *ScriptError {
	return &ScriptError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			userFacing: true,
		},
	}
}

// WithStep records the 1-based step number.
func (e *ScriptError) WithStep(step int) *ScriptError {
	e.Step = step
	return e
}

// WithAction records the step's action.
func (e *ScriptError) WithAction(action string) *ScriptError {
	e.Action = action
	return e
}

// Error returns the formatted error message.
func (e *ScriptError) Error() string {
	var parts []string
	if e.Step > 0 {
		parts = append(parts, fmt.Sprintf("step=%d", e.Step))
	}
	if e.Action != "" {
		parts = append(parts, fmt.Sprintf("action=%s", e.Action))
	}
	return e.format("script error", parts)
}

// Is matches any *ScriptError and anything the cause matches.
func (e *ScriptError) Is(target error) bool {
	if _, ok := target.(*ScriptError); ok {
		return true
	}
	return e.cause != nil && errors.Is(e.cause, target)
}

// -----------------------------------------------------------------------------
// Validation Errors
// -----------------------------------------------------------------------------

// ValidationError represents invalid input.
//
// Example:
//
//	err := errors.NewValidationError("task must not be empty").WithField("task")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}
	return e.format("validation error", parts)
}

// Is matches any *ValidationError, ErrInvalidInput, and anything the cause matches.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if target == ErrInvalidInput {
		return true
	}
	return e.cause != nil && errors.Is(e.cause, target)
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// IsUserFacing returns true if the error message is safe to print as-is.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	var ce CoordinatorError
	if As(err, &ce) {
		return ce.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors from outside this package.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}
	var ce CoordinatorError
	if As(err, &ce) {
		return ce.Severity()
	}
	return SeverityError
}

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
