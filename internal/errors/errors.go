// Package errors provides structured, actionable errors for Graft's tooling
// surfaces (configuration, CLI, server).
//
// The hydration core does not use this package: its invariant violations are
// programming errors and panic. Tooling errors, in contrast, are expected
// runtime conditions a user can fix, so they carry a category, a stable
// code, and a hint.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig    Category = "config"
	CategoryCLI       Category = "cli"
	CategorySource    Category = "source"
	CategoryHydration Category = "hydration"
	CategoryServer    Category = "server"
)

// Error is a structured error with a stable code and an optional hint.
type Error struct {
	Code     string
	Category Category
	Message  string
	Hint     string
	Err      error
}

// New creates an Error with the given code, category, and message.
func New(code string, category Category, format string, args ...any) *Error {
	return &Error{
		Code:     code,
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// WithHint attaches a suggestion for fixing the error.
func (e *Error) WithHint(format string, args ...any) *Error {
	e.Hint = fmt.Sprintf(format, args...)
	return e
}

// Wrap attaches an underlying cause.
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s [%s]: %v", e.Message, e.Code, e.Err)
	}
	return fmt.Sprintf("%s [%s]", e.Message, e.Code)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Format renders the error for terminal output, hint included.
func (e *Error) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ERROR %s (%s): %s\n", e.Code, e.Category, e.Message)
	if e.Err != nil {
		fmt.Fprintf(&sb, "\n  %v\n", e.Err)
	}
	if e.Hint != "" {
		fmt.Fprintf(&sb, "\n  Hint: %s\n", e.Hint)
	}
	return sb.String()
}

// CodeOf returns the code of err if it is (or wraps) an *Error.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
