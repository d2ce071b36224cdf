/*
Copyright © 2025 Aquaveo, LLC
SPDX-License-Identifier: BSD-2-Clause
*/

package errors

import (
	"context"
	"errors"
	"fmt"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeMissingField indicates a required configuration field is absent or empty.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidValue indicates a configuration field holds a disallowed value
	// or a malformed dependency record.
	ErrCodeInvalidValue ErrorCode = "INVALID_VALUE"
	// ErrCodeGenerationIO indicates a read or write failure while loading
	// configuration or emitting generated files.
	ErrCodeGenerationIO ErrorCode = "GENERATION_IO"
	// ErrCodeExternalTool indicates an external build tool could not be started
	// or exited non-zero.
	ErrCodeExternalTool ErrorCode = "EXTERNAL_TOOL"
	// ErrCodeInvalidRequest indicates malformed or invalid command input.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeNotFound indicates a requested file or resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// ContextKeyExitCode is the Context key carrying a subprocess exit code.
const ContextKeyExitCode = "exit_code"

// StructuredError provides structured error information for better observability.
// It includes an error code for programmatic handling, a human-readable message,
// the underlying cause, and optional context for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// HasCode reports whether err, or any error it wraps, is a StructuredError
// with the given code.
func HasCode(err error, code ErrorCode) bool {
	var se *StructuredError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

// ExitCode maps err to a process exit code: the mirrored subprocess exit
// code for external tool failures, 2 for context cancellation or timeout,
// 1 for any other error, and 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return 2
	}
	var se *StructuredError
	if errors.As(err, &se) && se.Code == ErrCodeExternalTool {
		if code, ok := se.Context[ContextKeyExitCode].(int); ok && code > 0 {
			return code
		}
	}
	return 1
}
