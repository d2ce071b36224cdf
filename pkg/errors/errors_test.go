package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "config file not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "config file not found" {
		t.Errorf("expected message 'config file not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeGenerationIO, "operation failed", cause)

	if err.Code != ErrCodeGenerationIO {
		t.Errorf("expected code %s, got %s", ErrCodeGenerationIO, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("exit status 6")
	ctx := map[string]interface{}{
		"command":   "conan",
		"exit_code": 6,
	}

	err := WrapWithContext(ErrCodeExternalTool, "conan install failed", cause, ctx)

	if err.Code != ErrCodeExternalTool {
		t.Errorf("expected code %s, got %s", ErrCodeExternalTool, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["command"] != "conan" {
		t.Errorf("expected command to be conan")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeMissingField, "library_name is required"),
			expected: "[MISSING_FIELD] library_name is required",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeGenerationIO, "failed", errors.New("root cause")),
			expected: "[GENERATION_IO] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeMissingField,
		ErrCodeInvalidValue,
		ErrCodeGenerationIO,
		ErrCodeExternalTool,
		ErrCodeInvalidRequest,
		ErrCodeNotFound,
		ErrCodeInternal,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}

func TestHasCode(t *testing.T) {
	base := New(ErrCodeInvalidValue, "bad testing_framework")
	wrapped := fmt.Errorf("loading config: %w", base)

	if !HasCode(base, ErrCodeInvalidValue) {
		t.Error("expected HasCode to match direct error")
	}
	if !HasCode(wrapped, ErrCodeInvalidValue) {
		t.Error("expected HasCode to match wrapped error")
	}
	if HasCode(wrapped, ErrCodeMissingField) {
		t.Error("expected HasCode to reject mismatched code")
	}
	if HasCode(errors.New("plain"), ErrCodeInvalidValue) {
		t.Error("expected HasCode to reject plain error")
	}
	if HasCode(nil, ErrCodeInvalidValue) {
		t.Error("expected HasCode to reject nil error")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: 0,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			expected: 1,
		},
		{
			name:     "structured non-tool error",
			err:      New(ErrCodeInvalidValue, "bad value"),
			expected: 1,
		},
		{
			name:     "context canceled",
			err:      context.Canceled,
			expected: 2,
		},
		{
			name:     "wrapped deadline exceeded",
			err:      fmt.Errorf("build: %w", context.DeadlineExceeded),
			expected: 2,
		},
		{
			name: "external tool mirrors exit code",
			err: WrapWithContext(ErrCodeExternalTool, "cmake failed", errors.New("exit status 3"),
				map[string]any{ContextKeyExitCode: 3}),
			expected: 3,
		},
		{
			name:     "external tool without exit code",
			err:      New(ErrCodeExternalTool, "conan not found"),
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.expected {
				t.Errorf("expected exit code %d, got %d", tt.expected, got)
			}
		})
	}
}
