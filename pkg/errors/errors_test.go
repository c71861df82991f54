package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidDiagram, "leaf %q has children", "seed.ts")

	if err.Code != ErrCodeInvalidDiagram {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidDiagram)
	}

	if err.Message != `leaf "seed.ts" has children` {
		t.Errorf("Message = %v", err.Message)
	}

	expected := `INVALID_DIAGRAM: leaf "seed.ts" has children`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := Wrap(ErrCodeInvalidInput, cause, "decode %s", "flow.toml")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if got, want := err.Error(), "INVALID_INPUT: decode flow.toml: unexpected EOF"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeInvalidInput, "test"), ErrCodeInvalidInput, true},
		{"non-matching code", New(ErrCodeInvalidInput, "test"), ErrCodeUnsupported, false},
		{"wrapped error", Wrap(ErrCodeInternal, New(ErrCodeInvalidInput, "inner"), "outer"), ErrCodeInternal, true},
		{"fmt wrapped", fmt.Errorf("load: %w", New(ErrCodeDiagramNotFound, "x")), ErrCodeDiagramNotFound, true},
		{"non-Error type", errors.New("plain error"), ErrCodeInvalidInput, false},
		{"nil error", nil, ErrCodeInvalidInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeInvalidKind, "test"), ErrCodeInvalidKind},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidInput, "friendly message"), "friendly message"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(New(ErrCodeDiagramNotFound, "phase9")) {
		t.Error("DIAGRAM_NOT_FOUND should be a not-found error")
	}
	if !IsNotFound(fmt.Errorf("open: %w", New(ErrCodeFileNotFound, "a.toml"))) {
		t.Error("wrapped FILE_NOT_FOUND should be a not-found error")
	}
	if IsNotFound(New(ErrCodeInvalidInput, "x")) {
		t.Error("INVALID_INPUT should not be a not-found error")
	}
	if IsNotFound(errors.New("plain")) {
		t.Error("plain errors are never not-found errors")
	}
}

func TestCodeClasses(t *testing.T) {
	tests := []struct {
		code     Code
		client   bool
		notFound bool
	}{
		{ErrCodeInvalidFormat, true, false},
		{ErrCodeInvalidPath, true, false},
		{ErrCodeUnsupported, true, false},
		{ErrCodeDiagramNotFound, false, true},
		{ErrCodeInternal, false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		if got := tt.code.Client(); got != tt.client {
			t.Errorf("%q.Client() = %v", tt.code, got)
		}
		if got := tt.code.NotFound(); got != tt.notFound {
			t.Errorf("%q.NotFound() = %v", tt.code, got)
		}
	}
	if !IsClient(fmt.Errorf("render: %w", New(ErrCodeInvalidKind, "gantt"))) {
		t.Error("wrapped INVALID_KIND should be a client error")
	}
}
