package errors

import (
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	baseErr := errors.New("base error")

	t.Run("wrap non-nil error", func(t *testing.T) {
		wrapped := Wrap(baseErr, "wrapped")
		if wrapped == nil {
			t.Fatal("expected wrapped error, got nil")
		}
		expected := "wrapped: base error"
		if wrapped.Error() != expected {
			t.Errorf("expected '%s', got '%s'", expected, wrapped.Error())
		}
		if !errors.Is(wrapped, baseErr) {
			t.Error("expected wrapped error to wrap baseErr")
		}
	})

	t.Run("wrap nil error", func(t *testing.T) {
		wrapped := Wrap(nil, "wrapped")
		if wrapped != nil {
			t.Errorf("expected nil, got %v", wrapped)
		}
	})
}

func TestWrapBases(t *testing.T) {
	for _, base := range []error{ErrInvalidInput, ErrPrecondition, ErrInternal} {
		wrapped := Wrap(base, "sealing")
		if !errors.Is(wrapped, base) {
			t.Errorf("expected %q to wrap %q", wrapped, base)
		}
		if wrapped.Error() != "sealing: "+base.Error() {
			t.Errorf("unexpected message %q", wrapped.Error())
		}
	}
}

func TestStandardErrors(t *testing.T) {
	tests := []struct {
		err  error
		text string
	}{
		{ErrInvalidInput, "invalid input"},
		{ErrPrecondition, "failed precondition"},
		{ErrInternal, "internal error"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.text {
			t.Errorf("expected text '%s' for error, got '%s'", tt.text, tt.err.Error())
		}
	}
}
