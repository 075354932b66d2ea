package app

import (
	"errors"
	"testing"
)

func TestOperationErrorMessage(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{"op only", &OperationError{Op: "render"}, "render"},
		{"with cause", NewOperationError("read key", "", cause), "read key: boom"},
		{"with target", NewOperationError("open", "a.txt", cause), "open a.txt: boom"},
		{"with context", NewOperationError("open", "a.txt", cause).WithContext("startup"), "open a.txt (startup): boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestOperationErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := error(NewOperationError("read key", "", cause))
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}

	var nilErr *OperationError
	if nilErr.WithContext("x") != nil {
		t.Error("WithContext on nil should return nil")
	}
	if nilErr.Unwrap() != nil {
		t.Error("Unwrap on nil should return nil")
	}
	if nilErr.Error() != "" {
		t.Error("Error on nil should be empty")
	}
}

func TestInitError(t *testing.T) {
	cause := errors.New("not a terminal")
	err := error(&InitError{Component: "terminal", Err: cause})

	if err.Error() != "init terminal: not a terminal" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
}
