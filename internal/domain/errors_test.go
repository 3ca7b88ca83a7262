package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorClassificationThroughWrapping(t *testing.T) {
	base := errors.New("boom")
	cases := []struct {
		name string
		err  error
		is   func(error) bool
	}{
		{"not found", NotFoundError{Resource: "flight", ID: "F1"}, IsNotFound},
		{"validation", ValidationError{Field: "name", Msg: "empty"}, IsValidation},
		{"conflict", ConflictError{Resource: "hotel", Msg: "sold out"}, IsConflict},
		{"internal", InternalError{Err: base}, IsInternal},
	}
	for _, tc := range cases {
		wrapped := fmt.Errorf("layer: %w", tc.err)
		if !tc.is(wrapped) {
			t.Fatalf("%s: classification lost through wrapping", tc.name)
		}
	}
	if IsNotFound(base) || IsConflict(base) {
		t.Fatalf("plain error must not classify as domain error")
	}
	if !errors.Is(InternalError{Err: base}, base) {
		t.Fatalf("InternalError should unwrap to its cause")
	}
}

func TestNotFoundMessage(t *testing.T) {
	if got := (NotFoundError{Resource: "flight", ID: "F1"}).Error(); got != "flight F1 not found" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := (NotFoundError{Resource: "customer"}).Error(); got != "customer not found" {
		t.Fatalf("unexpected message %q", got)
	}
}
