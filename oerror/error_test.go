package oerror

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewFormatsArgs(t *testing.T) {
	err := New("unknown parameter %q", "Speed2")
	if err.Error() != `unknown parameter "Speed2"` {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestNewKeepsVerbsWithoutArgs(t *testing.T) {
	err := New("100% literal")
	if err.Error() != "100% literal" {
		t.Fatalf("message without args should be kept verbatim, got %s", err.Error())
	}
}

func TestErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", New("bad value"))
	var oErr *OomphError
	if !errors.As(wrapped, &oErr) {
		t.Fatalf("expected wrapped error to unwrap into *OomphError")
	}
}
