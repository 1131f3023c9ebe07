package apperr

import (
	"fmt"
	"strings"
	"testing"
)

func TestIsUser(t *testing.T) {
	if !IsUser(User("bad flag")) {
		t.Fatalf("expected IsUser for User()")
	}
	if !IsUser(fmt.Errorf("loading scenario: %w", Userf("file %s not found", "x.yaml"))) {
		t.Fatalf("expected IsUser for wrapped UserError")
	}
	if IsUser(fmt.Errorf("plain error")) {
		t.Fatalf("plain error must not be a UserError")
	}
	if IsUser(nil) {
		t.Fatalf("nil must not be a UserError")
	}
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("production_volume", "must be positive")
	if !IsInvalidInput(err) {
		t.Fatalf("expected IsInvalidInput")
	}
	if !IsInvalidInput(fmt.Errorf("cost model: %w", err)) {
		t.Fatalf("expected IsInvalidInput for wrapped error")
	}
	if IsInvalidInput(User("nope")) {
		t.Fatalf("UserError must not match InvalidInputError")
	}

	msg := err.Error()
	if !strings.Contains(msg, "production_volume") || !strings.Contains(msg, "must be positive") {
		t.Fatalf("message should carry field and reason, got %q", msg)
	}
}

func TestInvalidAllocation(t *testing.T) {
	err := &InvalidAllocationError{Method: "mass", Reason: "total co-product mass is zero"}
	if !IsInvalidAllocation(err) {
		t.Fatalf("expected IsInvalidAllocation")
	}
	if IsInvalidAllocation(InvalidInput("f", "r")) {
		t.Fatalf("InvalidInputError must not match InvalidAllocationError")
	}
	if !strings.Contains(err.Error(), "mass") {
		t.Fatalf("message should carry the method, got %q", err.Error())
	}
}
