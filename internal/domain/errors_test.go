package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "experiment.load",
		Kind: KindNotFound,
		Path: "experiments/bench.yaml",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindNotFound {
		t.Fatalf("expected kind %s", KindNotFound)
	}
	if !strings.Contains(err.Error(), "path=experiments/bench.yaml") {
		t.Fatalf("expected path in message, got %q", err.Error())
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "friction.colebrook", Kind: KindConvergence, Err: ErrConvergence}

	if !IsKind(err, KindConvergence) {
		t.Fatalf("expected IsKind to match")
	}
	if IsKind(err, KindInvalidInput) {
		t.Fatalf("expected IsKind to reject other kinds")
	}
	if IsKind(errors.New("plain"), KindConvergence) {
		t.Fatalf("expected IsKind to reject non-OpError")
	}
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("friction.laminar", "reynolds must be > 0, got %g", -1.0)

	if !IsKind(err, KindInvalidInput) {
		t.Fatalf("expected KindInvalidInput, got %v", err)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected errors.Is ErrInvalidInput")
	}
	if !strings.Contains(err.Error(), "got -1") {
		t.Fatalf("expected formatted message, got %q", err.Error())
	}
}

func TestExecution(t *testing.T) {
	cause := errors.New("permission denied")
	err := Execution("reportstore.write", "reports/x.json.tmp", cause)

	if !IsKind(err, KindExecution) {
		t.Fatalf("expected KindExecution, got %v", err)
	}
	if !errors.Is(err, ErrExecution) {
		t.Fatalf("expected errors.Is ErrExecution")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to match the cause")
	}
	if !strings.Contains(err.Error(), "path=reports/x.json.tmp") {
		t.Fatalf("expected path in message, got %q", err.Error())
	}
}

func TestNilOpError(t *testing.T) {
	var err *OpError
	if err.Error() != "<nil>" {
		t.Fatalf("expected <nil>, got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}
