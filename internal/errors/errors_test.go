package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestPyError_Error(t *testing.T) {
	err := New(CodeConfigInvalid, "data file path is empty")
	expected := "[CONFIG_INVALID] data file path is empty"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestPyError_Wrap(t *testing.T) {
	inner := fmt.Errorf("unexpected end of JSON input")
	err := Wrap(CodeDataParse, "failed to parse pyvengers.json", inner)

	if err.Error() != "[DATA_PARSE] failed to parse pyvengers.json: unexpected end of JSON input" {
		t.Errorf("unexpected error string: %s", err.Error())
	}

	if !errors.Is(err, inner) {
		t.Error("errors.Is should find inner error")
	}
}

func TestPyError_IsByCode(t *testing.T) {
	err := Wrap(CodeDataWrite, "write failed", fmt.Errorf("disk full"))

	if !errors.Is(err, New(CodeDataWrite, "")) {
		t.Error("errors.Is should match on code")
	}
	if errors.Is(err, New(CodeDataRead, "")) {
		t.Error("errors.Is should not match a different code")
	}
}

func TestPyError_WithSuggestion(t *testing.T) {
	err := New(CodeDataParse, "bad json").
		WithSuggestion("Fix or remove the data file")

	if err.Suggestion != "Fix or remove the data file" {
		t.Errorf("unexpected suggestion: %s", err.Suggestion)
	}
}

func TestAsCode(t *testing.T) {
	err := New(CodeDataRead, "permission denied")
	if AsCode(err) != CodeDataRead {
		t.Errorf("expected code %q, got %q", CodeDataRead, AsCode(err))
	}

	// Non-PyError
	if AsCode(fmt.Errorf("plain error")) != "" {
		t.Error("expected empty code for non-PyError")
	}
}

func TestSuggestion(t *testing.T) {
	err := New(CodeConfigInvalid, "bad level").WithSuggestion("use debug, info, warn or error")
	if Suggestion(err) != "use debug, info, warn or error" {
		t.Errorf("unexpected suggestion %q", Suggestion(err))
	}

	if Suggestion(fmt.Errorf("plain")) != "" {
		t.Error("expected empty suggestion for non-PyError")
	}
}

func TestPyError_WrappedAs(t *testing.T) {
	inner := New(CodeDataParse, "bad json")
	wrapped := fmt.Errorf("list failed: %w", inner)

	var pyErr *PyError
	if !errors.As(wrapped, &pyErr) {
		t.Fatal("errors.As should unwrap through fmt.Errorf")
	}
	if pyErr.Code != CodeDataParse {
		t.Errorf("expected code %q, got %q", CodeDataParse, pyErr.Code)
	}
}

func TestWrapf(t *testing.T) {
	err := Wrapf(CodeDataRead, fmt.Errorf("is a directory"), "failed to read %s", "heroes.json")

	if err.Error() != "[DATA_READ] failed to read heroes.json: is a directory" {
		t.Errorf("unexpected error string: %s", err.Error())
	}
}
