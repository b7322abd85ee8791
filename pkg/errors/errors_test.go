package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("book", "Dune")

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound should report true")
	}
	want := `book "Dune" not found`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("title", "", "must not be empty")

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ValidationError should match ErrInvalidInput")
	}
	if !IsValidationError(err) {
		t.Error("IsValidationError should report true")
	}
	if err.Error() != "validation failed for field title: must not be empty" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestAPIErrorMatchesImportFailed(t *testing.T) {
	err := NewAPIError("googlebooks", 503, "service unavailable")

	if !errors.Is(err, ErrImportFailed) {
		t.Error("APIError should match ErrImportFailed")
	}
	if !IsImportFailed(fmt.Errorf("searching: %w", err)) {
		t.Error("wrapped APIError should still match ErrImportFailed")
	}
}

func TestWrapHelpersReturnNilOnNil(t *testing.T) {
	if WrapIO("write", "library.csv", nil) != nil {
		t.Error("WrapIO(nil) should be nil")
	}
	if WrapParse("csv", "library.csv", nil) != nil {
		t.Error("WrapParse(nil) should be nil")
	}
	if WrapImport("googlebooks", "", nil) != nil {
		t.Error("WrapImport(nil) should be nil")
	}
	if WrapValidation("year", nil) != nil {
		t.Error("WrapValidation(nil) should be nil")
	}
}

func TestUnwrapChain(t *testing.T) {
	inner := errors.New("disk full")
	err := WrapIO("write", "library.csv", inner)

	if !errors.Is(err, inner) {
		t.Error("IOError should unwrap to the inner error")
	}

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatal("errors.As should find *IOError")
	}
	if ioErr.Path != "library.csv" {
		t.Errorf("Path = %q, want library.csv", ioErr.Path)
	}
}
