package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestQueryParseError(t *testing.T) {
	err := NewQueryParseError("expecting term, found nothing", 7, 8)

	expectedMsg := "query parse error at 7-8: expecting term, found nothing"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrQueryParse) {
		t.Error("Expected error to match ErrQueryParse sentinel")
	}

	if errors.Is(err, ErrInvalidInput) {
		t.Error("Error should not match ErrInvalidInput")
	}
}

func TestCandidateNotFoundError(t *testing.T) {
	err := NewCandidateNotFoundError("42")

	expectedMsg := "candidate with ID '42' not found"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrCandidateNotFound) {
		t.Error("Expected error to match ErrCandidateNotFound sentinel")
	}
}

func TestDuplicateCandidateError(t *testing.T) {
	err := NewDuplicateCandidateError("7", 3)

	expectedMsg := "candidate with ID '7' at position 3 is a duplicate"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrDuplicateCandidate) {
		t.Error("Expected error to match ErrDuplicateCandidate sentinel")
	}
}

func TestDatasetValidationError(t *testing.T) {
	err := &DatasetValidationError{Errors: []FieldError{
		{Field: "0.id", Message: "id is required"},
		{Field: "1.skills", Message: "Invalid type. Expected: array, given: string"},
	}}

	expectedMsg := "dataset validation failed:\n  1. 0.id: id is required\n  2. 1.skills: Invalid type. Expected: array, given: string"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrInvalidDataset) {
		t.Error("Expected error to match ErrInvalidDataset sentinel")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("skills", "too many skills")
	expectedMsg := "validation error for field 'skills': too many skills"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	errNoField := NewValidationError("", "general validation failure")
	expectedMsg2 := "validation error: general validation failure"
	if errNoField.Error() != expectedMsg2 {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg2, errNoField.Error())
	}

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("Expected error to match ErrInvalidInput sentinel")
	}
}

func TestWrappedErrors(t *testing.T) {
	baseErr := NewQueryParseError("unrecognised field 'name'", 0, 4)
	wrappedErr := fmt.Errorf("text search failed: %w", baseErr)

	if !errors.Is(wrappedErr, ErrQueryParse) {
		t.Error("Expected wrapped error to match ErrQueryParse sentinel")
	}

	var parseErr *QueryParseError
	if !errors.As(wrappedErr, &parseErr) {
		t.Fatal("Expected to extract QueryParseError from wrapped error")
	}
	if parseErr.Start != 0 || parseErr.End != 4 {
		t.Errorf("Expected range 0-4, got %d-%d", parseErr.Start, parseErr.End)
	}
}
