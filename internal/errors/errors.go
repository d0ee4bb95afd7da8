package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common error conditions
var (
	// ErrQueryParse is returned when a query string cannot be parsed by the text index
	ErrQueryParse = errors.New("query parse error")

	// ErrCandidateNotFound is returned when a candidate id is not present in the store
	ErrCandidateNotFound = errors.New("candidate not found")

	// ErrDuplicateCandidate is returned when a dataset contains the same id twice
	ErrDuplicateCandidate = errors.New("duplicate candidate")

	// ErrInvalidDataset is returned when a dataset does not match the candidate schema
	ErrInvalidDataset = errors.New("invalid dataset")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// QueryParseError reports a malformed query together with the character range of the offending lexeme.
type QueryParseError struct {
	Message string
	Start   int
	End     int
}

func (e *QueryParseError) Error() string {
	return fmt.Sprintf("query parse error at %d-%d: %s", e.Start, e.End, e.Message)
}

func (e *QueryParseError) Is(target error) bool {
	return target == ErrQueryParse
}

// NewQueryParseError creates a new QueryParseError
func NewQueryParseError(message string, start, end int) *QueryParseError {
	return &QueryParseError{Message: message, Start: start, End: end}
}

// CandidateNotFoundError represents a candidate lookup miss with context
type CandidateNotFoundError struct {
	CandidateID string
}

func (e *CandidateNotFoundError) Error() string {
	return fmt.Sprintf("candidate with ID '%s' not found", e.CandidateID)
}

func (e *CandidateNotFoundError) Is(target error) bool {
	return target == ErrCandidateNotFound
}

// NewCandidateNotFoundError creates a new CandidateNotFoundError
func NewCandidateNotFoundError(candidateID string) *CandidateNotFoundError {
	return &CandidateNotFoundError{CandidateID: candidateID}
}

// DuplicateCandidateError represents a dataset that repeats a candidate id
type DuplicateCandidateError struct {
	CandidateID string
	Position    int
}

func (e *DuplicateCandidateError) Error() string {
	return fmt.Sprintf("candidate with ID '%s' at position %d is a duplicate", e.CandidateID, e.Position)
}

func (e *DuplicateCandidateError) Is(target error) bool {
	return target == ErrDuplicateCandidate
}

// NewDuplicateCandidateError creates a new DuplicateCandidateError
func NewDuplicateCandidateError(candidateID string, position int) *DuplicateCandidateError {
	return &DuplicateCandidateError{CandidateID: candidateID, Position: position}
}

// FieldError is a single schema violation at a JSON path
type FieldError struct {
	Field   string
	Message string
}

// DatasetValidationError collects every schema violation found in a dataset
type DatasetValidationError struct {
	Errors []FieldError
}

func (e *DatasetValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("dataset validation failed:")
	for i, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf("\n  %d. %s: %s", i+1, fe.Field, fe.Message))
	}
	return sb.String()
}

func (e *DatasetValidationError) Is(target error) bool {
	return target == ErrInvalidDataset
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
