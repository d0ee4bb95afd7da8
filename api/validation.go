// Package api provides the HTTP surface of the candidate search service.
package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/epicstalent-sudo/level-up-backend/model"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateSearchRequest checks the size limits of a search request
func ValidateSearchRequest(v *validator.Validate, req *model.SearchRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if err := v.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			result.AddError("request", err.Error())
			return result
		}
		for _, fe := range validationErrors {
			result.AddError(fieldPath(fe), formatFieldError(fe))
		}
	}

	return result
}

// ValidateCandidateID validates a candidate id path parameter
func ValidateCandidateID(candidateID string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if candidateID == "" {
		result.AddError("id", "Candidate ID is required")
		return result
	}

	if strings.TrimSpace(candidateID) != candidateID {
		result.AddError("id", "Candidate ID cannot have leading or trailing whitespace")
		return result
	}

	return result
}

// fieldPath turns "SearchRequest.skills[3]" into "skills[3]"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// formatFieldError converts a single validator failure to a user-friendly message
func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at most %s items", fe.Param())
		}
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s items", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed '%s' validation", fe.Tag())
	}
}
