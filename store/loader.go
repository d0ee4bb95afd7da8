package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/xeipuuv/gojsonschema"

	internalErrors "github.com/epicstalent-sudo/level-up-backend/internal/errors"
	"github.com/epicstalent-sudo/level-up-backend/model"
)

// candidateSchema is the JSON Schema every dataset must satisfy before it is loaded.
const candidateSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "skills", "location", "totalYearsExperience", "distance"],
    "properties": {
      "id": {
        "oneOf": [
          {"type": "integer"},
          {"type": "string", "minLength": 1}
        ]
      },
      "headline": {"type": "string"},
      "skills": {"type": "array", "items": {"type": "string"}},
      "currentRole": {"type": "string"},
      "location": {"type": "string"},
      "totalYearsExperience": {"type": "number"},
      "distance": {"type": "number"}
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(candidateSchema)

// LoadFile reads a JSON array of candidates from path.
func LoadFile(path string) (*CandidateStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %s: %w", path, err)
	}
	return s, nil
}

// Load reads a JSON array of candidates from r, validating it against the candidate schema.
func Load(r io.Reader) (*CandidateStore, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	if err := ValidateDataset(data); err != nil {
		return nil, err
	}

	var candidates []model.Candidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("failed to decode candidates: %w", err)
	}

	return New(candidates)
}

// ValidateDataset checks raw JSON against the candidate schema.
// Schema violations are reported as a *errors.DatasetValidationError.
func ValidateDataset(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", internalErrors.ErrInvalidDataset, err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &internalErrors.DatasetValidationError{
		Errors: make([]internalErrors.FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, internalErrors.FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
