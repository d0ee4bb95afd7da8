// Package config provides configuration structures for the candidate search service.
// It defines text index settings and the environment-driven server configuration.
package config

import (
	"fmt"
	"strings"
)

// Field names a text index can be built over.
const (
	FieldHeadline    = "headline"
	FieldSkills      = "skills"
	FieldCurrentRole = "currentRole"
	FieldLocation    = "location"
)

// TextFields lists every candidate field that can be made searchable.
var TextFields = []string{FieldHeadline, FieldSkills, FieldCurrentRole, FieldLocation}

// IndexSettings contains the configuration options for the candidate text index.
//
// SearchableFields are indexed independently; a query clause may target one of them
// with the "field:term" syntax. The skills field is indexed as the candidate's
// skill names joined by a single space.
type IndexSettings struct {
	Name             string   `json:"name"`              // Name reported by stats
	RefField         string   `json:"ref_field"`         // Candidate field used as the document reference
	SearchableFields []string `json:"searchable_fields"` // Fields that are indexed for free-text search
	StopWordFilter   bool     `json:"stop_word_filter"`  // Drop English stop words at index time
	Stemming         bool     `json:"stemming"`          // Apply the Snowball English stemmer at index and query time
	K1               float64  `json:"k1"`                // BM25 term frequency saturation
	B                float64  `json:"b"`                 // BM25 field length normalisation
}

// DefaultIndexSettings returns the settings used by the search service.
func DefaultIndexSettings() IndexSettings {
	settings := IndexSettings{
		Name:             "candidates",
		RefField:         "id",
		SearchableFields: []string{FieldHeadline, FieldSkills, FieldCurrentRole},
		StopWordFilter:   true,
		Stemming:         true,
	}
	settings.ApplyDefaults()
	return settings
}

// ValidateFieldNames validates field names and scoring parameters.
// It returns one message per conflict found; an empty slice means the settings are usable.
func (settings *IndexSettings) ValidateFieldNames() []string {
	var conflicts []string

	conflicts = append(conflicts, checkDuplicates("searchable_fields", settings.SearchableFields)...)

	if len(settings.SearchableFields) == 0 {
		conflicts = append(conflicts, "At least one searchable field is required")
	}

	known := make(map[string]bool, len(TextFields))
	for _, field := range TextFields {
		known[field] = true
	}

	for _, field := range settings.SearchableFields {
		if strings.TrimSpace(field) == "" {
			conflicts = append(conflicts, "Field name cannot be empty or whitespace-only")
			continue
		}
		if !known[field] {
			conflicts = append(conflicts, "Field '"+field+"' in searchable_fields is not a candidate text field")
		}
	}

	if settings.RefField != "id" {
		conflicts = append(conflicts, "Ref field '"+settings.RefField+"' is not supported (must be 'id')")
	}

	if settings.K1 < 0 {
		conflicts = append(conflicts, fmt.Sprintf("k1 must be non-negative, got %g", settings.K1))
	}
	if settings.B < 0 || settings.B > 1 {
		conflicts = append(conflicts, fmt.Sprintf("b must be between 0 and 1, got %g", settings.B))
	}

	return conflicts
}

// checkDuplicates checks for duplicate values in a slice and returns error messages
func checkDuplicates(fieldName string, fields []string) []string {
	var errors []string
	seen := make(map[string]bool)

	for _, field := range fields {
		if seen[field] {
			errors = append(errors, "Duplicate field '"+field+"' found in "+fieldName)
		}
		seen[field] = true
	}

	return errors
}

// ApplyDefaults applies default values to the index settings
func (settings *IndexSettings) ApplyDefaults() {
	if settings.Name == "" {
		settings.Name = "candidates"
	}
	if settings.RefField == "" {
		settings.RefField = "id"
	}
	if settings.K1 == 0 {
		settings.K1 = 1.2
	}
	if settings.B == 0 {
		settings.B = 0.75
	}
	if settings.SearchableFields == nil {
		settings.SearchableFields = []string{}
	}
}
