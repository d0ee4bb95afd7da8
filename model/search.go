package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// OptionalNumber is a numeric filter value with legacy truthiness.
// A filter is Active when it was supplied with a truthy value: absent, null,
// 0, false and "" all leave it inactive. Non-empty strings are active and
// compare by their numeric value; a non-numeric string compares as NaN.
type OptionalNumber struct {
	Value  float64
	Active bool
}

// Number returns an OptionalNumber for v, inactive when v is zero or NaN.
func Number(v float64) OptionalNumber {
	return OptionalNumber{Value: v, Active: v != 0 && !math.IsNaN(v)}
}

// MarshalJSON implements json.Marshaler.
func (n OptionalNumber) MarshalJSON() ([]byte, error) {
	if !n.Active || math.IsNaN(n.Value) || math.IsInf(n.Value, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *OptionalNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		*n = OptionalNumber{}
		return nil
	case bytes.Equal(data, []byte("true")):
		*n = OptionalNumber{Value: 1, Active: true}
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*n = OptionalNumber{}
			return nil
		}
		// a blank string is truthy but compares as 0
		v := 0.0
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			parsed, err := strconv.ParseFloat(trimmed, 64)
			if err != nil {
				parsed = math.NaN()
			}
			v = parsed
		}
		*n = OptionalNumber{Value: v, Active: true}
		return nil
	default:
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("expected a number or numeric string, got %s", string(data))
		}
		*n = Number(v)
		return nil
	}
}

// SearchRequest is a single candidate search. Every field is optional.
type SearchRequest struct {
	Query       string         `json:"query" validate:"max=2048"`
	Location    string         `json:"location" validate:"max=256"`
	Skills      []string       `json:"skills" validate:"max=100,dive,max=128"`
	MaxDistance OptionalNumber `json:"maxDistance"`
	MinExp      OptionalNumber `json:"minExp"`
}

// SearchResponse is the ranked result of a search. Count always equals len(Results).
type SearchResponse struct {
	Count   int               `json:"count"`
	Results []RankedCandidate `json:"results"`
}

// IndexStats describes the loaded dataset and its text index.
type IndexStats struct {
	Name             string   `json:"name"`
	CandidateCount   int      `json:"candidate_count"`
	TermCount        int      `json:"term_count"`
	SearchableFields []string `json:"searchable_fields"`
}
