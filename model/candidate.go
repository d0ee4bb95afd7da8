package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// CandidateID identifies a candidate. Datasets may use JSON strings or integers;
// the ID remembers which form it was loaded from so it encodes back the same way.
// String() is the canonical form used as the index reference.
type CandidateID struct {
	value   string
	numeric bool
}

// NewCandidateID creates a string-valued CandidateID.
func NewCandidateID(id string) CandidateID {
	return CandidateID{value: id}
}

// NumericCandidateID creates an integer-valued CandidateID.
func NumericCandidateID(id int64) CandidateID {
	return CandidateID{value: fmt.Sprintf("%d", id), numeric: true}
}

func (id CandidateID) String() string {
	return id.value
}

// IsZero reports whether the ID was never set.
func (id CandidateID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler.
func (id CandidateID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *CandidateID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("candidate id cannot be null")
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid candidate id: %w", err)
		}
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("candidate id cannot be empty or whitespace-only")
		}
		*id = CandidateID{value: s}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("candidate id must be a string or an integer, got %s", string(data))
	}
	if _, err := n.Int64(); err != nil {
		return fmt.Errorf("candidate id must be a string or an integer, got %s", n.String())
	}
	*id = CandidateID{value: n.String(), numeric: true}
	return nil
}

// Candidate is an immutable candidate record loaded at startup.
// Attributes holds every dataset field not modelled explicitly, so responses
// carry the full original record.
type Candidate struct {
	ID                   CandidateID                `json:"id"`
	Headline             string                     `json:"headline"`
	Skills               []string                   `json:"skills"`
	CurrentRole          string                     `json:"currentRole"`
	Location             string                     `json:"location"`
	TotalYearsExperience float64                    `json:"totalYearsExperience"`
	Distance             float64                    `json:"distance"`
	Attributes           map[string]json.RawMessage `json:"-"`
}

var candidateFields = []string{"id", "headline", "skills", "currentRole", "location", "totalYearsExperience", "distance"}

// candidateAlias has the same fields as Candidate without its JSON methods.
type candidateAlias Candidate

// UnmarshalJSON implements json.Unmarshaler.
func (c *Candidate) UnmarshalJSON(data []byte) error {
	var alias candidateAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, name := range candidateFields {
		delete(raw, name)
	}
	if len(raw) > 0 {
		alias.Attributes = raw
	} else {
		alias.Attributes = nil
	}

	*c = Candidate(alias)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c Candidate) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.fieldMap())
}

func (c Candidate) fieldMap() map[string]interface{} {
	fields := make(map[string]interface{}, len(c.Attributes)+len(candidateFields)+1)
	for k, v := range c.Attributes {
		fields[k] = v
	}

	skills := c.Skills
	if skills == nil {
		skills = []string{}
	}

	fields["id"] = c.ID
	fields["headline"] = c.Headline
	fields["skills"] = skills
	fields["currentRole"] = c.CurrentRole
	fields["location"] = c.Location
	fields["totalYearsExperience"] = c.TotalYearsExperience
	fields["distance"] = c.Distance
	return fields
}

// RankedCandidate is a candidate together with its skill match count for one request.
type RankedCandidate struct {
	Candidate
	SkillMatchCount int `json:"skillMatchCount"`
}

// MarshalJSON flattens the candidate and adds skillMatchCount.
func (rc RankedCandidate) MarshalJSON() ([]byte, error) {
	fields := rc.Candidate.fieldMap()
	fields["skillMatchCount"] = rc.SkillMatchCount
	return json.Marshal(fields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (rc *RankedCandidate) UnmarshalJSON(data []byte) error {
	var c Candidate
	if err := c.UnmarshalJSON(data); err != nil {
		return err
	}

	count := 0
	if raw, ok := c.Attributes["skillMatchCount"]; ok {
		if err := json.Unmarshal(raw, &count); err != nil {
			return fmt.Errorf("invalid skillMatchCount: %w", err)
		}
		delete(c.Attributes, "skillMatchCount")
		if len(c.Attributes) == 0 {
			c.Attributes = nil
		}
	}

	rc.Candidate = c
	rc.SkillMatchCount = count
	return nil
}
