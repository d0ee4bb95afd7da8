package store

import (
	"fmt"

	internalErrors "github.com/epicstalent-sudo/level-up-backend/internal/errors"
	"github.com/epicstalent-sudo/level-up-backend/model"
)

// CandidateStore is the immutable, ordered collection of candidates loaded at startup.
// Nothing mutates it after New returns, so it is safe to share between requests.
type CandidateStore struct {
	candidates []model.Candidate
	byID       map[string]int // canonical id -> ordinal
}

// New creates a CandidateStore from candidates, preserving their order.
// Every candidate must have an id and ids must be unique by their canonical string form.
func New(candidates []model.Candidate) (*CandidateStore, error) {
	s := &CandidateStore{
		candidates: make([]model.Candidate, len(candidates)),
		byID:       make(map[string]int, len(candidates)),
	}
	copy(s.candidates, candidates)

	for i, c := range s.candidates {
		if c.ID.IsZero() {
			return nil, fmt.Errorf("candidate at position %d has no id", i)
		}
		key := c.ID.String()
		if _, exists := s.byID[key]; exists {
			return nil, internalErrors.NewDuplicateCandidateError(key, i)
		}
		s.byID[key] = i
	}

	return s, nil
}

// Len returns the number of candidates.
func (s *CandidateStore) Len() int {
	return len(s.candidates)
}

// All returns a fresh slice of every candidate in load order.
func (s *CandidateStore) All() []model.Candidate {
	out := make([]model.Candidate, len(s.candidates))
	copy(out, s.candidates)
	return out
}

// At returns the candidate at ordinal i.
func (s *CandidateStore) At(i int) model.Candidate {
	return s.candidates[i]
}

// Get returns the candidate with the given canonical id.
func (s *CandidateStore) Get(id string) (model.Candidate, bool) {
	i, ok := s.byID[id]
	if !ok {
		return model.Candidate{}, false
	}
	return s.candidates[i], true
}

// Lookup is Get with a typed not-found error.
func (s *CandidateStore) Lookup(id string) (model.Candidate, error) {
	c, ok := s.Get(id)
	if !ok {
		return model.Candidate{}, internalErrors.NewCandidateNotFoundError(id)
	}
	return c, nil
}
