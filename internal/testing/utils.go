// Package testing provides fixtures and helpers for testing the candidate search service.
package testing

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/epicstalent-sudo/level-up-backend/config"
	"github.com/epicstalent-sudo/level-up-backend/index"
	"github.com/epicstalent-sudo/level-up-backend/internal/indexing"
	"github.com/epicstalent-sudo/level-up-backend/internal/search"
	"github.com/epicstalent-sudo/level-up-backend/model"
	"github.com/epicstalent-sudo/level-up-backend/store"
)

// FixtureDataset is the JSON form of FixtureCandidates.
const FixtureDataset = `[
  {"id": 1, "name": "Asha", "headline": "Senior Java backend engineer", "skills": ["Java", "SQL", "Spring Boot"],
   "currentRole": "Senior Software Engineer", "location": "Chennai", "totalYearsExperience": 5, "distance": 10},
  {"id": 2, "name": "Ravi", "headline": "Python data engineer", "skills": ["Python", "SQL", "Airflow"],
   "currentRole": "Data Engineer", "location": "Bangalore", "totalYearsExperience": 2, "distance": 50},
  {"id": "c-3", "name": "Meera", "headline": "Full-stack JavaScript developer", "skills": ["JavaScript", "React", "Node.js"],
   "currentRole": "Frontend Developer", "location": "New Chennai", "totalYearsExperience": 7, "distance": 5},
  {"id": 4, "name": "Karthik", "headline": "Junior QA intern", "skills": ["Selenium", "Java"],
   "currentRole": "QA Intern", "location": "Hyderabad", "totalYearsExperience": 0, "distance": 120}
]`

// FixtureCandidates returns a small dataset covering numeric and string ids,
// overlapping skills and locations.
func FixtureCandidates(t *testing.T) []model.Candidate {
	t.Helper()
	var candidates []model.Candidate
	require.NoError(t, json.Unmarshal([]byte(FixtureDataset), &candidates))
	return candidates
}

// NewTestStore creates a store from candidates, or from FixtureCandidates when none are given.
func NewTestStore(t *testing.T, candidates ...model.Candidate) *store.CandidateStore {
	t.Helper()
	if len(candidates) == 0 {
		candidates = FixtureCandidates(t)
	}
	s, err := store.New(candidates)
	require.NoError(t, err, "Failed to create test store")
	return s
}

// NewTestIndex builds the default text index over s.
func NewTestIndex(t *testing.T, s *store.CandidateStore) *index.InvertedIndex {
	t.Helper()
	ii, err := indexing.Build(s, config.DefaultIndexSettings())
	require.NoError(t, err, "Failed to build test index")
	return ii
}

// NewTestService wires a search service over the fixture dataset.
// Log output is discarded.
func NewTestService(t *testing.T) *search.Service {
	t.Helper()
	svc, _ := NewTestServiceWithLogs(t)
	return svc
}

// NewTestServiceWithLogs is NewTestService that records log output as JSON lines.
func NewTestServiceWithLogs(t *testing.T) (*search.Service, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	s := NewTestStore(t)

	searcher, err := search.NewTextSearcher(NewTestIndex(t, s))
	require.NoError(t, err)
	svc, err := search.NewService(s, searcher, NewLogger(buf))
	require.NoError(t, err)
	return svc, buf
}

// NewLogger returns a debug-level JSON logger writing to w, or discarding when w is nil.
func NewLogger(w io.Writer) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// ResultIDs returns the canonical ids of ranked results, in order.
func ResultIDs(results []model.RankedCandidate) []string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID.String())
	}
	return ids
}
