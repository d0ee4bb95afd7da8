package search

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/epicstalent-sudo/level-up-backend/internal/query"
	"github.com/epicstalent-sudo/level-up-backend/model"
	"github.com/epicstalent-sudo/level-up-backend/store"
)

// SearchOutcome is a search response together with how it was produced.
type SearchOutcome struct {
	Response   model.SearchResponse
	SearchType string // one of the model.SearchType constants
	Fallback   bool   // the text query failed and the whole store was searched
}

// Service runs candidate searches: text retrieval, filtering and skill ranking.
// It fulfills the services.CandidateSearcher interface.
type Service struct {
	candidates *store.CandidateStore
	textIndex  TextIndex
	logger     *slog.Logger
}

// NewService creates a new search Service over an already built text index.
func NewService(candidates *store.CandidateStore, textIndex TextIndex, logger *slog.Logger) (*Service, error) {
	if candidates == nil {
		return nil, fmt.Errorf("candidate store cannot be nil")
	}
	if textIndex == nil {
		return nil, fmt.Errorf("text index cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		candidates: candidates,
		textIndex:  textIndex,
		logger:     logger,
	}, nil
}

// Search returns every candidate matching req, ranked by skill match count.
// It never fails: a query the text index rejects is treated as no query.
func (s *Service) Search(req model.SearchRequest) model.SearchResponse {
	return s.SearchWithOutcome(req).Response
}

// SearchWithOutcome is Search that also reports whether the text query fell back.
func (s *Service) SearchWithOutcome(req model.SearchRequest) SearchOutcome {
	pool, fallback := s.retrieve(req.Query)
	filtered := ApplyFilters(pool, req)
	ranked := Rank(filtered, req.Skills)

	return SearchOutcome{
		Response: model.SearchResponse{
			Count:   len(ranked),
			Results: ranked,
		},
		SearchType: classify(req, fallback),
		Fallback:   fallback,
	}
}

// retrieve returns the candidates the text query selects, in relevance order.
// An empty query, or one the index cannot answer, selects the whole store in load order.
func (s *Service) retrieve(q string) ([]model.Candidate, bool) {
	if q == "" {
		return s.candidates.All(), false
	}

	normalized := query.Normalize(q)
	hits, err := s.textIndex.Search(normalized)
	if err != nil {
		s.logger.Warn("text search failed, using full candidate set",
			"query", normalized,
			"error", err)
		return s.candidates.All(), true
	}

	pool := make([]model.Candidate, 0, len(hits))
	for _, hit := range hits {
		candidate, ok := s.candidates.Get(hit.Ref)
		if !ok {
			s.logger.Debug("dropping unresolvable hit", "ref", hit.Ref)
			continue
		}
		pool = append(pool, candidate)
	}
	return pool, false
}

func classify(req model.SearchRequest, fallback bool) string {
	switch {
	case fallback:
		return model.SearchTypeFallback
	case req.Location != "" || len(req.Skills) > 0 || req.MinExp.Active || req.MaxDistance.Active:
		return model.SearchTypeFiltered
	case strings.TrimSpace(req.Query) != "":
		return model.SearchTypeText
	default:
		return model.SearchTypeBrowse
	}
}

// Candidate returns the candidate with the given canonical id.
func (s *Service) Candidate(id string) (model.Candidate, error) {
	return s.candidates.Lookup(id)
}

// Stats reports the dataset size and, when the text index exposes them, its term statistics.
func (s *Service) Stats() model.IndexStats {
	stats := model.IndexStats{SearchableFields: []string{}}
	if reporter, ok := s.textIndex.(interface{ IndexStats() model.IndexStats }); ok {
		stats = reporter.IndexStats()
	}
	stats.CandidateCount = s.candidates.Len()
	return stats
}
