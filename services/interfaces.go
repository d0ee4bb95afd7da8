package services

import (
	"github.com/epicstalent-sudo/level-up-backend/internal/search"
	"github.com/epicstalent-sudo/level-up-backend/model"
)

// CandidateSearcher defines operations for searching candidates
type CandidateSearcher interface {
	// Search never fails; a query the text index rejects behaves like an empty query.
	Search(req model.SearchRequest) model.SearchResponse
	SearchWithOutcome(req model.SearchRequest) search.SearchOutcome
	Candidate(id string) (model.Candidate, error)
}

// StatsProvider reports the state of the loaded dataset and its index
type StatsProvider interface {
	Stats() model.IndexStats
}

// AnalyticsTracker defines operations for recording and reporting search analytics
type AnalyticsTracker interface {
	TrackSearchEvent(event model.SearchEvent) error
	GetDashboardData() (model.AnalyticsDashboard, error)
}
