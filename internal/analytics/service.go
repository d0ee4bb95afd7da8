package analytics

import (
	"sort"
	"sync"
	"time"

	"github.com/epicstalent-sudo/level-up-backend/model"
	"github.com/epicstalent-sudo/level-up-backend/services"
)

const (
	maxEventsToKeep    = 10000 // Keep last 10k events for performance
	maxPopularSearches = 10
)

// Service implements in-memory analytics tracking and reporting.
// It fulfills the services.AnalyticsTracker interface.
type Service struct {
	mutex         sync.RWMutex
	events        []model.SearchEvent
	statsProvider services.StatsProvider
	now           func() time.Time
}

// NewService creates a new analytics service. statsProvider may be nil.
func NewService(statsProvider services.StatsProvider) *Service {
	return &Service{
		events:        make([]model.SearchEvent, 0),
		statsProvider: statsProvider,
		now:           time.Now,
	}
}

// TrackSearchEvent records a new search event
func (s *Service) TrackSearchEvent(event model.SearchEvent) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	s.events = append(s.events, event)

	// Keep only the latest events to prevent unbounded growth
	if len(s.events) > maxEventsToKeep {
		s.events = append(make([]model.SearchEvent, 0, maxEventsToKeep), s.events[len(s.events)-maxEventsToKeep:]...)
	}

	return nil
}

// GetDashboardData returns complete analytics dashboard data
func (s *Service) GetDashboardData() (model.AnalyticsDashboard, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	dashboard := model.AnalyticsDashboard{
		TotalSearches:            len(s.events),
		TotalCandidates:          s.getTotalCandidates(),
		AvgResponseTime:          s.calculateAvgResponseTime(s.events),
		AvgResultCount:           s.calculateAvgResultCount(s.events),
		PopularSearches:          s.getPopularSearches(s.events),
		SearchTypes:              s.getSearchTypeStats(s.events),
		ResponseTimeDistribution: s.getResponseTimeDistribution(s.events),
	}
	if len(s.events) > 0 {
		dashboard.FallbackRate = float64(dashboard.SearchTypes.Fallback) / float64(len(s.events))
	}

	return dashboard, nil
}

// calculateAvgResponseTime calculates average response time for events in milliseconds
func (s *Service) calculateAvgResponseTime(events []model.SearchEvent) float64 {
	if len(events) == 0 {
		return 0
	}

	var total time.Duration
	for _, event := range events {
		total += event.ResponseTime
	}
	return float64(total) / float64(len(events)) / float64(time.Millisecond)
}

func (s *Service) calculateAvgResultCount(events []model.SearchEvent) float64 {
	if len(events) == 0 {
		return 0
	}

	total := 0
	for _, event := range events {
		total += event.ResultCount
	}
	return float64(total) / float64(len(events))
}

// getTotalCandidates returns the size of the loaded dataset
func (s *Service) getTotalCandidates() int {
	if s.statsProvider == nil {
		return 0
	}
	return s.statsProvider.Stats().CandidateCount
}

// getPopularSearches returns the most frequent non-empty queries
func (s *Service) getPopularSearches(events []model.SearchEvent) []model.PopularSearch {
	queryCounts := make(map[string]int)

	for _, event := range events {
		if event.Query != "" {
			queryCounts[event.Query]++
		}
	}

	queries := make([]model.PopularSearch, 0, len(queryCounts))
	for query, count := range queryCounts {
		queries = append(queries, model.PopularSearch{Query: query, SearchCount: count})
	}

	// Sort by count descending, then alphabetically for a stable dashboard
	sort.Slice(queries, func(i, j int) bool {
		if queries[i].SearchCount != queries[j].SearchCount {
			return queries[i].SearchCount > queries[j].SearchCount
		}
		return queries[i].Query < queries[j].Query
	})

	if len(queries) > maxPopularSearches {
		queries = queries[:maxPopularSearches]
	}
	return queries
}

// getResponseTimeDistribution buckets events by response time
func (s *Service) getResponseTimeDistribution(events []model.SearchEvent) model.ResponseTimeDistribution {
	dist := model.ResponseTimeDistribution{}

	for _, event := range events {
		switch {
		case event.ResponseTime < 10*time.Millisecond:
			dist.Under10ms++
		case event.ResponseTime < 50*time.Millisecond:
			dist.From10To50++
		case event.ResponseTime < 100*time.Millisecond:
			dist.From50To100++
		default:
			dist.Over100ms++
		}
	}

	return dist
}

func (s *Service) getSearchTypeStats(events []model.SearchEvent) model.SearchTypeStats {
	stats := model.SearchTypeStats{}

	for _, event := range events {
		switch event.SearchType {
		case model.SearchTypeBrowse:
			stats.Browse++
		case model.SearchTypeText:
			stats.Text++
		case model.SearchTypeFiltered:
			stats.Filtered++
		case model.SearchTypeFallback:
			stats.Fallback++
		}
	}

	return stats
}
