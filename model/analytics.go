package model

import "time"

// Search types recorded for analytics.
const (
	SearchTypeBrowse   = "browse"   // no query and no filters
	SearchTypeText     = "text"     // free-text query only
	SearchTypeFiltered = "filtered" // structured filters or skills present
	SearchTypeFallback = "fallback" // query failed to parse, whole store used
)

// SearchEvent represents a single search event for analytics tracking
type SearchEvent struct {
	QueryID      string        `json:"query_id"`
	Query        string        `json:"query"`
	SearchType   string        `json:"search_type"`
	ResponseTime time.Duration `json:"response_time"`
	ResultCount  int           `json:"result_count"`
	Timestamp    time.Time     `json:"timestamp"`
}

// PopularSearch represents aggregated data for popular search terms
type PopularSearch struct {
	Query       string `json:"query"`
	SearchCount int    `json:"search_count"`
}

// SearchTypeStats represents statistics for different search types
type SearchTypeStats struct {
	Browse   int `json:"browse"`
	Text     int `json:"text"`
	Filtered int `json:"filtered"`
	Fallback int `json:"fallback"`
}

// ResponseTimeDistribution represents response time buckets
type ResponseTimeDistribution struct {
	Under10ms   int `json:"under_10ms"`
	From10To50  int `json:"from_10_to_50ms"`
	From50To100 int `json:"from_50_to_100ms"`
	Over100ms   int `json:"over_100ms"`
}

// AnalyticsDashboard represents the complete analytics dashboard data
type AnalyticsDashboard struct {
	TotalSearches            int                      `json:"total_searches"`
	TotalCandidates          int                      `json:"total_candidates"`
	AvgResponseTime          float64                  `json:"avg_response_time_ms"`
	AvgResultCount           float64                  `json:"avg_result_count"`
	FallbackRate             float64                  `json:"fallback_rate"`
	PopularSearches          []PopularSearch          `json:"popular_searches"`
	SearchTypes              SearchTypeStats          `json:"search_types"`
	ResponseTimeDistribution ResponseTimeDistribution `json:"response_time_distribution"`
}
