package search

import (
	"strings"

	"github.com/epicstalent-sudo/level-up-backend/model"
)

// ApplyFilters keeps the candidates that satisfy the location, minimum experience
// and maximum distance constraints of req, in input order. An inactive
// constraint always holds.
func ApplyFilters(candidates []model.Candidate, req model.SearchRequest) []model.Candidate {
	filtered := make([]model.Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if candidateMatchesFilters(candidate, req) {
			filtered = append(filtered, candidate)
		}
	}
	return filtered
}

// candidateMatchesFilters checks if a candidate matches all filters of req
func candidateMatchesFilters(c model.Candidate, req model.SearchRequest) bool {
	return locationMatches(c, req.Location) &&
		experienceMatches(c, req.MinExp) &&
		distanceMatches(c, req.MaxDistance)
}

// locationMatches is a case-insensitive substring test; an empty filter matches everything.
func locationMatches(c model.Candidate, location string) bool {
	if location == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Location), strings.ToLower(location))
}

func experienceMatches(c model.Candidate, minExp model.OptionalNumber) bool {
	if !minExp.Active {
		return true
	}
	return c.TotalYearsExperience >= minExp.Value
}

func distanceMatches(c model.Candidate, maxDistance model.OptionalNumber) bool {
	if !maxDistance.Active {
		return true
	}
	return c.Distance <= maxDistance.Value
}
