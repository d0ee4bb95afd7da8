package search

import (
	"sort"
	"strings"

	"github.com/epicstalent-sudo/level-up-backend/model"
)

// SkillMatchCount returns how many of the candidate's skills equal, ignoring case,
// at least one of the target skills. It is 0 when targets is empty.
func SkillMatchCount(c model.Candidate, targets []string) int {
	if len(targets) == 0 {
		return 0
	}

	wanted := make(map[string]struct{}, len(targets))
	for _, target := range targets {
		wanted[strings.ToLower(target)] = struct{}{}
	}

	count := 0
	for _, skill := range c.Skills {
		if _, ok := wanted[strings.ToLower(skill)]; ok {
			count++
		}
	}
	return count
}

// Rank scores every candidate against targets and orders them by skill match
// count, highest first. Candidates with equal counts keep their input order.
func Rank(candidates []model.Candidate, targets []string) []model.RankedCandidate {
	ranked := make([]model.RankedCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		ranked = append(ranked, model.RankedCandidate{
			Candidate:       candidate,
			SkillMatchCount: SkillMatchCount(candidate, targets),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].SkillMatchCount > ranked[j].SkillMatchCount
	})
	return ranked
}
