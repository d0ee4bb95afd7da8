// Package indexing builds the candidate text index.
package indexing

import (
	"fmt"
	"strings"

	"github.com/epicstalent-sudo/level-up-backend/config"
	"github.com/epicstalent-sudo/level-up-backend/index"
	"github.com/epicstalent-sudo/level-up-backend/internal/tokenizer"
	"github.com/epicstalent-sudo/level-up-backend/model"
	"github.com/epicstalent-sudo/level-up-backend/store"
)

// Build indexes every candidate in the store over the configured searchable fields.
// The returned index is sealed and must not be modified.
func Build(candidates *store.CandidateStore, settings config.IndexSettings) (*index.InvertedIndex, error) {
	if candidates == nil {
		return nil, fmt.Errorf("candidate store cannot be nil")
	}

	settings.ApplyDefaults()
	if conflicts := settings.ValidateFieldNames(); len(conflicts) > 0 {
		return nil, fmt.Errorf("invalid index settings: %s", strings.Join(conflicts, "; "))
	}

	pipeline := tokenizer.Pipeline{
		StopWordFilter: settings.StopWordFilter,
		Stemming:       settings.Stemming,
	}

	invIndex := index.New(&settings)
	invIndex.Refs = make([]string, 0, candidates.Len())

	for ordinal := 0; ordinal < candidates.Len(); ordinal++ {
		candidate := candidates.At(ordinal)
		docID := uint32(ordinal)
		invIndex.Refs = append(invIndex.Refs, candidate.ID.String())

		for _, fieldName := range settings.SearchableFields {
			terms := pipeline.Index(FieldText(candidate, fieldName))
			invIndex.FieldLengths[fieldName] = append(invIndex.FieldLengths[fieldName], len(terms))
			addFieldPostings(invIndex, docID, fieldName, terms)
		}
	}

	invIndex.Seal()
	return invIndex, nil
}

// addFieldPostings appends one posting per distinct term, carrying its frequency.
func addFieldPostings(invIndex *index.InvertedIndex, docID uint32, fieldName string, terms []string) {
	frequencies := make(map[string]int)
	order := make([]string, 0, len(terms))
	for _, term := range terms {
		if _, seen := frequencies[term]; !seen {
			order = append(order, term)
		}
		frequencies[term]++
	}

	for _, term := range order {
		invIndex.Index[term] = append(invIndex.Index[term], index.PostingEntry{
			DocID:     docID,
			FieldName: fieldName,
			Score:     float64(frequencies[term]),
		})
	}
}

// FieldText returns the text indexed for fieldName. Skills are joined by a single space.
func FieldText(c model.Candidate, fieldName string) string {
	switch fieldName {
	case config.FieldHeadline:
		return c.Headline
	case config.FieldSkills:
		return strings.Join(c.Skills, " ")
	case config.FieldCurrentRole:
		return c.CurrentRole
	case config.FieldLocation:
		return c.Location
	default:
		return ""
	}
}
