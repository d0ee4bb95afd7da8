package search

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/epicstalent-sudo/level-up-backend/index"
	"github.com/epicstalent-sudo/level-up-backend/internal/query"
	"github.com/epicstalent-sudo/level-up-backend/internal/tokenizer"
	"github.com/epicstalent-sudo/level-up-backend/internal/typoutil"
	"github.com/epicstalent-sudo/level-up-backend/model"
)

// TextSearcher evaluates parsed queries against a sealed inverted index.
// It holds no mutable state and is safe for concurrent use.
type TextSearcher struct {
	invertedIndex *index.InvertedIndex
	pipeline      tokenizer.Pipeline
	bm25          *BM25Calculator
}

// NewTextSearcher creates a TextSearcher for invIndex.
func NewTextSearcher(invIndex *index.InvertedIndex) (*TextSearcher, error) {
	if invIndex == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if invIndex.Settings == nil {
		return nil, fmt.Errorf("inverted index has no settings")
	}

	return &TextSearcher{
		invertedIndex: invIndex,
		pipeline: tokenizer.Pipeline{
			StopWordFilter: invIndex.Settings.StopWordFilter,
			Stemming:       invIndex.Settings.Stemming,
		},
		bm25: NewBM25Calculator(invIndex),
	}, nil
}

// Search parses q and returns the matching candidates ordered by score,
// ties broken by store order. A parse failure is returned as an error.
func (s *TextSearcher) Search(q string) ([]Hit, error) {
	parsed, err := query.Parse(q, s.invertedIndex.Settings.SearchableFields)
	if err != nil {
		return nil, err
	}

	candidatesByDocID := make(map[uint32]*candidateHit)
	var required map[uint32]struct{} // nil means no required clause seen yet
	prohibited := make(map[uint32]struct{})

	for _, clause := range parsed.Clauses {
		clauseDocs := make(map[uint32]struct{})

		for _, term := range s.expandClause(clause) {
			for _, entry := range s.invertedIndex.Postings(term) {
				if !containsField(clause.Fields, entry.FieldName) {
					continue
				}
				clauseDocs[entry.DocID] = struct{}{}

				if clause.Presence == query.PresenceProhibited {
					continue
				}
				hit, ok := candidatesByDocID[entry.DocID]
				if !ok {
					hit = newCandidateHit(entry.DocID)
					candidatesByDocID[entry.DocID] = hit
				}
				hit.addMatch(entry.FieldName, term, s.bm25.CalculateBM25(term, entry)*clause.Boost)
			}
		}

		switch clause.Presence {
		case query.PresenceRequired:
			required = intersect(required, clauseDocs)
		case query.PresenceProhibited:
			for docID := range clauseDocs {
				prohibited[docID] = struct{}{}
			}
		}
	}

	if parsed.IsNegated() {
		// Only prohibited clauses: every candidate they do not exclude matches with a zero score.
		for docID := 0; docID < s.invertedIndex.DocCount(); docID++ {
			candidatesByDocID[uint32(docID)] = newCandidateHit(uint32(docID))
		}
	}

	hits := make([]*candidateHit, 0, len(candidatesByDocID))
	for docID, hit := range candidatesByDocID {
		if _, excluded := prohibited[docID]; excluded {
			continue
		}
		if required != nil {
			if _, ok := required[docID]; !ok {
				continue
			}
		}
		hits = append(hits, hit)
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].docID < hits[j].docID
	})

	results := make([]Hit, 0, len(hits))
	for _, hit := range hits {
		results = append(results, Hit{
			Ref:     s.invertedIndex.Refs[hit.docID],
			Score:   hit.score,
			Matches: hit.matchedTermsByFieldOrder,
		})
	}
	return results, nil
}

// expandClause returns the index terms a clause stands for.
// Wildcard terms are matched as written; other terms go through the query
// pipeline first and are then widened by the clause's edit distance.
func (s *TextSearcher) expandClause(clause query.Clause) []string {
	if clause.HasWildcard() {
		return s.expandWildcard(clause.Term)
	}

	term := clause.Term
	if clause.UsePipeline {
		term = s.pipeline.Query(term)
	}
	if term == "" {
		return nil
	}

	if clause.EditDistance > 0 {
		return typoutil.WithinDistance(term, s.invertedIndex.Terms(), clause.EditDistance)
	}
	if _, ok := s.invertedIndex.Index[term]; !ok {
		return nil
	}
	return []string{term}
}

// expandWildcard matches pattern, where "*" stands for any run of characters,
// against the term dictionary.
func (s *TextSearcher) expandWildcard(pattern string) []string {
	parts := strings.Split(pattern, "*")
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	matcher, err := regexp.Compile("^" + strings.Join(parts, ".*") + "$")
	if err != nil {
		return nil
	}

	// A literal prefix narrows the scan to a range of the sorted dictionary.
	dictionary := s.invertedIndex.Terms()
	if prefix := pattern[:strings.Index(pattern, "*")]; prefix != "" {
		dictionary = s.invertedIndex.TermsWithPrefix(prefix)
	}

	matches := make([]string, 0)
	for _, term := range dictionary {
		if matcher.MatchString(term) {
			matches = append(matches, term)
		}
	}
	return matches
}

// intersect returns the documents present in both sets; a nil acc stands for every document.
func intersect(acc, docs map[uint32]struct{}) map[uint32]struct{} {
	if acc == nil {
		out := make(map[uint32]struct{}, len(docs))
		for docID := range docs {
			out[docID] = struct{}{}
		}
		return out
	}
	for docID := range acc {
		if _, ok := docs[docID]; !ok {
			delete(acc, docID)
		}
	}
	return acc
}

func containsField(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}

// IndexStats reports the size of the underlying index.
func (s *TextSearcher) IndexStats() model.IndexStats {
	fields := make([]string, len(s.invertedIndex.Settings.SearchableFields))
	copy(fields, s.invertedIndex.Settings.SearchableFields)
	return model.IndexStats{
		Name:             s.invertedIndex.Settings.Name,
		CandidateCount:   s.invertedIndex.DocCount(),
		TermCount:        len(s.invertedIndex.Terms()),
		SearchableFields: fields,
	}
}
