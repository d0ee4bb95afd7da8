package search

// Hit is a candidate matched by the text index.
type Hit struct {
	Ref     string              // canonical candidate id
	Score   float64             // summed BM25 score over matched terms and fields
	Matches map[string][]string // FieldName -> matched index terms
}

// TextIndex answers query strings in the index's native syntax.
// A malformed query is reported as an error rather than an empty result.
type TextIndex interface {
	Search(query string) ([]Hit, error)
}

// candidateHit represents a document candidate during clause evaluation
type candidateHit struct {
	docID                    uint32
	score                    float64
	matchedTermsByField      map[string]map[string]struct{} // FieldName -> term -> struct{}
	matchedTermsByFieldOrder map[string][]string            // first-match order of matchedTermsByField
}

func newCandidateHit(docID uint32) *candidateHit {
	return &candidateHit{
		docID:                    docID,
		matchedTermsByField:      make(map[string]map[string]struct{}),
		matchedTermsByFieldOrder: make(map[string][]string),
	}
}

func (h *candidateHit) addMatch(field, term string, score float64) {
	h.score += score
	terms, ok := h.matchedTermsByField[field]
	if !ok {
		terms = make(map[string]struct{})
		h.matchedTermsByField[field] = terms
	}
	if _, seen := terms[term]; !seen {
		terms[term] = struct{}{}
		h.matchedTermsByFieldOrder[field] = append(h.matchedTermsByFieldOrder[field], term)
	}
}
