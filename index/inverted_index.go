package index

import (
	"sort"
	"strings"

	"github.com/epicstalent-sudo/level-up-backend/config"
)

// InvertedIndex maps a term (token) to the candidates containing that term.
// It is populated once by the indexing package and is read-only afterwards,
// so it can be shared by concurrent searches without locking.
type InvertedIndex struct {
	Index    map[string]PostingList
	Refs     []string              // DocID -> candidate reference
	Settings *config.IndexSettings // Settings the index was built with

	// FieldLengths holds the number of indexed terms per field per DocID.
	FieldLengths map[string][]int
	// AvgFieldLength is the mean of FieldLengths per field.
	AvgFieldLength map[string]float64

	terms []string // sorted term dictionary
}

// New creates an empty InvertedIndex for the given settings.
func New(settings *config.IndexSettings) *InvertedIndex {
	fieldLengths := make(map[string][]int, len(settings.SearchableFields))
	for _, field := range settings.SearchableFields {
		fieldLengths[field] = []int{}
	}
	return &InvertedIndex{
		Index:          make(map[string]PostingList),
		Refs:           []string{},
		Settings:       settings,
		FieldLengths:   fieldLengths,
		AvgFieldLength: make(map[string]float64, len(settings.SearchableFields)),
	}
}

// DocCount returns the number of indexed candidates.
func (ii *InvertedIndex) DocCount() int {
	return len(ii.Refs)
}

// Postings returns the posting list for term, or nil if the term is not indexed.
func (ii *InvertedIndex) Postings(term string) PostingList {
	return ii.Index[term]
}

// Terms returns the sorted term dictionary.
func (ii *InvertedIndex) Terms() []string {
	return ii.terms
}

// TermsWithPrefix returns every indexed term starting with prefix, in sorted order.
func (ii *InvertedIndex) TermsWithPrefix(prefix string) []string {
	start := sort.SearchStrings(ii.terms, prefix)
	end := start
	for end < len(ii.terms) && strings.HasPrefix(ii.terms[end], prefix) {
		end++
	}
	return ii.terms[start:end]
}

// Seal computes the term dictionary and average field lengths.
// It must be called once after the last posting has been added.
func (ii *InvertedIndex) Seal() {
	ii.terms = make([]string, 0, len(ii.Index))
	for term := range ii.Index {
		ii.terms = append(ii.terms, term)
	}
	sort.Strings(ii.terms)

	for field, lengths := range ii.FieldLengths {
		if len(lengths) == 0 {
			ii.AvgFieldLength[field] = 0
			continue
		}
		total := 0
		for _, l := range lengths {
			total += l
		}
		ii.AvgFieldLength[field] = float64(total) / float64(len(lengths))
	}
}
