package index

// PostingEntry represents a candidate that contains a term and the field it appeared in.
type PostingEntry struct {
	DocID     uint32  // Store ordinal of the candidate
	FieldName string  // The field where the term was found (e.g., "headline", "skills")
	Score     float64 // Term frequency within this field for this candidate
}

// PostingList is a slice of PostingEntry, ordered by DocID then by field order.
type PostingList []PostingEntry
