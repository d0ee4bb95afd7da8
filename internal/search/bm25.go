package search

import (
	"math"

	"github.com/epicstalent-sudo/level-up-backend/index"
)

// BM25Calculator handles BM25 score calculations over a sealed inverted index
type BM25Calculator struct {
	invertedIndex *index.InvertedIndex
	k1            float64 // Controls term frequency saturation
	b             float64 // Controls how much effect field length has
}

// NewBM25Calculator creates a new BM25 calculator using the index's parameters
func NewBM25Calculator(invIndex *index.InvertedIndex) *BM25Calculator {
	return &BM25Calculator{
		invertedIndex: invIndex,
		k1:            invIndex.Settings.K1,
		b:             invIndex.Settings.B,
	}
}

// calculateIDF calculates the inverse document frequency of a term
// IDF = ln(1 + |(N - df + 0.5) / (df + 0.5)|)
// df counts one occurrence per field a candidate contains the term in.
func (calc *BM25Calculator) calculateIDF(term string) float64 {
	totalDocs := float64(calc.invertedIndex.DocCount())
	docFreq := float64(len(calc.invertedIndex.Postings(term)))

	return math.Log(1 + math.Abs((totalDocs-docFreq+0.5)/(docFreq+0.5)))
}

// CalculateBM25 scores one posting entry of term
// BM25 = IDF * (tf * (k1 + 1)) / (tf + k1 * (1 - b + b * (|f| / avgfl)))
func (calc *BM25Calculator) CalculateBM25(term string, entry index.PostingEntry) float64 {
	idf := calc.calculateIDF(term)

	lengthRatio := 0.0
	if avg := calc.invertedIndex.AvgFieldLength[entry.FieldName]; avg > 0 {
		lengths := calc.invertedIndex.FieldLengths[entry.FieldName]
		if int(entry.DocID) < len(lengths) {
			lengthRatio = float64(lengths[entry.DocID]) / avg
		}
	}

	tf := entry.Score
	bm25TF := (tf * (calc.k1 + 1)) / (tf + calc.k1*(1-calc.b+calc.b*lengthRatio))

	return roundScore(idf * bm25TF)
}

// roundScore keeps three decimals so equal inputs compare equal across fields.
func roundScore(score float64) float64 {
	return math.Round(score*1000) / 1000
}
