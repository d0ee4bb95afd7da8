// Package typoutil expands query terms to the indexed terms within a bounded edit distance.
package typoutil

// DistanceWithLimit computes the Damerau-Levenshtein distance between a and b
// (insertions, deletions, substitutions and adjacent transpositions), working on runes.
// Any distance above maxDistance is reported as maxDistance+1.
func DistanceWithLimit(a, b string, maxDistance int) int {
	runesA := []rune(a)
	runesB := []rune(b)
	lenA, lenB := len(runesA), len(runesB)

	if abs(lenA-lenB) > maxDistance {
		return maxDistance + 1
	}
	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	// Three rolling rows: i-2 is needed for transpositions.
	prevPrev := make([]int, lenB+1)
	prev := make([]int, lenB+1)
	curr := make([]int, lenB+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= lenA; i++ {
		curr[0] = i
		rowMin := i

		for j := 1; j <= lenB; j++ {
			cost := 1
			if runesA[i-1] == runesB[j-1] {
				cost = 0
			}

			best := min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && runesA[i-1] == runesB[j-2] && runesA[i-2] == runesB[j-1] {
				best = min(best, prevPrev[j-2]+cost)
			}
			curr[j] = best

			if best < rowMin {
				rowMin = best
			}
		}

		if rowMin > maxDistance {
			return maxDistance + 1
		}
		prevPrev, prev, curr = prev, curr, prevPrev
	}

	if prev[lenB] > maxDistance {
		return maxDistance + 1
	}
	return prev[lenB]
}

// WithinDistance returns the terms from the sorted dictionary that are at most
// maxDistance edits away from term, including term itself when present.
// The result keeps dictionary order.
func WithinDistance(term string, dictionary []string, maxDistance int) []string {
	matches := make([]string, 0) // Initialize as empty slice, not nil
	if term == "" || maxDistance < 0 {
		return matches
	}

	termLen := len([]rune(term))
	for _, candidate := range dictionary {
		if abs(len([]rune(candidate))-termLen) > maxDistance {
			continue
		}
		if DistanceWithLimit(term, candidate, maxDistance) <= maxDistance {
			matches = append(matches, candidate)
		}
	}
	return matches
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
