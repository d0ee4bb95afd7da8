package tokenizer

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball/english"
)

// separatorRegex matches the runs of whitespace and hyphens that separate tokens.
var separatorRegex = regexp.MustCompile(`[\s\-]+`)

// leadingNonWordRegex and trailingNonWordRegex strip punctuation around a token
// while leaving inner characters such as the dot in "node.js" untouched.
var (
	leadingNonWordRegex  = regexp.MustCompile(`^\W+`)
	trailingNonWordRegex = regexp.MustCompile(`\W+$`)
)

// Tokenize converts a string into a slice of lowercased, trimmed tokens.
// It splits on whitespace and hyphens and drops tokens that trim to nothing.
func Tokenize(text string) []string {
	split := separatorRegex.Split(strings.ToLower(text), -1)

	tokens := make([]string, 0, len(split)) // Initialize as empty slice, not nil
	for _, s := range split {
		if trimmed := Trim(s); trimmed != "" {
			tokens = append(tokens, trimmed)
		}
	}
	return tokens
}

// Trim removes leading and trailing non-word characters from a token.
func Trim(token string) string {
	token = leadingNonWordRegex.ReplaceAllString(token, "")
	return trailingNonWordRegex.ReplaceAllString(token, "")
}

// Stem reduces a lowercased term to its Snowball English stem.
func Stem(term string) string {
	return english.Stem(term, true)
}

// IsStopWord reports whether term is dropped from the index when stop word filtering is on.
func IsStopWord(term string) bool {
	_, ok := stopWords[term]
	return ok
}

// Pipeline turns field text and query terms into index terms.
type Pipeline struct {
	StopWordFilter bool
	Stemming       bool
}

// Index runs the index-time pipeline over a field value: tokenize, drop stop
// words, stem. The position of a term in the returned slice is its token position.
func (p Pipeline) Index(text string) []string {
	tokens := Tokenize(text)

	terms := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if p.StopWordFilter && IsStopWord(token) {
			continue
		}
		if p.Stemming {
			token = Stem(token)
		}
		if token != "" {
			terms = append(terms, token)
		}
	}
	return terms
}

// Query runs the query-time pipeline over a single lowercased term.
// Stop words are kept at query time; they simply find nothing in the index.
func (p Pipeline) Query(term string) string {
	if p.Stemming {
		return Stem(term)
	}
	return term
}

var stopWords = func() map[string]struct{} {
	words := strings.Fields(`a able about across after all almost also am among an and any are as at
		be because been but by can cannot could dear did do does either else ever every for from
		get got had has have he her hers him his how however i if in into is it its just least
		let like likely may me might most must my neither no nor not of off often on only or
		other our own rather said say says she should since so some than that the their them
		then there these they this tis to too twas us wants was we were what when where which
		while who whom why will with would yet you your`)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}()
