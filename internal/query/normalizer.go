// Package query normalizes user queries and parses them into clauses the text index evaluates.
package query

import "regexp"

var (
	orOperatorRegex  = regexp.MustCompile(`(?i)\bOR\b`)
	andOperatorRegex = regexp.MustCompile(`(?i)\bAND\b`)
)

// Normalize rewrites the OR/AND pseudo-operators into index syntax.
// Every standalone OR (any case) is removed and every standalone AND becomes "+".
// It is a textual substitution, not a boolean parser: "java OR python" becomes
// "java  python" and a trailing AND leaves a dangling "+" the parser will reject.
func Normalize(q string) string {
	q = orOperatorRegex.ReplaceAllLiteralString(q, "")
	return andOperatorRegex.ReplaceAllLiteralString(q, "+")
}
