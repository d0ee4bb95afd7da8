package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	internalErrors "github.com/epicstalent-sudo/level-up-backend/internal/errors"
)

// Presence controls how a clause affects whether a candidate matches.
type Presence int

const (
	// PresenceOptional clauses add to the score; a candidate must match at least one clause.
	PresenceOptional Presence = iota
	// PresenceRequired clauses must match.
	PresenceRequired
	// PresenceProhibited clauses must not match.
	PresenceProhibited
)

// Clause is a single term restriction of a parsed query.
type Clause struct {
	Fields       []string
	Term         string
	Presence     Presence
	Boost        float64
	EditDistance int
	UsePipeline  bool // false for wildcard terms, which are matched as written
}

// HasWildcard reports whether the term contains a "*" wildcard.
func (c Clause) HasWildcard() bool {
	return strings.Contains(c.Term, "*")
}

// Query is a parsed query.
type Query struct {
	Clauses   []Clause
	AllFields []string
}

// IsNegated reports whether every clause is prohibited, which also holds for an empty query.
// A negated query starts from the whole collection.
func (q *Query) IsNegated() bool {
	for _, c := range q.Clauses {
		if c.Presence != PresenceProhibited {
			return false
		}
	}
	return true
}

type parser struct {
	lexemes []Lexeme
	pos     int
	query   *Query
	current Clause
}

// Parse parses q against the given searchable fields. Malformed input is
// reported as a *errors.QueryParseError.
func Parse(q string, fields []string) (*Query, error) {
	p := &parser{
		lexemes: Lex(q),
		query:   &Query{Clauses: []Clause{}, AllFields: fields},
	}
	p.resetClause()

	for p.peek() != nil {
		if err := p.parseClause(); err != nil {
			return nil, err
		}
	}
	return p.query, nil
}

func (p *parser) resetClause() {
	p.current = Clause{Presence: PresenceOptional, Boost: 1, UsePipeline: true}
}

// nextClause closes the current clause and starts a new one.
func (p *parser) nextClause() {
	if p.current.Fields == nil {
		p.current.Fields = p.query.AllFields
	}
	p.query.Clauses = append(p.query.Clauses, p.current)
	p.resetClause()
}

func (p *parser) peek() *Lexeme {
	if p.pos >= len(p.lexemes) {
		return nil
	}
	return &p.lexemes[p.pos]
}

func (p *parser) consume() *Lexeme {
	l := p.peek()
	if l != nil {
		p.pos++
	}
	return l
}

func (p *parser) parseClause() error {
	lexeme := p.peek()
	switch lexeme.Type {
	case LexemePresence:
		return p.parsePresence()
	case LexemeField:
		return p.parseField()
	case LexemeTerm:
		return p.parseTerm()
	default:
		msg := "expected either a field or a term, found " + lexeme.Type.String()
		if lexeme.Str != "" {
			msg += " with value '" + lexeme.Str + "'"
		}
		return internalErrors.NewQueryParseError(msg, lexeme.Start, lexeme.End)
	}
}

func (p *parser) parsePresence() error {
	lexeme := p.consume()
	switch lexeme.Str {
	case "+":
		p.current.Presence = PresenceRequired
	case "-":
		p.current.Presence = PresenceProhibited
	default:
		return internalErrors.NewQueryParseError("unrecognised presence operator '"+lexeme.Str+"'", lexeme.Start, lexeme.End)
	}

	next := p.peek()
	if next == nil {
		return internalErrors.NewQueryParseError("expecting term or field, found nothing", lexeme.Start, lexeme.End)
	}
	switch next.Type {
	case LexemeField:
		return p.parseField()
	case LexemeTerm:
		return p.parseTerm()
	default:
		return internalErrors.NewQueryParseError("expecting term or field, found '"+next.Type.String()+"'", next.Start, next.End)
	}
}

func (p *parser) parseField() error {
	lexeme := p.consume()

	known := false
	for _, f := range p.query.AllFields {
		if f == lexeme.Str {
			known = true
			break
		}
	}
	if !known {
		msg := fmt.Sprintf("unrecognised field '%s', possible fields: %s", lexeme.Str, strings.Join(p.query.AllFields, ", "))
		return internalErrors.NewQueryParseError(msg, lexeme.Start, lexeme.End)
	}
	p.current.Fields = []string{lexeme.Str}

	next := p.peek()
	if next == nil {
		return internalErrors.NewQueryParseError("expecting term, found nothing", lexeme.Start, lexeme.End)
	}
	if next.Type != LexemeTerm {
		return internalErrors.NewQueryParseError("expecting term, found '"+next.Type.String()+"'", next.Start, next.End)
	}
	return p.parseTerm()
}

func (p *parser) parseTerm() error {
	lexeme := p.consume()
	p.current.Term = strings.ToLower(lexeme.Str)
	if strings.Contains(lexeme.Str, "*") {
		p.current.UsePipeline = false
	}
	return p.afterTerm()
}

// maxEditDistance bounds "~N"; any larger distance matches the same terms.
const maxEditDistance = 1 << 16

func (p *parser) parseEditDistance() error {
	lexeme := p.consume()
	n, err := strconv.Atoi(lexeme.Str)
	switch {
	case errors.Is(err, strconv.ErrRange):
		n = maxEditDistance
		if strings.HasPrefix(lexeme.Str, "-") {
			n = 0
		}
	case err != nil:
		return internalErrors.NewQueryParseError("edit distance must be numeric", lexeme.Start, lexeme.End)
	}
	p.current.EditDistance = min(n, maxEditDistance)
	return p.afterTerm()
}

func (p *parser) parseBoost() error {
	lexeme := p.consume()
	n, err := strconv.Atoi(lexeme.Str)
	switch {
	case errors.Is(err, strconv.ErrRange):
		// too large for an int but still a valid integer
		boost, _ := strconv.ParseFloat(lexeme.Str, 64)
		p.current.Boost = boost
	case err != nil:
		return internalErrors.NewQueryParseError("boost must be numeric", lexeme.Start, lexeme.End)
	default:
		p.current.Boost = float64(n)
	}
	return p.afterTerm()
}

// afterTerm decides what may follow a term or one of its modifiers.
func (p *parser) afterTerm() error {
	next := p.peek()
	if next == nil {
		p.nextClause()
		return nil
	}

	switch next.Type {
	case LexemeTerm:
		p.nextClause()
		return p.parseTerm()
	case LexemeField:
		p.nextClause()
		return p.parseField()
	case LexemeEditDistance:
		return p.parseEditDistance()
	case LexemeBoost:
		return p.parseBoost()
	case LexemePresence:
		p.nextClause()
		return p.parsePresence()
	default:
		return internalErrors.NewQueryParseError("unexpected lexeme type '"+next.Type.String()+"'", next.Start, next.End)
	}
}
