package query

import (
	"unicode"
)

// LexemeType identifies the kind of a lexeme.
type LexemeType int

const (
	LexemeTerm LexemeType = iota
	LexemeField
	LexemePresence
	LexemeEditDistance
	LexemeBoost
)

func (t LexemeType) String() string {
	switch t {
	case LexemeTerm:
		return "TERM"
	case LexemeField:
		return "FIELD"
	case LexemePresence:
		return "PRESENCE"
	case LexemeEditDistance:
		return "EDIT_DISTANCE"
	case LexemeBoost:
		return "BOOST"
	default:
		return "UNKNOWN"
	}
}

// Lexeme is a token of the query language with its rune offsets in the input.
type Lexeme struct {
	Type  LexemeType
	Str   string
	Start int
	End   int
}

// lexer splits a query string into lexemes. Whitespace and hyphens separate
// terms; a leading "+" or "-" is a presence marker; ":" closes a field name;
// "~" and "^" introduce an edit distance and a boost; backslash escapes the next rune.
type lexer struct {
	input   []rune
	pos     int
	start   int
	escapes map[int]struct{}
	lexemes []Lexeme
}

// Lex returns the lexemes of q.
func Lex(q string) []Lexeme {
	l := &lexer{input: []rune(q), escapes: make(map[int]struct{})}
	l.run()
	return l.lexemes
}

func (l *lexer) run() {
	for {
		if l.pos >= len(l.input) {
			if l.width() > 0 {
				l.emit(LexemeTerm)
			}
			return
		}

		r := l.input[l.pos]
		l.pos++

		switch {
		case r == '\\':
			// the escaped rune is taken literally
			l.escapes[l.pos-1] = struct{}{}
			if l.pos < len(l.input) {
				l.pos++
			}
		case r == ':':
			l.pos--
			l.emit(LexemeField)
			l.skip()
		case r == '~':
			l.pos--
			if l.width() > 0 {
				l.emit(LexemeTerm)
			}
			l.skip()
			l.acceptDigits()
			l.emit(LexemeEditDistance)
		case r == '^':
			l.pos--
			if l.width() > 0 {
				l.emit(LexemeTerm)
			}
			l.skip()
			l.acceptDigits()
			l.emit(LexemeBoost)
		case (r == '+' || r == '-') && l.width() == 1:
			l.emit(LexemePresence)
		case isSeparator(r):
			l.pos--
			if l.width() > 0 {
				l.emit(LexemeTerm)
			}
			l.skip()
		}
	}
}

func (l *lexer) width() int {
	return l.pos - l.start
}

// emit records input[start:pos] as a lexeme of type t, dropping escape runes.
func (l *lexer) emit(t LexemeType) {
	runes := make([]rune, 0, l.width())
	for i := l.start; i < l.pos; i++ {
		if _, escaped := l.escapes[i]; escaped {
			continue
		}
		runes = append(runes, l.input[i])
	}
	l.lexemes = append(l.lexemes, Lexeme{Type: t, Str: string(runes), Start: l.start, End: l.pos})
	l.start = l.pos
}

// skip drops the rune at pos.
func (l *lexer) skip() {
	l.pos++
	l.start = l.pos
}

func (l *lexer) acceptDigits() {
	for l.pos < len(l.input) && l.input[l.pos] >= '0' && l.input[l.pos] <= '9' {
		l.pos++
	}
}

func isSeparator(r rune) bool {
	return r == '-' || unicode.IsSpace(r)
}
